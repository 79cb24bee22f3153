package service_manager

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/google/renameio"
)

//go:generate mockgen -source=local_storage.go -destination=mock_local_storage.go -package=service_manager

const (
	ServicesKey = "nya_services"
	SettingsKey = "nya_settings"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// LocalStorage is a small persistent key-value store owned by one client.
type LocalStorage interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// fileStorage keeps one file per key in dir. Writes replace the file atomically.
type fileStorage struct {
	dir string
	mu  sync.Mutex
}

func (f *fileStorage) Get(key string) ([]byte, bool, error) {
	path, err := f.path(key)
	if err != nil {
		return nil, false, fmt.Errorf("LocalStorage.Get: %w", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("LocalStorage.Get: %w", err)
	}
	return b, true, nil
}

func (f *fileStorage) Set(key string, value []byte) error {
	path, err := f.path(key)
	if err != nil {
		return fmt.Errorf("LocalStorage.Set: %w", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err = os.MkdirAll(f.dir, 0o700); err != nil {
		return fmt.Errorf("LocalStorage.Set: %w", err)
	}
	if err = renameio.WriteFile(path, value, 0o600); err != nil {
		return fmt.Errorf("LocalStorage.Set: %w", err)
	}
	return nil
}

func (f *fileStorage) Remove(key string) error {
	path, err := f.path(key)
	if err != nil {
		return fmt.Errorf("LocalStorage.Remove: %w", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("LocalStorage.Remove: %w", err)
	}
	return nil
}

func (f *fileStorage) path(key string) (string, error) {
	if !validKey.MatchString(key) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(f.dir, key), nil
}

func NewFileStorage(dir string) LocalStorage {
	return &fileStorage{dir: dir}
}
