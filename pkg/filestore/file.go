// Package filestore keeps a whole JSON document in a single file.
//
// Every write serialises the complete document to a temporary file in the same
// directory and renames it over the old one, so a crash mid-write leaves the
// previous version intact. Access to one File is serialised by a mutex: there is
// exactly one writer per data file inside a process.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio"
)

var (
	ErrRead  = errors.New("store read error")
	ErrWrite = errors.New("store write error")
)

// Error reports a failed read or write of a data file. It matches ErrRead or ErrWrite with errors.Is.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Op == "write" {
		return []error{ErrWrite, e.Err}
	}
	return []error{ErrRead, e.Err}
}

type File[T any] struct {
	path string
	seed func() T
	mu   sync.Mutex
}

// New returns a store for path. seed produces the document written when the file does not exist yet.
func New[T any](path string, seed func() T) *File[T] {
	return &File[T]{
		path: path,
		seed: seed,
	}
}

func (f *File[T]) Path() string {
	return f.path
}

// Init creates the data file from the seed if it is missing.
func (f *File[T]) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := f.load()
	return err
}

func (f *File[T]) Read() (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// Update runs fn on the current document and persists what it returns. If fn fails,
// or the write fails, the file is left untouched and the error is returned.
func (f *File[T]) Update(fn func(data T) (T, error)) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	data, err := f.load()
	if err != nil {
		return zero, err
	}
	updated, err := fn(data)
	if err != nil {
		return zero, err
	}
	if err = f.store(updated); err != nil {
		return zero, err
	}
	return updated, nil
}

func (f *File[T]) Write(data T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store(data)
}

func (f *File[T]) load() (T, error) {
	var data T
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		if f.seed != nil {
			data = f.seed()
		}
		if err = f.store(data); err != nil {
			return data, err
		}
		return data, nil
	}
	if err != nil {
		return data, &Error{Op: "read", Path: f.path, Err: err}
	}
	if err = json.Unmarshal(b, &data); err != nil {
		return data, &Error{Op: "read", Path: f.path, Err: err}
	}
	return data, nil
}

func (f *File[T]) store(data T) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return &Error{Op: "write", Path: f.path, Err: err}
	}
	if err = os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return &Error{Op: "write", Path: f.path, Err: err}
	}
	if err = renameio.WriteFile(f.path, b, 0o644); err != nil {
		return &Error{Op: "write", Path: f.path, Err: err}
	}
	return nil
}
