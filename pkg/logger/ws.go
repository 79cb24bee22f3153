package logger

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"

	"go.uber.org/zap"
)

// ReopenableWriteSyncer is a log file that can be reopened in place after logrotate moved it.
type ReopenableWriteSyncer struct {
	path string
	cur  atomic.Pointer[os.File]
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logger.NewReopenableWriteSyncer: %w", err)
	}
	ws := &ReopenableWriteSyncer{path: path}
	if err := ws.Reload(); err != nil {
		return nil, fmt.Errorf("logger.NewReopenableWriteSyncer: %w", err)
	}
	return ws, nil
}

func (ws *ReopenableWriteSyncer) Reload() error {
	file, err := os.OpenFile(ws.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if old := ws.cur.Swap(file); old != nil {
		return old.Close()
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (int, error) {
	return ws.cur.Load().Write(p)
}

func (ws *ReopenableWriteSyncer) Sync() error {
	return ws.cur.Load().Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	return ws.cur.Load().Close()
}

// ReloadOnSIGHUP reopens the log file every time the process receives SIGHUP.
func (ws *ReopenableWriteSyncer) ReloadOnSIGHUP(log *zap.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for range c {
			log.Info("receive logrotate SIGHUP, reloading log file")
			if err := ws.Reload(); err != nil {
				log.Error("failed to reload log file", zap.Error(err))
			} else {
				log.Info("successfully reloaded log file")
			}
		}
	}()
}
