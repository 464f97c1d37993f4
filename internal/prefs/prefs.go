// Package prefs persists the dashboard's user preferences.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
)

// ErrNotFound is returned by Store.Get for a key that was never set.
var ErrNotFound = errors.New("preference not found")

// Store is a durable string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Config selects and configures a Store backend.
type Config struct {
	Backend  string // sqlite, redis or memory
	Path     string // sqlite database file
	RedisURL string
}

// Open returns the configured store. A Redis backend that cannot be reached
// falls back to SQLite at cfg.Path.
func Open(cfg Config, logger *log.Logger) (Store, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	switch strings.ToLower(cfg.Backend) {
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		s, err := NewRedisStore(cfg.RedisURL, logger)
		if err == nil {
			return s, nil
		}
		logger.Printf("redis preferences unavailable, using sqlite at %s: %v", cfg.Path, err)
		return openSQLite(cfg.Path)
	case "", "sqlite":
		return openSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown preference backend %q", cfg.Backend)
	}
}

func openSQLite(path string) (Store, error) {
	s, err := NewSQLiteStore(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// MemoryStore keeps preferences for the life of the process only.
type MemoryStore struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *MemoryStore) Close() error { return nil }
