package backend

import (
	"context"

	"fintrack/internal/store"
)

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// BackendResult contains the stores and an optional cleanup function.
// Ping, when set, checks that the backing store is reachable.
type BackendResult struct {
	Stores  store.Stores
	Cleanup CleanupFunc
	Ping    func(context.Context) error
}

// Factory creates backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation.
type Config struct {
	Type BackendType

	// SQLite specific
	SQLiteDBPath string
}

// BackendType represents the type of backend.
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid.
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
