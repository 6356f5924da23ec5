package backend

import (
	"context"

	"kharcha/internal/core"
)

// Backend is the presentation boundary contract: read the full collection,
// append one record. No other mutation exists.
type Backend interface {
	Add(ctx context.Context, e core.Expense) (core.Expense, error)
	Expenses(ctx context.Context) ([]core.Expense, error)
}

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// Result contains the backend instance and optional cleanup function.
type Result struct {
	Backend Backend
	Cleanup CleanupFunc
}

// Factory creates backends based on configuration.
type Factory interface {
	Create(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for backend creation.
type Config struct {
	Type Type

	// File backend
	FilePath string

	// SQLite backend
	SQLiteDBPath string
}

// Type represents the kind of backend.
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid.
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
