// Package store persists sweep tables.
//
// PostgresRepository keeps them in PostgreSQL (lib/pq); MemoryRepository is a
// process-local implementation for tests and database-less serving.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/aerovlm/sweep"
)

// ErrNotFound indicates an unknown sweep id.
var ErrNotFound = errors.New("store: sweep not found")

// Record is a stored sweep.
type Record struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"created_at"`
	Table     *sweep.Table `json:"table"`
}

// Summary lists a stored sweep without its rows.
type Summary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Rows      int       `json:"rows"`
}

// Repository is the sweep storage contract.
type Repository interface {
	SaveSweep(ctx context.Context, name string, t *sweep.Table) (int64, error)
	GetSweep(ctx context.Context, id int64) (*Record, error)
	ListSweeps(ctx context.Context) ([]Summary, error)
}
