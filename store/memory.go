package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/aerovlm/sweep"
)

// MemoryRepository is a goroutine-safe in-memory Repository.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*Record
	now    func() time.Time
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]*Record), now: time.Now}
}

// SaveSweep stores a copy of t and returns its id (1, 2, …).
func (r *MemoryRepository) SaveSweep(ctx context.Context, name string, t *sweep.Table) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.items[r.nextID] = &Record{
		ID:        r.nextID,
		Name:      name,
		CreatedAt: r.now().UTC(),
		Table:     copyTable(t),
	}

	return r.nextID, nil
}

// GetSweep returns a copy of the stored sweep.
func (r *MemoryRepository) GetSweep(ctx context.Context, id int64) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	cp := *rec
	cp.Table = copyTable(rec.Table)

	return &cp, nil
}

// ListSweeps returns all sweeps, newest first.
func (r *MemoryRepository) ListSweeps(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Summary, 0, len(r.items))
	for _, rec := range r.items {
		out = append(out, Summary{ID: rec.ID, Name: rec.Name, CreatedAt: rec.CreatedAt, Rows: len(rec.Table.Rows)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })

	return out, nil
}

func copyTable(t *sweep.Table) *sweep.Table {
	if t == nil {
		return &sweep.Table{}
	}

	return &sweep.Table{Rows: append([]sweep.Sample(nil), t.Rows...)}
}
