package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver

	"github.com/katalvlaran/aerovlm/sweep"
)

// Connection pool settings.
const (
	maxOpenConns    = 25
	maxIdleConns    = 25
	connMaxLifetime = 5 * time.Minute
)

const schema = `
CREATE TABLE IF NOT EXISTS sweeps (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS sweep_rows (
	sweep_id BIGINT NOT NULL REFERENCES sweeps(id) ON DELETE CASCADE,
	idx      INTEGER NOT NULL,
	aoa      DOUBLE PRECISION NOT NULL,
	mach     DOUBLE PRECISION NOT NULL,
	cl       DOUBLE PRECISION NOT NULL,
	cd       DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (sweep_id, idx)
);`

// PostgresRepository stores sweeps in PostgreSQL.
type PostgresRepository struct {
	db *sql.DB
}

var _ Repository = (*PostgresRepository)(nil)

// OpenPostgres opens and pings a pooled connection to dsn.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return db, nil
}

// NewPostgresRepository wraps an open database.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the tables when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("store: schema: %w", err)
	}

	return nil
}

// SaveSweep inserts the sweep and its rows in one transaction.
func (r *PostgresRepository) SaveSweep(ctx context.Context, name string, t *sweep.Table) (id int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = tx.QueryRowContext(ctx,
		"INSERT INTO sweeps (name) VALUES ($1) RETURNING id", name).Scan(&id); err != nil {
		return 0, fmt.Errorf("store: insert sweep: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO sweep_rows (sweep_id, idx, aoa, mach, cl, cd) VALUES ($1, $2, $3, $4, $5, $6)")
	if err != nil {
		return 0, fmt.Errorf("store: prepare: %w", err)
	}
	defer stmt.Close()

	if t != nil {
		for i, s := range t.Rows {
			if _, err = stmt.ExecContext(ctx, id, i, s.AngleOfAttack, s.Mach, s.CL, s.CD); err != nil {
				return 0, fmt.Errorf("store: insert row %d: %w", i, err)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}

	return id, nil
}

// GetSweep loads one sweep with its rows in grid order.
func (r *PostgresRepository) GetSweep(ctx context.Context, id int64) (*Record, error) {
	rec := &Record{ID: id, Table: &sweep.Table{}}
	err := r.db.QueryRowContext(ctx,
		"SELECT name, created_at FROM sweeps WHERE id=$1", id).Scan(&rec.Name, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get sweep: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT aoa, mach, cl, cd FROM sweep_rows WHERE sweep_id=$1 ORDER BY idx", id)
	if err != nil {
		return nil, fmt.Errorf("store: get rows: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s sweep.Sample
		if err = rows.Scan(&s.AngleOfAttack, &s.Mach, &s.CL, &s.CD); err != nil {
			return nil, fmt.Errorf("store: scan row: %w", err)
		}
		rec.Table.Rows = append(rec.Table.Rows, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: rows: %w", err)
	}

	return rec, nil
}

// ListSweeps returns all sweeps, newest first.
func (r *PostgresRepository) ListSweeps(ctx context.Context) ([]Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT s.id, s.name, s.created_at, COUNT(r.idx)
FROM sweeps s LEFT JOIN sweep_rows r ON r.sweep_id = s.id
GROUP BY s.id ORDER BY s.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err = rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.Rows); err != nil {
			return nil, fmt.Errorf("store: scan summary: %w", err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}
