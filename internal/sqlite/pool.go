package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mhaugsand/fueleu/internal/domain/pooling"
	"github.com/mhaugsand/fueleu/internal/repository"
)

// PoolRepository implements pooling.PoolRepository for SQLite.
type PoolRepository struct {
	db *DB
}

// NewPoolRepository creates a new PoolRepository.
func NewPoolRepository(db *DB) *PoolRepository {
	return &PoolRepository{db: db}
}

// Create inserts a new pool.
func (r *PoolRepository) Create(ctx context.Context, p *pooling.Pool) error {
	query := `INSERT INTO pools (id, pool_name, created_at) VALUES (?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, p.ID, p.PoolName, p.CreatedAt); err != nil {
		return fmt.Errorf("failed to create pool: %w", err)
	}

	return nil
}

// Get retrieves a pool by ID.
func (r *PoolRepository) Get(ctx context.Context, id string) (*pooling.Pool, error) {
	query := `SELECT id, pool_name, created_at FROM pools WHERE id = ?`

	var p pooling.Pool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.PoolName, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}

	return &p, nil
}

// List retrieves pools matching the options, newest first.
func (r *PoolRepository) List(ctx context.Context, opts pooling.PoolListOptions) ([]pooling.Pool, error) {
	query := `SELECT id, pool_name, created_at FROM pools`
	var args []any

	if opts.Search != "" {
		query += " WHERE pool_name LIKE ?"
		args = append(args, "%"+opts.Search+"%")
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, opts.Limit, opts.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}
	defer rows.Close()

	pools := []pooling.Pool{}
	for rows.Next() {
		var p pooling.Pool
		if err := rows.Scan(&p.ID, &p.PoolName, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pool: %w", err)
		}
		pools = append(pools, p)
	}

	return pools, rows.Err()
}

// Update overwrites the pool name.
func (r *PoolRepository) Update(ctx context.Context, p *pooling.Pool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE pools SET pool_name = ? WHERE id = ?`, p.PoolName, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update pool: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a pool and its member rows, reporting how many members
// were removed. Both deletes run in one transaction so the count matches
// what actually went.
func (r *PoolRepository) Delete(ctx context.Context, id string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	memberResult, err := tx.ExecContext(ctx, `DELETE FROM pool_members WHERE pool_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete pool members: %w", err)
	}
	membersRemoved, err := memberResult.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	poolResult, err := tx.ExecContext(ctx, `DELETE FROM pools WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete pool: %w", err)
	}
	affected, err := poolResult.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return 0, repository.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit pool delete: %w", err)
	}

	return int(membersRemoved), nil
}
