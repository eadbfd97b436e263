package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mhaugsand/fueleu/internal/domain/pooling"
	"github.com/mhaugsand/fueleu/internal/repository"
)

// MemberRepository implements pooling.MemberRepository for SQLite.
type MemberRepository struct {
	db *DB
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(db *DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create inserts a new pool member.
func (r *MemberRepository) Create(ctx context.Context, m *pooling.Member) error {
	query := `
		INSERT INTO pool_members (id, pool_id, vessel_name, contribution_cb, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.PoolID, m.VesselName, m.ContributionCb, m.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create pool member: %w", err)
	}

	return nil
}

// Get retrieves a pool member by ID.
func (r *MemberRepository) Get(ctx context.Context, id string) (*pooling.Member, error) {
	query := `
		SELECT id, pool_id, vessel_name, contribution_cb, created_at
		FROM pool_members
		WHERE id = ?
	`

	var m pooling.Member
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.PoolID, &m.VesselName, &m.ContributionCb, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pool member: %w", err)
	}

	return &m, nil
}

// List retrieves pool members matching the options, newest first.
func (r *MemberRepository) List(ctx context.Context, opts pooling.MemberListOptions) ([]pooling.Member, error) {
	var conditions []string
	var args []any

	if opts.PoolID != "" {
		conditions = append(conditions, "pool_id = ?")
		args = append(args, opts.PoolID)
	}
	if opts.Search != "" {
		conditions = append(conditions, "vessel_name LIKE ?")
		args = append(args, "%"+opts.Search+"%")
	}

	query := `SELECT id, pool_id, vessel_name, contribution_cb, created_at FROM pool_members`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, opts.Limit, opts.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pool members: %w", err)
	}
	defer rows.Close()

	return scanMembers(rows)
}

// ListByPool retrieves every member of a pool, oldest first, for aggregate
// views.
func (r *MemberRepository) ListByPool(ctx context.Context, poolID string) ([]pooling.Member, error) {
	query := `
		SELECT id, pool_id, vessel_name, contribution_cb, created_at
		FROM pool_members
		WHERE pool_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, poolID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pool members: %w", err)
	}
	defer rows.Close()

	return scanMembers(rows)
}

// Update overwrites a pool member's mutable fields.
func (r *MemberRepository) Update(ctx context.Context, m *pooling.Member) error {
	query := `
		UPDATE pool_members
		SET pool_id = ?, vessel_name = ?, contribution_cb = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, m.PoolID, m.VesselName, m.ContributionCb, m.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to update pool member: %w", err)
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

// Delete removes a pool member.
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pool_members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pool member: %w", err)
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

func scanMembers(rows *sql.Rows) ([]pooling.Member, error) {
	members := []pooling.Member{}
	for rows.Next() {
		var m pooling.Member
		if err := rows.Scan(&m.ID, &m.PoolID, &m.VesselName, &m.ContributionCb, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pool member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
