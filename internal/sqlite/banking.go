package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mhaugsand/fueleu/internal/domain/banking"
	"github.com/mhaugsand/fueleu/internal/repository"
)

// BankingRepository implements banking.Repository for SQLite.
type BankingRepository struct {
	db *DB
}

// NewBankingRepository creates a new BankingRepository.
func NewBankingRepository(db *DB) *BankingRepository {
	return &BankingRepository{db: db}
}

// Create inserts a new banking record.
func (r *BankingRepository) Create(ctx context.Context, rec *banking.Record) error {
	query := `
		INSERT INTO banking_records (
			id, vessel_name, year, banked_cb, applied_cb, remaining_cb,
			created_at, version
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.VesselName,
		rec.Year,
		rec.BankedCb,
		rec.AppliedCb,
		rec.RemainingCb,
		rec.CreatedAt,
		rec.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to create banking record: %w", err)
	}

	return nil
}

// Get retrieves a banking record by ID.
func (r *BankingRepository) Get(ctx context.Context, id string) (*banking.Record, error) {
	query := `
		SELECT id, vessel_name, year, banked_cb, applied_cb, remaining_cb,
		       created_at, version
		FROM banking_records
		WHERE id = ?
	`

	var rec banking.Record
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.VesselName,
		&rec.Year,
		&rec.BankedCb,
		&rec.AppliedCb,
		&rec.RemainingCb,
		&rec.CreatedAt,
		&rec.Version,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get banking record: %w", err)
	}

	return &rec, nil
}

// List retrieves banking records matching the options, newest first.
func (r *BankingRepository) List(ctx context.Context, opts banking.ListOptions) ([]banking.Record, error) {
	var conditions []string
	var args []any

	if opts.Search != "" {
		conditions = append(conditions, "vessel_name LIKE ?")
		args = append(args, "%"+opts.Search+"%")
	}
	if opts.Vessel != "" {
		conditions = append(conditions, "vessel_name LIKE ?")
		args = append(args, "%"+opts.Vessel+"%")
	}
	if opts.Year != nil {
		conditions = append(conditions, "year = ?")
		args = append(args, *opts.Year)
	}

	query := `
		SELECT id, vessel_name, year, banked_cb, applied_cb, remaining_cb,
		       created_at, version
		FROM banking_records
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, opts.Limit, opts.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list banking records: %w", err)
	}
	defer rows.Close()

	records := []banking.Record{}
	for rows.Next() {
		var rec banking.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.VesselName,
			&rec.Year,
			&rec.BankedCb,
			&rec.AppliedCb,
			&rec.RemainingCb,
			&rec.CreatedAt,
			&rec.Version,
		); err != nil {
			return nil, fmt.Errorf("failed to scan banking record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Update overwrites a banking record with optimistic concurrency control.
// The write only lands when the stored version still equals expectedVersion.
func (r *BankingRepository) Update(ctx context.Context, rec *banking.Record, expectedVersion int64) error {
	query := `
		UPDATE banking_records
		SET vessel_name = ?, year = ?, banked_cb = ?, applied_cb = ?,
		    remaining_cb = ?, version = ?
		WHERE id = ? AND version = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		rec.VesselName,
		rec.Year,
		rec.BankedCb,
		rec.AppliedCb,
		rec.RemainingCb,
		rec.Version,
		rec.ID,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update banking record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM banking_records WHERE id = ?)`
		if err := r.db.QueryRowContext(ctx, checkQuery, rec.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check banking record existence: %w", err)
		}
		if !exists {
			return repository.ErrNotFound
		}
		// Row exists but the version moved on under us.
		return repository.ErrConflict
	}

	return nil
}

// Delete removes a banking record.
func (r *BankingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM banking_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete banking record: %w", err)
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
