package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mhaugsand/fueleu/internal/domain/route"
	"github.com/mhaugsand/fueleu/internal/repository"
)

// RouteRepository implements route.Repository for SQLite.
type RouteRepository struct {
	db *DB
}

// NewRouteRepository creates a new RouteRepository.
func NewRouteRepository(db *DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// Create inserts a new route.
func (r *RouteRepository) Create(ctx context.Context, rt *route.Route) error {
	query := `
		INSERT INTO routes (
			id, route_name, vessel_name, distance_nm, fuel_consumed_mt,
			ghg_intensity, reference_ghg_intensity, compliance_balance,
			year, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		rt.ID,
		rt.RouteName,
		rt.VesselName,
		rt.DistanceNm,
		rt.FuelConsumedMt,
		rt.GhgIntensity,
		rt.ReferenceGhgIntensity,
		rt.ComplianceBalance,
		rt.Year,
		rt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}

	return nil
}

// Get retrieves a route by ID.
func (r *RouteRepository) Get(ctx context.Context, id string) (*route.Route, error) {
	query := `
		SELECT id, route_name, vessel_name, distance_nm, fuel_consumed_mt,
		       ghg_intensity, reference_ghg_intensity, compliance_balance,
		       year, created_at
		FROM routes
		WHERE id = ?
	`

	var rt route.Route
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID,
		&rt.RouteName,
		&rt.VesselName,
		&rt.DistanceNm,
		&rt.FuelConsumedMt,
		&rt.GhgIntensity,
		&rt.ReferenceGhgIntensity,
		&rt.ComplianceBalance,
		&rt.Year,
		&rt.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	return &rt, nil
}

// List retrieves routes matching the options, newest first.
func (r *RouteRepository) List(ctx context.Context, opts route.ListOptions) ([]route.Route, error) {
	var conditions []string
	var args []any

	if opts.Search != "" {
		conditions = append(conditions, "(route_name LIKE ? OR vessel_name LIKE ?)")
		pattern := "%" + opts.Search + "%"
		args = append(args, pattern, pattern)
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
		SELECT id, route_name, vessel_name, distance_nm, fuel_consumed_mt,
		       ghg_intensity, reference_ghg_intensity, compliance_balance,
		       year, created_at
		FROM routes
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, opts.Limit, opts.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	defer rows.Close()

	routes := []route.Route{}
	for rows.Next() {
		var rt route.Route
		if err := rows.Scan(
			&rt.ID,
			&rt.RouteName,
			&rt.VesselName,
			&rt.DistanceNm,
			&rt.FuelConsumedMt,
			&rt.GhgIntensity,
			&rt.ReferenceGhgIntensity,
			&rt.ComplianceBalance,
			&rt.Year,
			&rt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		routes = append(routes, rt)
	}

	return routes, rows.Err()
}

// Update overwrites a route's mutable fields.
func (r *RouteRepository) Update(ctx context.Context, rt *route.Route) error {
	query := `
		UPDATE routes
		SET route_name = ?, vessel_name = ?, distance_nm = ?,
		    fuel_consumed_mt = ?, ghg_intensity = ?,
		    reference_ghg_intensity = ?, compliance_balance = ?, year = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		rt.RouteName,
		rt.VesselName,
		rt.DistanceNm,
		rt.FuelConsumedMt,
		rt.GhgIntensity,
		rt.ReferenceGhgIntensity,
		rt.ComplianceBalance,
		rt.Year,
		rt.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update route: %w", err)
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

// Delete removes a route.
func (r *RouteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM routes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
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
