package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mhaugsand/fueleu/internal/repository"
	"github.com/rs/zerolog"
)

// Service handles route business logic.
type Service struct {
	routes Repository
	logger zerolog.Logger
}

// NewService creates a new route service.
func NewService(routes Repository, logger zerolog.Logger) *Service {
	return &Service{routes: routes, logger: logger}
}

// Create stores a new route. The request must already be validated.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Route, error) {
	rt := &Route{
		ID:                    uuid.NewString(),
		RouteName:             req.RouteName,
		VesselName:            req.VesselName,
		DistanceNm:            req.DistanceNm,
		FuelConsumedMt:        req.FuelConsumedMt,
		GhgIntensity:          req.GhgIntensity,
		ReferenceGhgIntensity: req.ReferenceGhgIntensity,
		ComplianceBalance:     req.ComplianceBalance,
		Year:                  req.Year,
		CreatedAt:             time.Now().UTC(),
	}

	if err := s.routes.Create(ctx, rt); err != nil {
		return nil, fmt.Errorf("creating route: %w", err)
	}

	s.logger.Info().Str("route_id", rt.ID).Str("vessel", rt.VesselName).Msg("route created")
	return rt, nil
}

// Get returns a route by ID.
func (s *Service) Get(ctx context.Context, id string) (*Route, error) {
	rt, err := s.routes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, fmt.Errorf("getting route: %w", err)
	}
	return rt, nil
}

// List returns routes matching the options, newest first.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Route, error) {
	return s.routes.List(ctx, opts)
}

// Update applies a partial update to a route and returns the stored result.
func (s *Service) Update(ctx context.Context, id string, patch UpdatePatch) (*Route, error) {
	if patch.Empty() {
		return nil, ErrNoUpdateFields
	}

	current, err := s.routes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, fmt.Errorf("loading route: %w", err)
	}

	updated := *current
	if patch.RouteName != nil {
		updated.RouteName = *patch.RouteName
	}
	if patch.VesselName != nil {
		updated.VesselName = *patch.VesselName
	}
	if patch.DistanceNm != nil {
		updated.DistanceNm = *patch.DistanceNm
	}
	if patch.FuelConsumedMt != nil {
		updated.FuelConsumedMt = *patch.FuelConsumedMt
	}
	if patch.GhgIntensity != nil {
		updated.GhgIntensity = *patch.GhgIntensity
	}
	if patch.ReferenceGhgIntensity != nil {
		updated.ReferenceGhgIntensity = *patch.ReferenceGhgIntensity
	}
	if patch.ComplianceBalance != nil {
		updated.ComplianceBalance = *patch.ComplianceBalance
	}
	if patch.Year != nil {
		updated.Year = *patch.Year
	}

	if err := s.routes.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, fmt.Errorf("updating route: %w", err)
	}

	return &updated, nil
}

// Delete removes a route and returns the deleted row.
func (s *Service) Delete(ctx context.Context, id string) (*Route, error) {
	rt, err := s.routes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, fmt.Errorf("loading route: %w", err)
	}

	if err := s.routes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, fmt.Errorf("deleting route: %w", err)
	}

	s.logger.Info().Str("route_id", id).Msg("route deleted")
	return rt, nil
}

// Compare loads two routes and compares them metric by metric.
func (s *Service) Compare(ctx context.Context, baselineID, comparisonID string) (*Comparison, error) {
	baseline, err := s.Get(ctx, baselineID)
	if err != nil {
		return nil, err
	}
	comparison, err := s.Get(ctx, comparisonID)
	if err != nil {
		return nil, err
	}

	cmp := Compare(baseline, comparison)
	return &cmp, nil
}
