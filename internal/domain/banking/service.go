package banking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mhaugsand/fueleu/internal/repository"
	"github.com/rs/zerolog"
)

// Two concurrent bank/apply calls against one record are serialized by the
// version compare-and-swap; the loser re-reads and re-checks its
// preconditions instead of overwriting the winner's effect.
const casRetries = 3

// Service handles banking-record business logic.
type Service struct {
	records Repository
	logger  zerolog.Logger
}

// NewService creates a new banking service.
func NewService(records Repository, logger zerolog.Logger) *Service {
	return &Service{records: records, logger: logger}
}

// Create stores a new banking record. The request must already be validated.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Record, error) {
	rec := &Record{
		ID:          uuid.NewString(),
		VesselName:  req.VesselName,
		Year:        req.Year,
		BankedCb:    req.BankedCb,
		AppliedCb:   req.AppliedCb,
		RemainingCb: req.RemainingCb,
		CreatedAt:   time.Now().UTC(),
		Version:     1,
	}

	if err := s.records.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("creating banking record: %w", err)
	}

	s.logger.Info().Str("record_id", rec.ID).Str("vessel", rec.VesselName).
		Int("year", rec.Year).Msg("banking record created")
	return rec, nil
}

// Get returns a banking record by ID.
func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	rec, err := s.records.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("getting banking record: %w", err)
	}
	return rec, nil
}

// List returns banking records matching the options, newest first.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Record, error) {
	return s.records.List(ctx, opts)
}

// Update applies a partial field update. It writes exactly the supplied
// fields and does not re-derive any balance; bank/apply arithmetic goes
// through Bank and Apply instead.
func (s *Service) Update(ctx context.Context, id string, patch UpdatePatch) (*Record, error) {
	if patch.Empty() {
		return nil, ErrNoUpdates
	}

	return s.mutate(ctx, id, func(rec Record) (Record, error) {
		if patch.VesselName != nil {
			rec.VesselName = *patch.VesselName
		}
		if patch.Year != nil {
			rec.Year = *patch.Year
		}
		if patch.BankedCb != nil {
			rec.BankedCb = *patch.BankedCb
		}
		if patch.AppliedCb != nil {
			rec.AppliedCb = *patch.AppliedCb
		}
		if patch.RemainingCb != nil {
			rec.RemainingCb = *patch.RemainingCb
		}
		return rec, nil
	})
}

// Bank moves amount from remaining into banked and persists the result.
func (s *Service) Bank(ctx context.Context, id string, amount float64) (*Record, error) {
	rec, err := s.mutate(ctx, id, func(rec Record) (Record, error) {
		return Bank(rec, amount)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("record_id", id).Float64("amount", amount).
		Float64("banked_cb", rec.BankedCb).Float64("remaining_cb", rec.RemainingCb).
		Msg("compliance balance banked")
	return rec, nil
}

// Apply converts amount of banked balance into applied balance and persists
// the result.
func (s *Service) Apply(ctx context.Context, id string, amount float64) (*Record, error) {
	rec, err := s.mutate(ctx, id, func(rec Record) (Record, error) {
		return Apply(rec, amount)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("record_id", id).Float64("amount", amount).
		Float64("banked_cb", rec.BankedCb).Float64("applied_cb", rec.AppliedCb).
		Float64("remaining_cb", rec.RemainingCb).Msg("compliance balance applied")
	return rec, nil
}

// Delete removes a banking record and returns the deleted row.
func (s *Service) Delete(ctx context.Context, id string) (*Record, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.records.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("deleting banking record: %w", err)
	}

	s.logger.Info().Str("record_id", id).Msg("banking record deleted")
	return rec, nil
}

// mutate runs a read-modify-write cycle under the version CAS, retrying a
// bounded number of times when another writer got there first.
func (s *Service) mutate(ctx context.Context, id string, transform func(Record) (Record, error)) (*Record, error) {
	for attempt := 0; attempt < casRetries; attempt++ {
		current, err := s.records.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrRecordNotFound
			}
			return nil, fmt.Errorf("loading banking record: %w", err)
		}

		updated, err := transform(*current)
		if err != nil {
			return nil, err
		}
		updated.Version = current.Version + 1

		err = s.records.Update(ctx, &updated, current.Version)
		if err == nil {
			return &updated, nil
		}
		if errors.Is(err, repository.ErrConflict) {
			s.logger.Debug().Str("record_id", id).Int("attempt", attempt+1).
				Msg("banking record version conflict, retrying")
			continue
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("updating banking record: %w", err)
	}

	return nil, ErrConflict
}
