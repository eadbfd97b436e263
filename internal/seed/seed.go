// Package seed loads a sample compliance dataset for local development.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mhaugsand/fueleu/internal/domain/banking"
	"github.com/mhaugsand/fueleu/internal/domain/pooling"
	"github.com/mhaugsand/fueleu/internal/sqlite"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

type bankingSeed struct {
	vessel    string
	year      int
	banked    float64
	applied   float64
	remaining float64
	createdAt time.Time
}

type memberSeed struct {
	pool         int
	vessel       string
	contribution float64
	createdAt    time.Time
}

// Run inserts the sample dataset. It does not check for duplicates; run it
// against a fresh database.
func Run(ctx context.Context, db *sqlite.DB, logger zerolog.Logger) error {
	bankingRepo := sqlite.NewBankingRepository(db)
	poolRepo := sqlite.NewPoolRepository(db)
	memberRepo := sqlite.NewMemberRepository(db)

	bankingSeeds := []bankingSeed{
		{"Atlantic Star", 2024, 0, 0, 12500.5, date("2024-01-15")},
		{"Pacific Voyager", 2024, 8000.0, 3000.0, 5000.0, date("2024-02-10")},
		{"Nordic Explorer", 2025, 5000.0, 5000.0, 0, date("2025-01-05")},
		{"Ocean Crown", 2024, 0, 0, -8500.3, date("2024-03-20")},
		{"Maritime Pioneer", 2025, 15000.0, 2000.0, 13000.0, date("2025-01-12")},
		{"Atlantic Star", 2025, 12500.5, 4000.0, 8500.5, date("2025-01-20")},
	}
	for _, s := range bankingSeeds {
		rec := &banking.Record{
			ID:          uuid.NewString(),
			VesselName:  s.vessel,
			Year:        s.year,
			BankedCb:    s.banked,
			AppliedCb:   s.applied,
			RemainingCb: s.remaining,
			CreatedAt:   s.createdAt,
			Version:     1,
		}
		if err := bankingRepo.Create(ctx, rec); err != nil {
			return fmt.Errorf("seed banking record %s/%d: %w", s.vessel, s.year, err)
		}
	}

	poolNames := []struct {
		name      string
		createdAt time.Time
	}{
		{"European Shipping Alliance", date("2024-01-15")},
		{"Asia-Pacific Maritime Pool", date("2024-02-01")},
	}
	poolIDs := make([]string, len(poolNames))
	for i, p := range poolNames {
		pool := &pooling.Pool{
			ID:        uuid.NewString(),
			PoolName:  p.name,
			CreatedAt: p.createdAt,
		}
		if err := poolRepo.Create(ctx, pool); err != nil {
			return fmt.Errorf("seed pool %q: %w", p.name, err)
		}
		poolIDs[i] = pool.ID
	}

	memberSeeds := []memberSeed{
		{0, "Atlantic Star", 8500.0, date("2024-01-15")},
		{0, "Nordic Explorer", 6200.5, date("2024-01-18")},
		{0, "Ocean Crown", -4500.0, date("2024-01-22")},
		{1, "Pacific Voyager", 12000.0, date("2024-01-20")},
		{1, "Maritime Pioneer", 9500.0, date("2024-01-25")},
	}
	for _, s := range memberSeeds {
		member := &pooling.Member{
			ID:             uuid.NewString(),
			PoolID:         poolIDs[s.pool],
			VesselName:     s.vessel,
			ContributionCb: s.contribution,
			CreatedAt:      s.createdAt,
		}
		if err := memberRepo.Create(ctx, member); err != nil {
			return fmt.Errorf("seed pool member %q: %w", s.vessel, err)
		}
	}

	logger.Info().
		Int("bankingRecords", len(bankingSeeds)).
		Int("pools", len(poolNames)).
		Int("poolMembers", len(memberSeeds)).
		Msg("sample data loaded")
	return nil
}
