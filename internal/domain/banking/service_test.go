package banking_test

import (
	"context"
	"testing"

	"github.com/mhaugsand/fueleu/internal/domain/banking"
	"github.com/mhaugsand/fueleu/internal/repository"
	"github.com/mhaugsand/fueleu/internal/repository/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBankingService_Create(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.BankingRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := banking.NewService(repo, zerolog.Nop())
	rec, err := svc.Create(ctx, banking.CreateRequest{
		VesselName:  "Atlantic Star",
		Year:        2024,
		RemainingCb: 12500.5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	require.Equal(t, int64(1), rec.Version)
	require.Equal(t, 12500.5, rec.RemainingCb)
	repo.AssertExpectations(t)
}

func TestBankingService_Bank(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.BankingRepository{}
	repo.On("Get", ctx, "b1").Return(&banking.Record{
		ID: "b1", BankedCb: 0, AppliedCb: 0, RemainingCb: 12500.5, Version: 1,
	}, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(rec *banking.Record) bool {
		return rec.BankedCb == 5000 && rec.RemainingCb == 7500.5 && rec.AppliedCb == 0 && rec.Version == 2
	}), int64(1)).Return(nil)

	svc := banking.NewService(repo, zerolog.Nop())
	rec, err := svc.Bank(ctx, "b1", 5000)
	require.NoError(t, err)
	require.Equal(t, 5000.0, rec.BankedCb)
	require.Equal(t, 7500.5, rec.RemainingCb)
	repo.AssertExpectations(t)
}

func TestBankingService_Bank_InsufficientRemaining_NoWrite(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.BankingRepository{}
	repo.On("Get", ctx, "b1").Return(&banking.Record{
		ID: "b1", RemainingCb: 12500.5, Version: 1,
	}, nil)

	svc := banking.NewService(repo, zerolog.Nop())
	_, err := svc.Bank(ctx, "b1", 20000)
	require.ErrorIs(t, err, banking.ErrInsufficientRemaining)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBankingService_Apply(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.BankingRepository{}
	repo.On("Get", ctx, "b1").Return(&banking.Record{
		ID: "b1", BankedCb: 5000, AppliedCb: 0, RemainingCb: 7500.5, Version: 2,
	}, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(rec *banking.Record) bool {
		return rec.BankedCb == 3000 && rec.AppliedCb == 2000 && rec.RemainingCb == 9500.5
	}), int64(2)).Return(nil)

	svc := banking.NewService(repo, zerolog.Nop())
	rec, err := svc.Apply(ctx, "b1", 2000)
	require.NoError(t, err)
	require.Equal(t, 3000.0, rec.BankedCb)
	require.Equal(t, 2000.0, rec.AppliedCb)
	require.Equal(t, 9500.5, rec.RemainingCb)
}

func TestBankingService_Bank_RetriesOnConflict(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.BankingRepository{}
	repo.On("Get", ctx, "b1").Return(&banking.Record{
		ID: "b1", RemainingCb: 1000, Version: 1,
	}, nil).Once()
	repo.On("Update", ctx, mock.Anything, int64(1)).Return(repository.ErrConflict).Once()
	repo.On("Get", ctx, "b1").Return(&banking.Record{
		ID: "b1", BankedCb: 100, RemainingCb: 900, Version: 2,
	}, nil).Once()
	repo.On("Update", ctx, mock.Anything, int64(2)).Return(nil).Once()

	svc := banking.NewService(repo, zerolog.Nop())
	rec, err := svc.Bank(ctx, "b1", 500)
	require.NoError(t, err)
	require.Equal(t, 600.0, rec.BankedCb)
	require.Equal(t, 400.0, rec.RemainingCb)
	repo.AssertExpectations(t)
}

func TestBankingService_Bank_ConflictBudgetExhausted(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.BankingRepository{}
	repo.On("Get", ctx, "b1").Return(&banking.Record{
		ID: "b1", RemainingCb: 1000, Version: 1,
	}, nil)
	repo.On("Update", ctx, mock.Anything, int64(1)).Return(repository.ErrConflict)

	svc := banking.NewService(repo, zerolog.Nop())
	_, err := svc.Bank(ctx, "b1", 500)
	require.ErrorIs(t, err, banking.ErrConflict)
}

func TestBankingService_Update_EmptyPatch(t *testing.T) {
	svc := banking.NewService(&mocks.BankingRepository{}, zerolog.Nop())
	_, err := svc.Update(context.Background(), "b1", banking.UpdatePatch{})
	require.ErrorIs(t, err, banking.ErrNoUpdates)
}

func TestBankingService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.BankingRepository{}
	repo.On("Get", ctx, "ghost").Return(nil, repository.ErrNotFound)

	svc := banking.NewService(repo, zerolog.Nop())
	_, err := svc.Get(ctx, "ghost")
	require.ErrorIs(t, err, banking.ErrRecordNotFound)
}

func TestBankingService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.BankingRepository{}
	repo.On("Get", ctx, "b1").Return(&banking.Record{ID: "b1", VesselName: "Atlantic Star"}, nil)
	repo.On("Delete", ctx, "b1").Return(nil)

	svc := banking.NewService(repo, zerolog.Nop())
	rec, err := svc.Delete(ctx, "b1")
	require.NoError(t, err)
	require.Equal(t, "Atlantic Star", rec.VesselName)
	repo.AssertExpectations(t)
}
