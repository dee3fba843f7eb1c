package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"bloomnet-dispatch/internal/apperr"
	"bloomnet-dispatch/internal/domain"
)

func TestDonationRepo_CreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewDonationRepo(nil)

	created, err := repo.Create(ctx, domain.Donation{Name: "Idli Batter"})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Idli Batter", got.Name)
	require.False(t, got.Claimed)
	require.Nil(t, got.Responder)
}

func TestDonationRepo_GetUnknown(t *testing.T) {
	t.Parallel()

	repo := NewDonationRepo(SeedDonations())
	_, err := repo.Get(context.Background(), 999)
	require.ErrorIs(t, err, apperr.NotFound)
}

func TestDonationRepo_SeedIDsPreservedAndContinued(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewDonationRepo(SeedDonations())

	got, err := repo.Get(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, "Rice & Dal", got.Name)

	created, err := repo.Create(ctx, domain.Donation{Name: "Extra"})
	require.NoError(t, err)
	require.Equal(t, int64(4), created.ID)
}

func TestDonationRepo_ListNewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewDonationRepo(nil)

	_, err := repo.Create(ctx, domain.Donation{Name: "old"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.Donation{Name: "new"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "new", list[0].Name)
	require.Equal(t, "old", list[1].Name)
}

func TestDonationRepo_ClaimTransitions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewDonationRepo(SeedDonations())
	resp := domain.Responder{ID: 1, Name: "Raj Kumar"}

	claimed, err := repo.Claim(ctx, 1, resp)
	require.NoError(t, err)
	require.True(t, claimed.Claimed)
	require.NotNil(t, claimed.Responder)
	require.Equal(t, "Raj Kumar", claimed.Responder.Name)

	_, err = repo.Claim(ctx, 1, domain.Responder{ID: 2, Name: "Priya Sharma"})
	require.ErrorIs(t, err, apperr.AlreadyClaimed)

	// binding not overwritten by the losing claim
	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Raj Kumar", got.Responder.Name)

	_, err = repo.Claim(ctx, 999, resp)
	require.ErrorIs(t, err, apperr.NotFound)
}

func TestDonationRepo_ConcurrentClaimSingleWinner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewDonationRepo(SeedDonations())

	const callers = 16
	var wg sync.WaitGroup
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Claim(ctx, 2, domain.Responder{ID: int64(i + 1)})
		}(i)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, apperr.AlreadyClaimed)
			losses++
		}
	}
	require.Equal(t, 1, wins)
	require.Equal(t, callers-1, losses)
}
