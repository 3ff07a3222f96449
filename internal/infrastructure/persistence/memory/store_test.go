package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanscope/loanscope/internal/domain/model"
	"github.com/loanscope/loanscope/internal/domain/port"
	"github.com/loanscope/loanscope/internal/domain/valueobject"
	"github.com/loanscope/loanscope/internal/infrastructure/persistence/memory"
)

func seedInstitution(t *testing.T, store *memory.Store) model.Institution {
	t.Helper()
	inst, err := model.NewInstitution(
		"Test Bank", "https://test.example.com", "",
		[]valueobject.LoanType{valueobject.LoanTypeMortgage, valueobject.LoanTypeAuto},
		4.2, time.Now().UTC(),
	)
	require.NoError(t, err)
	require.NoError(t, store.SaveInstitution(context.Background(), inst))
	return inst
}

func seedProduct(t *testing.T, store *memory.Store, instID, name string, rateBps int) model.LoanProduct {
	t.Helper()
	p, err := model.NewLoanProduct(
		instID, name, valueobject.LoanTypeMortgage,
		decimal.NewFromInt(50_000), decimal.NewFromInt(1_000_000),
		120, 360, rateBps, false, 620,
		nil, nil, false, time.Now().UTC(),
	)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), p))
	return p
}

func seedObservation(t *testing.T, store *memory.Store, productID string, rateBps, scoreMin, scoreMax int, at time.Time) model.RateObservation {
	t.Helper()
	scoreRange, err := valueobject.NewCreditScoreRange(scoreMin, scoreMax)
	require.NoError(t, err)
	obs, err := model.NewRateObservation(productID, at, rateBps, 360, scoreRange, nil)
	require.NoError(t, err)
	require.NoError(t, store.Append(context.Background(), obs))
	return obs
}

func TestStore_Catalog(t *testing.T) {
	ctx := context.Background()

	t.Run("find by ID attaches the institution", func(t *testing.T) {
		store := memory.NewStore()
		inst := seedInstitution(t, store)
		p := seedProduct(t, store, inst.ID(), "Fixed 30", 450)

		entry, err := store.FindByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, p.ID(), entry.Product.ID())
		assert.Equal(t, inst.ID(), entry.Institution.ID())
	})

	t.Run("unknown product is a sentinel error", func(t *testing.T) {
		store := memory.NewStore()
		_, err := store.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, port.ErrProductNotFound)
	})

	t.Run("eligible query preserves insertion order", func(t *testing.T) {
		store := memory.NewStore()
		inst := seedInstitution(t, store)
		first := seedProduct(t, store, inst.ID(), "First", 450)
		second := seedProduct(t, store, inst.ID(), "Second", 435)

		entries, err := store.FindEligible(ctx, model.EligibilityQuery{
			LoanType:    valueobject.LoanTypeMortgage,
			Amount:      decimal.NewFromInt(250_000),
			TermMonths:  360,
			CreditScore: 700,
		})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, first.ID(), entries[0].Product.ID())
		assert.Equal(t, second.ID(), entries[1].Product.ID())
	})

	t.Run("eligible query filters by product bounds", func(t *testing.T) {
		store := memory.NewStore()
		inst := seedInstitution(t, store)
		seedProduct(t, store, inst.ID(), "Mortgage", 450)

		entries, err := store.FindEligible(ctx, model.EligibilityQuery{
			LoanType:    valueobject.LoanTypeMortgage,
			Amount:      decimal.NewFromInt(250_000),
			TermMonths:  360,
			CreditScore: 580, // below the 620 floor
		})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("save is an upsert", func(t *testing.T) {
		store := memory.NewStore()
		inst := seedInstitution(t, store)
		p := seedProduct(t, store, inst.ID(), "Fixed 30", 450)

		require.NoError(t, store.Save(ctx, p.Deactivate(time.Now().UTC())))

		entry, err := store.FindByID(ctx, p.ID())
		require.NoError(t, err)
		assert.False(t, entry.Product.Active())

		entries, err := store.ListByType(ctx, valueobject.LoanTypeMortgage)
		require.NoError(t, err)
		assert.Empty(t, entries, "inactive products are not listed")
	})
}

func TestStore_RateHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("latest applicable picks the newest matching band", func(t *testing.T) {
		store := memory.NewStore()
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		seedObservation(t, store, "p1", 450, 620, 850, base)
		newest := seedObservation(t, store, "p1", 442, 620, 850, base.AddDate(0, 1, 0))
		seedObservation(t, store, "p1", 410, 760, 850, base.AddDate(0, 2, 0)) // newer but wrong band

		obs, err := store.LatestApplicable(ctx, "p1", 700)
		require.NoError(t, err)
		assert.Equal(t, newest.ID(), obs.ID())
		assert.Equal(t, 442, obs.RateBps())
	})

	t.Run("no matching band is a sentinel error", func(t *testing.T) {
		store := memory.NewStore()
		seedObservation(t, store, "p1", 450, 760, 850, time.Now().UTC())

		_, err := store.LatestApplicable(ctx, "p1", 700)
		assert.ErrorIs(t, err, port.ErrNoApplicableRate)
	})

	t.Run("history returns newest first with a limit", func(t *testing.T) {
		store := memory.NewStore()
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			seedObservation(t, store, "p1", 450+i, 620, 850, base.AddDate(0, 0, i))
		}

		history, err := store.HistoryForProduct(ctx, "p1", 3)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, 454, history[0].RateBps())
		assert.True(t, history[0].ObservedAt().After(history[1].ObservedAt()))
	})
}

func TestStore_Institutions(t *testing.T) {
	store := memory.NewStore()
	inst := seedInstitution(t, store)
	repo := store.Institutions()

	found, err := repo.FindByID(context.Background(), inst.ID())
	require.NoError(t, err)
	assert.Equal(t, inst.Name(), found.Name())

	_, err = repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, port.ErrInstitutionNotFound)

	active, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
