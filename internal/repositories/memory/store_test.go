package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClubStore_UpdateCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := NewClubStore(&domain.ClubState{Members: []domain.Member{{ID: "A"}}})

	err := store.Update(ctx, func(s *domain.ClubState) error {
		s.Members[0].Credit(decimal.NewFromInt(250))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), store.Version(ctx))

	_ = store.Read(ctx, func(s *domain.ClubState) error {
		assert.True(t, s.Members[0].AvailableProfit.Equal(decimal.NewFromInt(250)))
		return nil
	})
}

func TestClubStore_UpdateDiscardsOnError(t *testing.T) {
	ctx := context.Background()
	store := NewClubStore(&domain.ClubState{Members: []domain.Member{{ID: "A", AvailableProfit: decimal.NewFromInt(100)}}})
	boom := errors.New("boom")

	err := store.Update(ctx, func(s *domain.ClubState) error {
		s.Members[0].Credit(decimal.NewFromInt(1))
		s.Notify(domain.Notification{ID: "n"})
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, uint64(0), store.Version(ctx))

	_ = store.Read(ctx, func(s *domain.ClubState) error {
		assert.True(t, s.Members[0].AvailableProfit.Equal(decimal.NewFromInt(100)))
		assert.Empty(t, s.Notifications)
		return nil
	})
}

func TestClubStore_ConcurrentUpdatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	store := NewClubStore(&domain.ClubState{Members: []domain.Member{{ID: "A"}}})

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Update(ctx, func(s *domain.ClubState) error {
				s.Members[0].Credit(decimal.NewFromInt(1))
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(writers), store.Version(ctx))
	_ = store.Read(ctx, func(s *domain.ClubState) error {
		assert.True(t, s.Members[0].AvailableProfit.Equal(decimal.NewFromInt(writers)))
		return nil
	})
}

func TestNewClubStore_NilState(t *testing.T) {
	store := NewClubStore(nil)
	err := store.Read(context.Background(), func(s *domain.ClubState) error {
		assert.Empty(t, s.Members)
		return nil
	})
	assert.NoError(t, err)
}
