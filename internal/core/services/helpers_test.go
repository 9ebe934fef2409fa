package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/investment_club/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_club/internal/core/ports/repositories"
	"github.com/SscSPs/investment_club/internal/core/services"
	"github.com/SscSPs/investment_club/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	adminID     = "1"
	treasurerID = "2"
	bobID       = "3"
	charlieID   = "4"
)

var fixedNow = time.Date(2024, 11, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() services.Option {
	return services.WithClock(func() time.Time { return fixedNow })
}

func newFixtureStore(t *testing.T) portsrepo.ClubStore {
	t.Helper()
	st, err := memory.FixtureState(memory.SeedOptions{
		Goal: domain.ContributionGoal{TargetAmount: dec("5000"), Deadline: time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)},
		Now:  fixedNow,
	})
	require.NoError(t, err)
	return memory.NewClubStore(st)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}

// readState returns a copy of the committed state for assertions.
func readState(t *testing.T, store portsrepo.ClubReader) *domain.ClubState {
	t.Helper()
	var out *domain.ClubState
	require.NoError(t, store.Read(context.Background(), func(st *domain.ClubState) error {
		out = st.Clone()
		return nil
	}))
	return out
}

func member(t *testing.T, store portsrepo.ClubReader, id string) domain.Member {
	t.Helper()
	m, err := readState(t, store).FindMember(id)
	require.NoError(t, err)
	return *m
}
