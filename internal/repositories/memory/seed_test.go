package memory

import (
	"testing"
	"time"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/SscSPs/investment_club/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestFixtureState(t *testing.T) {
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	s, err := FixtureState(SeedOptions{Now: now})
	require.NoError(t, err)

	assert.Len(t, s.Members, 4)
	assert.Equal(t, domain.RoleAdmin, s.Members[0].Role)
	assert.Len(t, s.Investments, 3)
	assert.Len(t, s.Proposals, 3)
	assert.Len(t, s.AssistanceRequests, 2)
	assert.Equal(t, now.AddDate(0, 0, -2), s.Notifications[0].Timestamp)

	assert.True(t, accounting.NetProfit(s.Investments).Equal(decimal.NewFromInt(350)))
	assert.True(t, accounting.TotalWithdrawn(s.Members).Equal(decimal.NewFromInt(245)))
	assert.True(t, accounting.TotalAssistancePaid(s.AssistanceRequests).Equal(decimal.NewFromInt(250)))

	want := map[string]string{"1": "66.67", "2": "41.67", "3": "38.33", "4": "0"}
	for _, m := range s.Members {
		assert.True(t, m.AvailableProfit.Equal(decimal.RequireFromString(want[m.ID])), "member %s got %s", m.ID, m.AvailableProfit)
	}
}

func TestValidateState_CollectsEveryViolation(t *testing.T) {
	s := &domain.ClubState{
		Members: []domain.Member{
			{ID: "1", Role: domain.RoleAdmin},
			{ID: "1", Role: "Owner", AvailableProfit: decimal.NewFromInt(-1)},
		},
		Proposals: []domain.Proposal{{ID: "p", Ballot: domain.Ballot{VotesFor: 2, VotedIDs: []string{"1"}}}},
	}

	err := ValidateState(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Len(t, multierr.Errors(err), 4)
}
