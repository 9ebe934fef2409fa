package domain_test

import (
	"testing"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMember_Withdraw(t *testing.T) {
	m := domain.Member{ID: "A", AvailableProfit: decimal.NewFromInt(100), WithdrawnProfit: decimal.NewFromInt(10)}

	err := m.Withdraw(decimal.NewFromInt(150))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.True(t, m.AvailableProfit.Equal(decimal.NewFromInt(100)))
	assert.True(t, m.WithdrawnProfit.Equal(decimal.NewFromInt(10)))

	require.NoError(t, m.Withdraw(decimal.NewFromInt(100)))
	assert.True(t, m.AvailableProfit.IsZero())
	assert.True(t, m.WithdrawnProfit.Equal(decimal.NewFromInt(110)))
}

func TestMember_DebitRejectsNonPositive(t *testing.T) {
	m := domain.Member{AvailableProfit: decimal.NewFromInt(100)}
	assert.ErrorIs(t, m.Withdraw(decimal.Zero), apperrors.ErrValidation)
	assert.ErrorIs(t, m.Reinvest(decimal.NewFromInt(-1)), apperrors.ErrValidation)
	assert.True(t, m.AvailableProfit.Equal(decimal.NewFromInt(100)))
}

func TestMember_ReinvestKeepsWithdrawnTotal(t *testing.T) {
	m := domain.Member{AvailableProfit: decimal.NewFromInt(80), WithdrawnProfit: decimal.NewFromInt(5)}
	require.NoError(t, m.Reinvest(decimal.NewFromInt(30)))
	assert.True(t, m.AvailableProfit.Equal(decimal.NewFromInt(50)))
	assert.True(t, m.WithdrawnProfit.Equal(decimal.NewFromInt(5)))
}

func TestMember_Roles(t *testing.T) {
	tests := []struct {
		role        domain.Role
		admin       bool
		manageFunds bool
	}{
		{domain.RoleAdmin, true, true},
		{domain.RoleTreasurer, false, true},
		{domain.RoleMember, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			m := domain.Member{Role: tt.role}
			assert.Equal(t, tt.admin, m.IsAdmin())
			assert.Equal(t, tt.manageFunds, m.CanManageFunds())
		})
	}
}
