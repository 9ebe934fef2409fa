package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

func validTxn() domain.Transaction {
	return domain.Transaction{
		TransactionID: "t1",
		MemberID:      stringPtr("2"),
		Description:   "Monthly Contribution",
		Type:          domain.TxnDeposit,
		Status:        domain.TxnCompleted,
		Date:          time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(100),
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Transaction)
		wantErr bool
	}{
		{name: "valid deposit", mutate: func(*domain.Transaction) {}},
		{
			name: "valid club-wide investment",
			mutate: func(tx *domain.Transaction) {
				tx.MemberID = nil
				tx.Type = domain.TxnInvestment
				tx.Amount = decimal.NewFromInt(-1000)
			},
		},
		{
			name: "withdrawal must be negative",
			mutate: func(tx *domain.Transaction) {
				tx.Type = domain.TxnWithdrawal
			},
			wantErr: true,
		},
		{
			name: "reinvestment must be positive",
			mutate: func(tx *domain.Transaction) {
				tx.Type = domain.TxnReinvestment
				tx.Amount = decimal.NewFromInt(-5)
			},
			wantErr: true,
		},
		{
			name:    "zero amount",
			mutate:  func(tx *domain.Transaction) { tx.Amount = decimal.Zero },
			wantErr: true,
		},
		{
			name:    "unknown type",
			mutate:  func(tx *domain.Transaction) { tx.Type = "Dividend" },
			wantErr: true,
		},
		{
			name:    "unknown status",
			mutate:  func(tx *domain.Transaction) { tx.Status = "Settled" },
			wantErr: true,
		},
		{
			name:    "missing description",
			mutate:  func(tx *domain.Transaction) { tx.Description = "" },
			wantErr: true,
		},
		{
			name:    "empty member id instead of nil",
			mutate:  func(tx *domain.Transaction) { tx.MemberID = stringPtr("") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTxn()
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrValidation), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		txnType domain.TransactionType
		in      int64
		want    int64
	}{
		{domain.TxnDeposit, 50, 50},
		{domain.TxnDeposit, -50, 50},
		{domain.TxnReinvestment, 20, 20},
		{domain.TxnWithdrawal, 50, -50},
		{domain.TxnExpense, 250, -250},
		{domain.TxnInvestment, -10, -10},
	}

	for _, tt := range tests {
		t.Run(string(tt.txnType), func(t *testing.T) {
			got := domain.SignedAmount(tt.txnType, decimal.NewFromInt(tt.in))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestTransaction_BelongsTo(t *testing.T) {
	tx := validTxn()
	assert.True(t, tx.BelongsTo("2"))
	assert.False(t, tx.BelongsTo("3"))
	assert.False(t, tx.IsClubEntry())

	tx.MemberID = nil
	assert.False(t, tx.BelongsTo("2"))
	assert.True(t, tx.IsClubEntry())
}
