package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/SscSPs/investment_club/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func memberID(s string) *string {
	return &s
}

func TestReductions_EmptyCollections(t *testing.T) {
	assert.True(t, accounting.TotalContributions(nil).IsZero())
	assert.True(t, accounting.TotalInvested(nil).IsZero())
	assert.True(t, accounting.TotalCurrentValue(nil).IsZero())
	assert.True(t, accounting.NetProfit(nil).IsZero())
	assert.True(t, accounting.TotalWithdrawn(nil).IsZero())
	assert.True(t, accounting.TotalAssistancePaid(nil).IsZero())
	assert.True(t, accounting.DistributableProfit(&domain.ClubState{}).IsZero())
}

func TestTotalContributions_OnlyDeposits(t *testing.T) {
	txns := []domain.Transaction{
		{Type: domain.TxnDeposit, Amount: d("100"), MemberID: memberID("1")},
		{Type: domain.TxnDeposit, Amount: d("100"), MemberID: memberID("2")},
		{Type: domain.TxnWithdrawal, Amount: d("-50"), MemberID: memberID("3")},
		{Type: domain.TxnInvestment, Amount: d("-1000")},
		{Type: domain.TxnReinvestment, Amount: d("20"), MemberID: memberID("2")},
	}
	assert.True(t, accounting.TotalContributions(txns).Equal(d("200")))

	by := accounting.ContributionsBy(txns)
	assert.Len(t, by, 2)
	assert.True(t, by["1"].Equal(d("100")))
}

func TestDepositsWithin(t *testing.T) {
	deadline := time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)
	from := deadline.AddDate(0, -3, 0)
	txns := []domain.Transaction{
		{Type: domain.TxnDeposit, Amount: d("100"), Date: from},                    // excluded, window is open at the start
		{Type: domain.TxnDeposit, Amount: d("40"), Date: from.Add(time.Hour)},      // included
		{Type: domain.TxnDeposit, Amount: d("60"), Date: deadline},                 // included
		{Type: domain.TxnDeposit, Amount: d("999"), Date: deadline.Add(time.Hour)}, // after deadline
		{Type: domain.TxnExpense, Amount: d("-5"), Date: deadline},
	}
	assert.True(t, accounting.DepositsWithin(txns, from, deadline).Equal(d("100")))
}

func TestDistributableProfit(t *testing.T) {
	tests := []struct {
		name  string
		state domain.ClubState
		want  string
	}{
		{
			name: "gain with no withdrawals",
			state: domain.ClubState{
				Members:     []domain.Member{{ID: "A"}, {ID: "B"}},
				Investments: []domain.Investment{{AmountInvested: d("1000"), CurrentValue: d("1500")}},
			},
			want: "500",
		},
		{
			name: "withdrawals and approved assistance reduce the pool",
			state: domain.ClubState{
				Members: []domain.Member{{WithdrawnProfit: d("50")}, {WithdrawnProfit: d("75")}},
				Investments: []domain.Investment{
					{AmountInvested: d("1000"), CurrentValue: d("1250")},
					{AmountInvested: d("800"), CurrentValue: d("750")},
					{AmountInvested: d("1200"), CurrentValue: d("1350")},
				},
				AssistanceRequests: []domain.AssistanceRequest{
					{Amount: d("250"), Status: domain.StatusApproved},
					{Amount: d("500"), Status: domain.StatusPending},
				},
			},
			want: "-25",
		},
		{
			name: "portfolio loss",
			state: domain.ClubState{
				Investments: []domain.Investment{{AmountInvested: d("800"), CurrentValue: d("750")}},
			},
			want: "-50",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.DistributableProfit(&tt.state)
			assert.True(t, got.Equal(d(tt.want)), "got %s", got)
		})
	}
}

func TestSummarize(t *testing.T) {
	s := &domain.ClubState{
		Members:      []domain.Member{{ID: "A", WithdrawnProfit: d("10")}},
		Transactions: []domain.Transaction{{Type: domain.TxnDeposit, Amount: d("100")}},
		Investments:  []domain.Investment{{AmountInvested: d("100"), CurrentValue: d("130")}},
	}
	sum := accounting.Summarize(s)
	assert.True(t, sum.TotalContributions.Equal(d("100")))
	assert.True(t, sum.NetProfit.Equal(d("30")))
	assert.True(t, sum.DistributableProfit.Equal(d("20")))
	assert.Equal(t, 1, sum.MemberCount)
}
