package accounting

import (
	"time"

	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/shopspring/decimal"
)

// These reductions are recomputed from the full collections on every call.
// Empty collections yield zero.

// TotalContributions sums the amounts of Deposit transactions.
func TotalContributions(txns []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		if t.Type == domain.TxnDeposit {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// ContributionsBy sums the Deposit amounts attributed to each member.
func ContributionsBy(txns []domain.Transaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, t := range txns {
		if t.Type == domain.TxnDeposit && t.MemberID != nil {
			out[*t.MemberID] = out[*t.MemberID].Add(t.Amount)
		}
	}
	return out
}

// DepositsWithin sums Deposit amounts dated in the half-open window (from, to].
func DepositsWithin(txns []domain.Transaction, from, to time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		if t.Type == domain.TxnDeposit && t.Date.After(from) && !t.Date.After(to) {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// TotalInvested sums the amount put into each holding.
func TotalInvested(investments []domain.Investment) decimal.Decimal {
	sum := decimal.Zero
	for _, i := range investments {
		sum = sum.Add(i.AmountInvested)
	}
	return sum
}

// TotalCurrentValue sums the current value of each holding.
func TotalCurrentValue(investments []domain.Investment) decimal.Decimal {
	sum := decimal.Zero
	for _, i := range investments {
		sum = sum.Add(i.CurrentValue)
	}
	return sum
}

// NetProfit is the portfolio's unrealized gain.
func NetProfit(investments []domain.Investment) decimal.Decimal {
	return TotalCurrentValue(investments).Sub(TotalInvested(investments))
}

// TotalWithdrawn sums every member's cumulative withdrawals.
func TotalWithdrawn(members []domain.Member) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range members {
		sum = sum.Add(m.WithdrawnProfit)
	}
	return sum
}

// TotalAssistancePaid sums approved assistance requests.
func TotalAssistancePaid(requests []domain.AssistanceRequest) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range requests {
		if r.Status == domain.StatusApproved {
			sum = sum.Add(r.Amount)
		}
	}
	return sum
}

// DistributableProfit = NetProfit - TotalWithdrawn - TotalAssistancePaid.
func DistributableProfit(s *domain.ClubState) decimal.Decimal {
	return NetProfit(s.Investments).
		Sub(TotalWithdrawn(s.Members)).
		Sub(TotalAssistancePaid(s.AssistanceRequests))
}

// Summarize derives the club-wide financial summary from the state.
func Summarize(s *domain.ClubState) domain.FinancialSummary {
	return domain.FinancialSummary{
		TotalContributions:  TotalContributions(s.Transactions),
		TotalInvested:       TotalInvested(s.Investments),
		TotalCurrentValue:   TotalCurrentValue(s.Investments),
		NetProfit:           NetProfit(s.Investments),
		TotalWithdrawn:      TotalWithdrawn(s.Members),
		TotalAssistancePaid: TotalAssistancePaid(s.AssistanceRequests),
		DistributableProfit: DistributableProfit(s),
		MemberCount:         len(s.Members),
	}
}
