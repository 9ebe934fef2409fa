package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialSummary is the club-wide picture derived from the ledger, portfolio and member balances.
type FinancialSummary struct {
	TotalContributions  decimal.Decimal `json:"totalContributions"`
	TotalInvested       decimal.Decimal `json:"totalInvested"`
	TotalCurrentValue   decimal.Decimal `json:"totalCurrentValue"`
	NetProfit           decimal.Decimal `json:"netProfit"`
	TotalWithdrawn      decimal.Decimal `json:"totalWithdrawn"`
	TotalAssistancePaid decimal.Decimal `json:"totalAssistancePaid"`
	DistributableProfit decimal.Decimal `json:"distributableProfit"`
	MemberCount         int             `json:"memberCount"`
}

// ContributionGoal is the collection target deposits are measured against.
type ContributionGoal struct {
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Deadline     time.Time       `json:"deadline"`
}

// GoalProgress measures deposits inside the goal's window.
type GoalProgress struct {
	Goal        ContributionGoal `json:"goal"`
	WindowStart time.Time        `json:"windowStart"`
	Collected   decimal.Decimal  `json:"collected"`
	Remaining   decimal.Decimal  `json:"remaining"`
	Percent     decimal.Decimal  `json:"percent"`
	DaysLeft    int              `json:"daysLeft"`
}

// Snapshot is a read-only copy of the collections handed to export collaborators.
type Snapshot struct {
	TakenAt      time.Time     `json:"takenAt"`
	Members      []Member      `json:"members"`
	Transactions []Transaction `json:"transactions"`
	Investments  []Investment  `json:"investments"`
}
