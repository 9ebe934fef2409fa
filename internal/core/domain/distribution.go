package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DistributionPolicy decides how the distributable pool is split between members.
type DistributionPolicy string

const (
	// PolicyEqual gives every member the same share.
	PolicyEqual DistributionPolicy = "equal"
	// PolicyContributionWeighted splits in proportion to each member's total deposits.
	PolicyContributionWeighted DistributionPolicy = "contribution_weighted"
)

// IsValid reports whether p is a known policy.
func (p DistributionPolicy) IsValid() bool {
	return p == PolicyEqual || p == PolicyContributionWeighted
}

// ParseDistributionPolicy maps a config value to a policy.
func ParseDistributionPolicy(s string) (DistributionPolicy, error) {
	p := DistributionPolicy(s)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown distribution policy %q", s)
	}
	return p, nil
}

// MemberShare is one member's allocation.
type MemberShare struct {
	MemberID string          `json:"memberId"`
	Amount   decimal.Decimal `json:"amount"`
}

// DistributionQuote is what a distribution would do against a given state version.
type DistributionQuote struct {
	Policy              DistributionPolicy `json:"policy"`
	DistributableProfit decimal.Decimal    `json:"distributableProfit"`
	MemberCount         int                `json:"memberCount"`
	Shares              []MemberShare      `json:"shares"`
	StateVersion        uint64             `json:"stateVersion"`
	ConfirmationToken   string             `json:"confirmationToken"`
}

// DistributionRecord is the stored outcome of a distribution.
type DistributionRecord struct {
	ID            string             `json:"id"`
	Policy        DistributionPolicy `json:"policy"`
	Total         decimal.Decimal    `json:"total"`
	MemberCount   int                `json:"memberCount"`
	Shares        []MemberShare      `json:"shares"`
	DistributedAt time.Time          `json:"distributedAt"`
	DistributedBy string             `json:"distributedBy"`
}
