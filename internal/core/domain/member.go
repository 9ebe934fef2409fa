package domain

import (
	"fmt"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Role is a capability tag carried by a member.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleTreasurer Role = "Treasurer"
	RoleMember    Role = "Member"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTreasurer, RoleMember:
		return true
	}
	return false
}

// ContributionStatus tracks whether the member's current contribution is in.
type ContributionStatus string

const (
	ContributionPaid    ContributionStatus = "Paid"
	ContributionPending ContributionStatus = "Pending"
)

// Member is a club member together with their profit balances.
type Member struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	Bio                string             `json:"bio"`
	AvatarURL          string             `json:"avatarUrl"`
	ContributionStatus ContributionStatus `json:"contributionStatus"`
	Role               Role               `json:"role"`
	AvailableProfit    decimal.Decimal    `json:"availableProfit"` // withdrawable balance, never negative
	WithdrawnProfit    decimal.Decimal    `json:"withdrawnProfit"` // cumulative, never decreases
}

// IsAdmin reports whether the member may run admin-only operations
// (approvals, overrides, distribution, deletions).
func (m Member) IsAdmin() bool {
	return m.Role == RoleAdmin
}

// CanManageFunds reports whether the member may record ledger entries and edit investments.
func (m Member) CanManageFunds() bool {
	return m.Role == RoleAdmin || m.Role == RoleTreasurer
}

// Credit adds a distributed share to the available balance.
func (m *Member) Credit(amount decimal.Decimal) {
	m.AvailableProfit = m.AvailableProfit.Add(amount)
}

// CanCover reports whether amount can leave the available balance without driving it negative.
func (m Member) CanCover(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(m.AvailableProfit)
}

// Withdraw moves amount from the available balance to the withdrawn total.
func (m *Member) Withdraw(amount decimal.Decimal) error {
	if err := m.debit(amount); err != nil {
		return err
	}
	m.WithdrawnProfit = m.WithdrawnProfit.Add(amount)
	return nil
}

// Reinvest returns amount from the available balance to the club pool.
func (m *Member) Reinvest(amount decimal.Decimal) error {
	return m.debit(amount)
}

func (m *Member) debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !m.CanCover(amount) {
		return fmt.Errorf("%w: amount %s exceeds available profit %s",
			apperrors.ErrValidation, amount.StringFixed(2), m.AvailableProfit.StringFixed(2))
	}
	m.AvailableProfit = m.AvailableProfit.Sub(amount)
	return nil
}
