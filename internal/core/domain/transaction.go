package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TxnDeposit      TransactionType = "Deposit"
	TxnWithdrawal   TransactionType = "Withdrawal"
	TxnInvestment   TransactionType = "Investment"
	TxnReinvestment TransactionType = "Reinvestment"
	TxnExpense      TransactionType = "Expense"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TxnDeposit, TxnWithdrawal, TxnInvestment, TxnReinvestment, TxnExpense:
		return true
	}
	return false
}

// IsInflow reports whether entries of this type carry a positive amount.
// Deposits and reinvestments flow in; withdrawals, investments and expenses flow out.
func (t TransactionType) IsInflow() bool {
	return t == TxnDeposit || t == TxnReinvestment
}

// TransactionStatus is the settlement state of a ledger entry.
type TransactionStatus string

const (
	TxnCompleted TransactionStatus = "Completed"
	TxnPending   TransactionStatus = "Pending"
	TxnFailed    TransactionStatus = "Failed"
)

// IsValid reports whether s is a known transaction status.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TxnCompleted, TxnPending, TxnFailed:
		return true
	}
	return false
}

// Transaction is an immutable ledger entry. Corrections are recorded as new entries.
type Transaction struct {
	TransactionID string            `json:"id"`
	MemberID      *string           `json:"memberId,omitempty"` // nil for club-wide entries
	Description   string            `json:"description"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Date          time.Time         `json:"date"`
	Amount        decimal.Decimal   `json:"amount"` // signed: positive = inflow
}

// IsClubEntry reports whether the entry belongs to the club rather than a member.
func (t Transaction) IsClubEntry() bool {
	return t.MemberID == nil
}

// BelongsTo reports whether the entry is attributed to memberID.
func (t Transaction) BelongsTo(memberID string) bool {
	return t.MemberID != nil && *t.MemberID == memberID
}

// Validate checks the required fields and the sign convention for the entry's type.
func (t Transaction) Validate() error {
	if t.TransactionID == "" {
		return fmt.Errorf("%w: transaction ID is required", apperrors.ErrValidation)
	}
	if t.Description == "" {
		return fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, t.Type)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: unknown transaction status %q", apperrors.ErrValidation, t.Status)
	}
	if t.Amount.IsZero() {
		return fmt.Errorf("%w: amount must not be zero", apperrors.ErrValidation)
	}
	if t.Type.IsInflow() && t.Amount.IsNegative() {
		return fmt.Errorf("%w: %s amount must be positive", apperrors.ErrValidation, t.Type)
	}
	if !t.Type.IsInflow() && t.Amount.IsPositive() {
		return fmt.Errorf("%w: %s amount must be negative", apperrors.ErrValidation, t.Type)
	}
	if t.MemberID != nil && *t.MemberID == "" {
		return fmt.Errorf("%w: member ID must be omitted rather than empty", apperrors.ErrValidation)
	}
	return nil
}

// SignedAmount returns magnitude with the sign the type requires.
func SignedAmount(t TransactionType, magnitude decimal.Decimal) decimal.Decimal {
	abs := magnitude.Abs()
	if t.IsInflow() {
		return abs
	}
	return abs.Neg()
}
