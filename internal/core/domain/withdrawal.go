package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalStatus is the processing state of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "Pending"
	WithdrawalCompleted WithdrawalStatus = "Completed"
	WithdrawalRejected  WithdrawalStatus = "Rejected"
)

// WithdrawalRequest asks for part of a member's available profit to be paid out to a bank account.
type WithdrawalRequest struct {
	ID            string           `json:"id"`
	MemberID      string           `json:"memberId"`
	Amount        decimal.Decimal  `json:"amount"`
	Date          time.Time        `json:"date"`
	Status        WithdrawalStatus `json:"status"`
	BankName      string           `json:"bankName"`
	AccountNumber string           `json:"accountNumber"` // last 4 digits only
	ResolvedAt    *time.Time       `json:"resolvedAt,omitempty"`
	ResolvedBy    string           `json:"resolvedBy,omitempty"`
}
