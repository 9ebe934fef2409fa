package dto

import (
	"time"

	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams filters and pages the ledger. Results are newest first.
type ListTransactionsParams struct {
	MemberID  string  `form:"memberId"`
	Type      string  `form:"type" binding:"omitempty,oneof=Deposit Withdrawal Investment Reinvestment Expense"`
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps one page of transactions.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	NextToken    *string              `json:"nextToken,omitempty"`
}

// RecordTransactionRequest is a direct ledger entry by an admin or treasurer.
// Amount is signed and must follow the sign convention of Type.
type RecordTransactionRequest struct {
	MemberID    *string         `json:"memberId"` // omitted for club-wide entries
	Description string          `json:"description" binding:"required,notblank"`
	Type        string          `json:"type" binding:"required,oneof=Deposit Withdrawal Investment Reinvestment Expense"`
	Status      string          `json:"status" binding:"omitempty,oneof=Completed Pending Failed"`
	Date        *time.Time      `json:"date"`
	Amount      decimal.Decimal `json:"amount" binding:"required,cents"`
}

// RecordDepositRequest logs the acting member's own contribution.
type RecordDepositRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0,cents"`
	Description string          `json:"description"`
}
