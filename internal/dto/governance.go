package dto

import "github.com/shopspring/decimal"

// CreateProposalRequest submits a governance proposal.
type CreateProposalRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=200"`
	Description string `json:"description" binding:"required,notblank"`
}

// CastVoteRequest records a vote on a proposal or assistance request.
type CastVoteRequest struct {
	Vote string `json:"vote" binding:"required,oneof=for against"`
}

// SetStatusRequest moves an item to a terminal status.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateAssistanceRequest asks the club pool for financial assistance.
type CreateAssistanceRequest struct {
	Amount  decimal.Decimal `json:"amount" binding:"required,gt=0,cents"`
	Purpose string          `json:"purpose" binding:"required,notblank"`
}

// CreateWithdrawalRequest asks for part of the member's available profit to be paid out.
type CreateWithdrawalRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required,gt=0,cents"`
	BankName      string          `json:"bankName" binding:"required,notblank"`
	AccountNumber string          `json:"accountNumber" binding:"required,len=4,numeric"`
}

// ReinvestRequest returns part of the member's available profit to the club pool.
type ReinvestRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0,cents"`
}

// CreateCommentRequest adds a comment to an item.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,notblank,max=2000"`
}

// SetReadRequest toggles the read flag of a notification.
type SetReadRequest struct {
	Read bool `json:"read"`
}

// DistributeRequest confirms a distribution previewed earlier.
type DistributeRequest struct {
	ConfirmationToken string `json:"confirmationToken" binding:"required"`
}

// InsightRequest asks a question about the club's finances.
type InsightRequest struct {
	Query string `json:"query" binding:"required,notblank,max=2000"`
}

// InsightResponse carries the generated answer.
type InsightResponse struct {
	Answer string `json:"answer"`
}
