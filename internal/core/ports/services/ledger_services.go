package services

import (
	"context"
	"time"

	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/SscSPs/investment_club/internal/dto"
)

// LedgerReaderSvc defines read operations over the ledger and its aggregates
type LedgerReaderSvc interface {
	// GetSummary recomputes the club-wide financial figures.
	GetSummary(ctx context.Context) (*domain.FinancialSummary, error)

	// ListTransactions returns one page of transactions, newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// GetGoalProgress measures deposits against the contribution goal as of now.
	GetGoalProgress(ctx context.Context, now time.Time) (*domain.GoalProgress, error)
}

// LedgerWriterSvc defines write operations for the ledger
type LedgerWriterSvc interface {
	// RecordTransaction appends a direct entry. Only admins and treasurers may record entries.
	RecordTransaction(ctx context.Context, actorID string, req dto.RecordTransactionRequest) (*domain.Transaction, error)

	// RecordDeposit logs a contribution by the acting member.
	RecordDeposit(ctx context.Context, actorID string, req dto.RecordDepositRequest) (*domain.Transaction, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}

// InvestmentSvcFacade manages the club portfolio.
type InvestmentSvcFacade interface {
	ListInvestments(ctx context.Context) ([]domain.Investment, error)
	AddInvestment(ctx context.Context, actorID string, req dto.CreateInvestmentRequest) (*domain.Investment, error)
	UpdateInvestment(ctx context.Context, actorID, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error)
}

// ReportingSvcFacade exposes read-only copies for export collaborators.
type ReportingSvcFacade interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}
