package services

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_club/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/SscSPs/investment_club/internal/utils/accounting"
	"github.com/SscSPs/investment_club/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerService derives aggregates from the ledger and appends new entries.
// Aggregates are recomputed from the full collections on every call.
type ledgerService struct {
	BaseService
	store  portsrepo.ClubStore
	window time.Duration
}

// NewLedgerService creates a new LedgerService. window is the span before the
// goal deadline in which deposits count towards the contribution goal.
func NewLedgerService(store portsrepo.ClubStore, window time.Duration, opts ...Option) portssvc.LedgerSvcFacade {
	return &ledgerService{BaseService: newBaseService(opts), store: store, window: window}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetSummary(ctx context.Context) (*domain.FinancialSummary, error) {
	var summary domain.FinancialSummary
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		summary = accounting.Summarize(st)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListTransactions implements portssvc.LedgerReaderSvc
func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := pagination.ClampLimit(params.Limit)

	var cursorDate time.Time
	var cursorID string
	if params.NextToken != nil && *params.NextToken != "" {
		var err error
		cursorDate, cursorID, err = pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, s.Reject(ctx, "list_transactions", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
	}

	var txns []domain.Transaction
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		for _, t := range st.Transactions {
			if params.MemberID != "" && !t.BelongsTo(params.MemberID) {
				continue
			}
			if params.Type != "" && string(t.Type) != params.Type {
				continue
			}
			txns = append(txns, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(txns, func(a, b domain.Transaction) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.TransactionID, a.TransactionID)
	})
	if cursorID != "" {
		start := slices.IndexFunc(txns, func(t domain.Transaction) bool {
			return pagination.After(t.Date, t.TransactionID, cursorDate, cursorID)
		})
		if start < 0 {
			start = len(txns)
		}
		txns = txns[start:]
	}

	resp := &dto.ListTransactionsResponse{Transactions: []domain.Transaction{}}
	if len(txns) > limit {
		last := txns[limit-1]
		token := pagination.EncodeToken(last.Date, last.TransactionID)
		resp.NextToken = &token
		txns = txns[:limit]
	}
	resp.Transactions = append(resp.Transactions, txns...)
	return resp, nil
}

// GetGoalProgress measures deposits in the window (deadline - window, deadline].
func (s *ledgerService) GetGoalProgress(ctx context.Context, now time.Time) (*domain.GoalProgress, error) {
	var progress domain.GoalProgress
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		goal := st.Goal
		start := goal.Deadline.Add(-s.window)
		collected := accounting.DepositsWithin(st.Transactions, start, goal.Deadline)

		remaining := goal.TargetAmount.Sub(collected)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		percent := decimal.Zero
		if goal.TargetAmount.IsPositive() {
			percent = collected.Div(goal.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
			if percent.GreaterThan(decimal.NewFromInt(100)) {
				percent = decimal.NewFromInt(100)
			}
		}
		daysLeft := 0
		if left := goal.Deadline.Sub(now); left > 0 {
			daysLeft = int(math.Ceil(left.Hours() / 24))
		}

		progress = domain.GoalProgress{
			Goal:        goal,
			WindowStart: start,
			Collected:   collected,
			Remaining:   remaining,
			Percent:     percent,
			DaysLeft:    daysLeft,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// RecordTransaction implements portssvc.LedgerWriterSvc
func (s *ledgerService) RecordTransaction(ctx context.Context, actorID string, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		MemberID:      req.MemberID,
		Description:   strings.TrimSpace(req.Description),
		Type:          domain.TransactionType(req.Type),
		Status:        domain.TransactionStatus(req.Status),
		Amount:        req.Amount,
		Date:          s.now(),
	}
	if txn.Status == "" {
		txn.Status = domain.TxnCompleted
	}
	if req.Date != nil {
		txn.Date = req.Date.UTC()
	}
	if err := txn.Validate(); err != nil {
		return nil, s.Reject(ctx, "record_transaction", err)
	}

	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireFundManager(st, actorID); err != nil {
			return err
		}
		if txn.MemberID != nil {
			if _, err := st.FindMember(*txn.MemberID); err != nil {
				return fmt.Errorf("%w: transaction references unknown member %s", apperrors.ErrValidation, *txn.MemberID)
			}
		}
		st.Transactions = append(st.Transactions, txn)
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "record_transaction", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// RecordDeposit logs a contribution by the acting member and marks their contribution as paid.
func (s *ledgerService) RecordDeposit(ctx context.Context, actorID string, req dto.RecordDepositRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, s.Reject(ctx, "record_deposit", fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation))
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "Monthly contribution"
	}

	var txn domain.Transaction
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		m, err := actingMember(st, actorID)
		if err != nil {
			return err
		}
		txn = domain.Transaction{
			TransactionID: uuid.NewString(),
			MemberID:      &m.ID,
			Description:   description,
			Type:          domain.TxnDeposit,
			Status:        domain.TxnCompleted,
			Date:          s.now(),
			Amount:        req.Amount,
		}
		if err := txn.Validate(); err != nil {
			return err
		}
		st.Transactions = append(st.Transactions, txn)
		m.ContributionStatus = domain.ContributionPaid
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "record_deposit", err)
	}

	s.LogInfo(ctx, "Deposit recorded", slog.String("transaction_id", txn.TransactionID), slog.String("amount", txn.Amount.String()))
	return &txn, nil
}
