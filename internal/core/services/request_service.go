package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_club/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/google/uuid"
)

// requestService applies the ledger and balance effects of resolving
// withdrawal and assistance requests. Each resolution is all-or-nothing:
// any failure leaves the request Pending and the ledger untouched.
type requestService struct {
	BaseService
	store portsrepo.ClubStore
}

// NewRequestService creates a new RequestService.
func NewRequestService(store portsrepo.ClubStore, opts ...Option) portssvc.RequestSvcFacade {
	return &requestService{BaseService: newBaseService(opts), store: store}
}

var _ portssvc.RequestSvcFacade = (*requestService)(nil)

func (s *requestService) ListWithdrawals(ctx context.Context, actorID string) ([]domain.WithdrawalRequest, error) {
	requests := []domain.WithdrawalRequest{}
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		m, err := actingMember(st, actorID)
		if err != nil {
			return err
		}
		for _, r := range st.WithdrawalRequests {
			if m.IsAdmin() || r.MemberID == m.ID {
				requests = append(requests, r)
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "list_withdrawals", err)
	}
	return requests, nil
}

func (s *requestService) SubmitWithdrawal(ctx context.Context, actorID string, req dto.CreateWithdrawalRequest) (*domain.WithdrawalRequest, error) {
	bank := strings.TrimSpace(req.BankName)
	account := strings.TrimSpace(req.AccountNumber)
	if !req.Amount.IsPositive() {
		return nil, s.Reject(ctx, "submit_withdrawal", fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation))
	}
	if bank == "" || account == "" {
		return nil, s.Reject(ctx, "submit_withdrawal", fmt.Errorf("%w: bank name and account number are required", apperrors.ErrValidation))
	}

	var request domain.WithdrawalRequest
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		m, err := actingMember(st, actorID)
		if err != nil {
			return err
		}
		if !m.CanCover(req.Amount) {
			return fmt.Errorf("%w: amount %s exceeds available profit %s",
				apperrors.ErrValidation, req.Amount.StringFixed(2), m.AvailableProfit.StringFixed(2))
		}
		request = domain.WithdrawalRequest{
			ID:            uuid.NewString(),
			MemberID:      m.ID,
			Amount:        req.Amount,
			Date:          s.now(),
			Status:        domain.WithdrawalPending,
			BankName:      bank,
			AccountNumber: account,
		}
		st.WithdrawalRequests = append(st.WithdrawalRequests, request)
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "submit_withdrawal", err, slog.String("amount", req.Amount.String()))
	}
	s.LogInfo(ctx, "Withdrawal requested", slog.String("request_id", request.ID), slog.String("amount", request.Amount.String()))
	return &request, nil
}

// ResolveWithdrawal implements portssvc.RequestSvcFacade
func (s *requestService) ResolveWithdrawal(ctx context.Context, actorID, requestID string, status domain.WithdrawalStatus) (*domain.WithdrawalRequest, error) {
	var resolved domain.WithdrawalRequest
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireAdmin(st, actorID); err != nil {
			return err
		}
		r, err := st.FindWithdrawal(requestID)
		if err != nil {
			return err
		}
		if err := domain.WithdrawalWorkflow.Transition(r.Status, status); err != nil {
			return err
		}
		m, err := st.FindMember(r.MemberID)
		if err != nil {
			return fmt.Errorf("%w: withdrawal request %s references missing member %s",
				apperrors.ErrInconsistentState, r.ID, r.MemberID)
		}

		now := s.now()
		if status == domain.WithdrawalCompleted {
			// The balance may have moved since the request was filed.
			if err := m.Withdraw(r.Amount); err != nil {
				return err
			}
			st.Transactions = append(st.Transactions, domain.Transaction{
				TransactionID: uuid.NewString(),
				MemberID:      &m.ID,
				Description:   "Withdrawal to " + r.BankName,
				Type:          domain.TxnWithdrawal,
				Status:        domain.TxnCompleted,
				Date:          now,
				Amount:        domain.SignedAmount(domain.TxnWithdrawal, r.Amount),
			})
		}
		r.Status = status
		r.ResolvedAt = &now
		r.ResolvedBy = actorID
		resolved = *r
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "resolve_withdrawal", err, slog.String("request_id", requestID))
	}
	s.Metrics.IncResolution("withdrawal", string(status))
	s.LogInfo(ctx, "Withdrawal resolved",
		slog.String("request_id", requestID),
		slog.String("status", string(status)),
		slog.String("amount", resolved.Amount.String()))
	return &resolved, nil
}

func (s *requestService) ListAssistanceRequests(ctx context.Context) ([]domain.AssistanceRequest, error) {
	var requests []domain.AssistanceRequest
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		requests = slices.Clone(st.AssistanceRequests)
		return nil
	})
	return requests, err
}

func (s *requestService) SubmitAssistanceRequest(ctx context.Context, actorID string, req dto.CreateAssistanceRequest) (*domain.AssistanceRequest, error) {
	purpose := strings.TrimSpace(req.Purpose)
	if !req.Amount.IsPositive() || purpose == "" {
		return nil, s.Reject(ctx, "submit_assistance", fmt.Errorf("%w: a positive amount and a purpose are required", apperrors.ErrValidation))
	}

	var request domain.AssistanceRequest
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		m, err := actingMember(st, actorID)
		if err != nil {
			return err
		}
		request = domain.AssistanceRequest{
			ID:          uuid.NewString(),
			RequesterID: m.ID,
			Amount:      req.Amount,
			Purpose:     purpose,
			Status:      domain.StatusPending,
			Ballot:      domain.Ballot{VotedIDs: []string{}},
			RequestDate: s.now(),
			Comments:    []domain.Comment{},
		}
		st.AssistanceRequests = append(st.AssistanceRequests, request)
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "submit_assistance", err)
	}
	s.LogInfo(ctx, "Assistance requested", slog.String("request_id", request.ID), slog.String("amount", request.Amount.String()))
	return &request, nil
}

// ResolveAssistance implements portssvc.RequestSvcFacade. Approved requests are
// paid from the club pool; no member balance changes.
func (s *requestService) ResolveAssistance(ctx context.Context, actorID, requestID string, status domain.ApprovalStatus) (*domain.AssistanceRequest, error) {
	var resolved domain.AssistanceRequest
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireAdmin(st, actorID); err != nil {
			return err
		}
		r, err := st.FindAssistanceRequest(requestID)
		if err != nil {
			return err
		}
		if err := domain.AssistanceWorkflow.Transition(r.Status, status); err != nil {
			return err
		}
		m, err := st.FindMember(r.RequesterID)
		if err != nil {
			return fmt.Errorf("%w: assistance request %s references missing member %s",
				apperrors.ErrInconsistentState, r.ID, r.RequesterID)
		}

		if status == domain.StatusApproved {
			st.Transactions = append(st.Transactions, domain.Transaction{
				TransactionID: uuid.NewString(),
				MemberID:      &m.ID,
				Description:   "Financial assistance for " + m.Name,
				Type:          domain.TxnExpense,
				Status:        domain.TxnCompleted,
				Date:          s.now(),
				Amount:        domain.SignedAmount(domain.TxnExpense, r.Amount),
			})
		}
		r.Status = status
		resolved = *r
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "resolve_assistance", err, slog.String("request_id", requestID))
	}
	s.Metrics.IncResolution(string(domain.KindAssistanceRequest), string(status))
	s.LogInfo(ctx, "Assistance request resolved",
		slog.String("request_id", requestID),
		slog.String("status", string(status)),
		slog.Int("votes_for", resolved.VotesFor),
		slog.Int("votes_against", resolved.VotesAgainst))
	return &resolved, nil
}

// Reinvest implements portssvc.RequestSvcFacade
func (s *requestService) Reinvest(ctx context.Context, actorID string, req dto.ReinvestRequest) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		m, err := actingMember(st, actorID)
		if err != nil {
			return err
		}
		if err := m.Reinvest(req.Amount); err != nil {
			return err
		}
		txn = domain.Transaction{
			TransactionID: uuid.NewString(),
			MemberID:      &m.ID,
			Description:   "Profit reinvested",
			Type:          domain.TxnReinvestment,
			Status:        domain.TxnCompleted,
			Date:          s.now(),
			Amount:        domain.SignedAmount(domain.TxnReinvestment, req.Amount),
		}
		st.Transactions = append(st.Transactions, txn)
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "reinvest", err, slog.String("amount", req.Amount.String()))
	}
	s.LogInfo(ctx, "Profit reinvested", slog.String("transaction_id", txn.TransactionID), slog.String("amount", txn.Amount.String()))
	return &txn, nil
}
