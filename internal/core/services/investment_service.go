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

type investmentService struct {
	BaseService
	store portsrepo.ClubStore
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(store portsrepo.ClubStore, opts ...Option) portssvc.InvestmentSvcFacade {
	return &investmentService{BaseService: newBaseService(opts), store: store}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	var investments []domain.Investment
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		investments = slices.Clone(st.Investments)
		return nil
	})
	return investments, err
}

func (s *investmentService) AddInvestment(ctx context.Context, actorID string, req dto.CreateInvestmentRequest) (*domain.Investment, error) {
	asset := strings.TrimSpace(req.Asset)
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if asset == "" || ticker == "" {
		return nil, s.Reject(ctx, "add_investment", fmt.Errorf("%w: asset and ticker are required", apperrors.ErrValidation))
	}
	if req.AmountInvested.IsNegative() || req.CurrentValue.IsNegative() || req.Shares.IsNegative() {
		return nil, s.Reject(ctx, "add_investment", fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation))
	}

	var inv domain.Investment
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireFundManager(st, actorID); err != nil {
			return err
		}
		inv = domain.Investment{
			ID:             uuid.NewString(),
			Asset:          asset,
			Ticker:         ticker,
			AmountInvested: req.AmountInvested,
			CurrentValue:   req.CurrentValue,
			Shares:         req.Shares,
			AuditFields:    domain.NewAuditFields(actorID, s.now()),
		}
		st.Investments = append(st.Investments, inv)
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "add_investment", err)
	}
	s.LogInfo(ctx, "Investment added", slog.String("investment_id", inv.ID), slog.String("ticker", inv.Ticker))
	return &inv, nil
}

func (s *investmentService) UpdateInvestment(ctx context.Context, actorID, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error) {
	var updated domain.Investment
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireFundManager(st, actorID); err != nil {
			return err
		}
		inv, err := st.FindInvestment(investmentID)
		if err != nil {
			return err
		}
		if req.Asset != nil {
			inv.Asset = strings.TrimSpace(*req.Asset)
		}
		if req.Ticker != nil {
			inv.Ticker = strings.ToUpper(strings.TrimSpace(*req.Ticker))
		}
		if req.AmountInvested != nil {
			inv.AmountInvested = *req.AmountInvested
		}
		if req.CurrentValue != nil {
			inv.CurrentValue = *req.CurrentValue
		}
		if req.Shares != nil {
			inv.Shares = *req.Shares
		}
		if inv.Asset == "" || inv.Ticker == "" {
			return fmt.Errorf("%w: asset and ticker are required", apperrors.ErrValidation)
		}
		if inv.AmountInvested.IsNegative() || inv.CurrentValue.IsNegative() || inv.Shares.IsNegative() {
			return fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
		}
		inv.Touch(actorID, s.now())
		updated = *inv
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "update_investment", err, slog.String("investment_id", investmentID))
	}
	s.LogInfo(ctx, "Investment updated", slog.String("investment_id", investmentID))
	return &updated, nil
}
