package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_club/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/utils"
	"github.com/SscSPs/investment_club/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// quoteNamespace scopes confirmation tokens so they cannot collide with entity ids.
var quoteNamespace = uuid.MustParse("5b0d1a3e-7c57-4b8e-9a43-2f1d6c0e8f21")

// distributionService splits distributable profit between members. A
// distribution is previewed first; the preview's token is only honoured while
// the club state is unchanged, so a confirmation cannot be replayed.
type distributionService struct {
	BaseService
	store  portsrepo.ClubStore
	policy domain.DistributionPolicy
}

// NewDistributionService creates a new DistributionService using policy for every distribution.
func NewDistributionService(store portsrepo.ClubStore, policy domain.DistributionPolicy, opts ...Option) portssvc.DistributionSvcFacade {
	if !policy.IsValid() {
		policy = domain.PolicyEqual
	}
	return &distributionService{BaseService: newBaseService(opts), store: store, policy: policy}
}

var _ portssvc.DistributionSvcFacade = (*distributionService)(nil)

// PreviewDistribution implements portssvc.DistributionSvcFacade
func (s *distributionService) PreviewDistribution(ctx context.Context, actorID string) (*domain.DistributionQuote, error) {
	var quote *domain.DistributionQuote
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		if _, err := requireAdmin(st, actorID); err != nil {
			return err
		}
		var err error
		quote, err = s.quote(st)
		return err
	})
	if err != nil {
		return nil, s.Reject(ctx, "preview_distribution", err)
	}
	s.LogDebug(ctx, "Distribution previewed",
		slog.String("distributable", quote.DistributableProfit.String()),
		slog.Uint64("state_version", quote.StateVersion))
	return quote, nil
}

// Distribute implements portssvc.DistributionSvcFacade
func (s *distributionService) Distribute(ctx context.Context, actorID, confirmationToken string) (*domain.DistributionRecord, error) {
	var record domain.DistributionRecord
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireAdmin(st, actorID); err != nil {
			return err
		}
		quote, err := s.quote(st)
		if err != nil {
			return err
		}
		if quote.ConfirmationToken != confirmationToken {
			return fmt.Errorf("%w: the distribution quote is stale, preview again", apperrors.ErrStateConflict)
		}

		for _, share := range quote.Shares {
			m, err := st.FindMember(share.MemberID)
			if err != nil {
				return err
			}
			m.Credit(share.Amount)
		}

		now := s.now()
		record = domain.DistributionRecord{
			ID:            uuid.NewString(),
			Policy:        quote.Policy,
			Total:         quote.DistributableProfit,
			MemberCount:   quote.MemberCount,
			Shares:        quote.Shares,
			DistributedAt: now,
			DistributedBy: actorID,
		}
		st.Distributions = append(st.Distributions, record)
		st.Notify(domain.Notification{
			ID:        uuid.NewString(),
			Message:   distributionMessage(quote),
			Timestamp: now,
			Type:      domain.NotificationDistribution,
		})
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "distribute", err)
	}

	s.Metrics.ObserveDistribution(record.Total)
	s.LogInfo(ctx, "Profit distributed",
		slog.String("distribution_id", record.ID),
		slog.String("policy", string(record.Policy)),
		slog.String("total", record.Total.String()),
		slog.Int("member_count", record.MemberCount))
	return &record, nil
}

func (s *distributionService) ListDistributions(ctx context.Context) ([]domain.DistributionRecord, error) {
	var records []domain.DistributionRecord
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		records = slices.Clone(st.Distributions)
		return nil
	})
	return records, err
}

// quote computes what a distribution would do against st. It fails when there
// is nothing to distribute, so callers never see a quote that moves no money.
func (s *distributionService) quote(st *domain.ClubState) (*domain.DistributionQuote, error) {
	distributable := accounting.DistributableProfit(st)
	if !distributable.IsPositive() {
		return nil, fmt.Errorf("%w: no distributable profit (%s)", apperrors.ErrValidation, utils.FormatMoney(distributable))
	}
	if len(st.Members) == 0 {
		return nil, fmt.Errorf("%w: the club has no members", apperrors.ErrValidation)
	}

	var shares []domain.MemberShare
	switch s.policy {
	case domain.PolicyContributionWeighted:
		var err error
		shares, err = weightedShares(st, distributable)
		if err != nil {
			return nil, err
		}
	default:
		shares = equalShares(st.Members, distributable)
	}

	return &domain.DistributionQuote{
		Policy:              s.policy,
		DistributableProfit: distributable,
		MemberCount:         len(st.Members),
		Shares:              shares,
		StateVersion:        st.Version,
		ConfirmationToken:   confirmationToken(st.Version, s.policy, distributable),
	}, nil
}

func equalShares(members []domain.Member, total decimal.Decimal) []domain.MemberShare {
	each := total.Div(decimal.NewFromInt(int64(len(members))))
	shares := make([]domain.MemberShare, len(members))
	for i, m := range members {
		shares[i] = domain.MemberShare{MemberID: m.ID, Amount: each}
	}
	return shares
}

func weightedShares(st *domain.ClubState, total decimal.Decimal) ([]domain.MemberShare, error) {
	byMember := accounting.ContributionsBy(st.Transactions)
	pool := decimal.Zero
	for _, m := range st.Members {
		pool = pool.Add(byMember[m.ID])
	}
	if !pool.IsPositive() {
		return nil, fmt.Errorf("%w: no member contributions to weight the distribution by", apperrors.ErrValidation)
	}
	shares := make([]domain.MemberShare, len(st.Members))
	for i, m := range st.Members {
		shares[i] = domain.MemberShare{MemberID: m.ID, Amount: total.Mul(byMember[m.ID]).Div(pool)}
	}
	return shares, nil
}

func confirmationToken(version uint64, policy domain.DistributionPolicy, total decimal.Decimal) string {
	return uuid.NewSHA1(quoteNamespace, fmt.Appendf(nil, "%d|%s|%s", version, policy, total.String())).String()
}

func distributionMessage(q *domain.DistributionQuote) string {
	if q.Policy == domain.PolicyContributionWeighted {
		return fmt.Sprintf("Distributed $%s among %d members in proportion to their contributions",
			utils.FormatMoney(q.DistributableProfit), q.MemberCount)
	}
	each := q.DistributableProfit.Div(decimal.NewFromInt(int64(q.MemberCount)))
	return fmt.Sprintf("Distributed $%s among %d members ($%s each)",
		utils.FormatMoney(q.DistributableProfit), q.MemberCount, utils.FormatMoney(each))
}
