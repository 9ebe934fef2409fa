package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_club/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
)

// promptContributionLimit caps how many contributions are embedded in a prompt.
const promptContributionLimit = 5

// insightService asks the text generator about a snapshot of the club. It
// only reads club state, and the generator runs outside the store lock.
type insightService struct {
	BaseService
	store     portsrepo.ClubReader
	generator portssvc.TextGenerator
}

// NewInsightService creates a new InsightService. generator may be nil when no
// API key is configured; Ask then reports the service as unavailable.
func NewInsightService(store portsrepo.ClubReader, generator portssvc.TextGenerator, opts ...Option) portssvc.InsightSvcFacade {
	return &insightService{BaseService: newBaseService(opts), store: store, generator: generator}
}

var _ portssvc.InsightSvcFacade = (*insightService)(nil)

func (s *insightService) BuildPrompt(ctx context.Context, query string) (string, error) {
	var contributions []domain.Transaction
	var investments []domain.Investment
	var proposals []domain.Proposal
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		for _, t := range st.Transactions {
			if len(contributions) == promptContributionLimit {
				break
			}
			if t.Type == domain.TxnDeposit {
				contributions = append(contributions, t)
			}
		}
		investments = append([]domain.Investment{}, st.Investments...)
		for _, p := range st.Proposals {
			if p.Status == domain.ProposalOpen {
				proposals = append(proposals, p)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are a helpful financial analyst for a small investment club of alumni.\n")
	b.WriteString("Here is the current state of our group's finances:\n")
	for _, section := range []struct {
		label string
		data  any
	}{
		{"Contributions Data", contributions},
		{"Investment Portfolio", investments},
		{"Active Proposals", proposals},
	} {
		raw, err := json.Marshal(section.data)
		if err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", section.label, err)
		}
		fmt.Fprintf(&b, "- %s: %s\n", section.label, raw)
	}
	b.WriteString("\nBased on this data, please answer the following user query. ")
	b.WriteString("Be concise, insightful, and provide actionable advice where appropriate.\n")
	fmt.Fprintf(&b, "User Query: %q\n", query)
	return b.String(), nil
}

// Ask implements portssvc.InsightSvcFacade
func (s *insightService) Ask(ctx context.Context, actorID, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", s.Reject(ctx, "ask_insight", fmt.Errorf("%w: query must not be empty", apperrors.ErrValidation))
	}
	if s.generator == nil {
		return "", s.Reject(ctx, "ask_insight", fmt.Errorf("%w: insight service is not configured", apperrors.ErrUnavailable))
	}

	prompt, err := s.BuildPrompt(ctx, query)
	if err != nil {
		return "", s.Reject(ctx, "ask_insight", err)
	}
	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", s.Reject(ctx, "ask_insight", fmt.Errorf("%w: insight generation failed: %v", apperrors.ErrUnavailable, err))
	}
	s.LogInfo(ctx, "Insight generated", slog.String("member_id", actorID), slog.Int("prompt_length", len(prompt)))
	return answer, nil
}
