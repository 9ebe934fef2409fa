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

// votingService records votes and closes proposals. Nothing resolves on its
// own: items stay open until an admin acts.
type votingService struct {
	BaseService
	store portsrepo.ClubStore
}

// NewVotingService creates a new VotingService.
func NewVotingService(store portsrepo.ClubStore, opts ...Option) portssvc.VotingSvcFacade {
	return &votingService{BaseService: newBaseService(opts), store: store}
}

var _ portssvc.VotingSvcFacade = (*votingService)(nil)

func (s *votingService) ListProposals(ctx context.Context) ([]domain.Proposal, error) {
	var proposals []domain.Proposal
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		proposals = slices.Clone(st.Proposals)
		return nil
	})
	return proposals, err
}

func (s *votingService) SubmitProposal(ctx context.Context, actorID string, req dto.CreateProposalRequest) (*domain.Proposal, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, s.Reject(ctx, "submit_proposal", fmt.Errorf("%w: title and description are required", apperrors.ErrValidation))
	}

	var proposal domain.Proposal
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		m, err := actingMember(st, actorID)
		if err != nil {
			return err
		}
		now := s.now()
		proposal = domain.Proposal{
			ID:          uuid.NewString(),
			Title:       title,
			Description: description,
			ProposedBy:  m.ID,
			Status:      domain.ProposalOpen,
			Ballot:      domain.Ballot{VotedIDs: []string{}},
			Comments:    []domain.Comment{},
			CreatedAt:   now,
		}
		st.Proposals = append(st.Proposals, proposal)
		st.Notify(domain.Notification{
			ID:        uuid.NewString(),
			Message:   fmt.Sprintf("A new proposal %q has been created.", title),
			Timestamp: now,
			Type:      domain.NotificationProposal,
		})
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "submit_proposal", err)
	}
	s.LogInfo(ctx, "Proposal submitted", slog.String("proposal_id", proposal.ID))
	return &proposal, nil
}

// CastVote implements portssvc.VotingSvcFacade
func (s *votingService) CastVote(ctx context.Context, actorID string, ref domain.ItemRef, choice domain.VoteChoice) (*domain.Ballot, error) {
	var ballot domain.Ballot
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := actingMember(st, actorID); err != nil {
			return err
		}
		item, err := st.Voteable(ref)
		if err != nil {
			return err
		}
		if !item.AcceptsVotes() {
			return fmt.Errorf("%w: %s %s is closed for voting", apperrors.ErrStateConflict, ref.Kind, ref.ID)
		}
		box := item.BallotBox()
		if err := box.Cast(actorID, choice); err != nil {
			return err
		}
		ballot = *box
		ballot.VotedIDs = slices.Clone(box.VotedIDs)
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "cast_vote", err,
			slog.String("kind", string(ref.Kind)), slog.String("item_id", ref.ID))
	}

	s.Metrics.IncVote(string(ref.Kind))
	s.LogInfo(ctx, "Vote recorded",
		slog.String("kind", string(ref.Kind)),
		slog.String("item_id", ref.ID),
		slog.String("vote", string(choice)))
	return &ballot, nil
}

// OverrideProposalStatus implements portssvc.VotingSvcFacade
func (s *votingService) OverrideProposalStatus(ctx context.Context, actorID, proposalID string, status domain.ProposalStatus) (*domain.Proposal, error) {
	p, err := s.closeProposal(ctx, actorID, proposalID, func(*domain.Proposal) domain.ProposalStatus { return status })
	if err != nil {
		return nil, s.Reject(ctx, "override_proposal", err, slog.String("proposal_id", proposalID))
	}
	return p, nil
}

// ResolveProposalByTally implements portssvc.VotingSvcFacade
func (s *votingService) ResolveProposalByTally(ctx context.Context, actorID, proposalID string) (*domain.Proposal, error) {
	p, err := s.closeProposal(ctx, actorID, proposalID, (*domain.Proposal).TallyOutcome)
	if err != nil {
		return nil, s.Reject(ctx, "resolve_proposal", err, slog.String("proposal_id", proposalID))
	}
	return p, nil
}

func (s *votingService) closeProposal(ctx context.Context, actorID, proposalID string, decide func(*domain.Proposal) domain.ProposalStatus) (*domain.Proposal, error) {
	var closed domain.Proposal
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireAdmin(st, actorID); err != nil {
			return err
		}
		p, err := st.FindProposal(proposalID)
		if err != nil {
			return err
		}
		next := decide(p)
		if err := domain.ProposalWorkflow.Transition(p.Status, next); err != nil {
			return err
		}
		p.Status = next
		closed = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Metrics.IncResolution(string(domain.KindProposal), string(closed.Status))
	s.LogInfo(ctx, "Proposal closed",
		slog.String("proposal_id", proposalID),
		slog.String("status", string(closed.Status)),
		slog.Int("votes_for", closed.VotesFor),
		slog.Int("votes_against", closed.VotesAgainst))
	return &closed, nil
}
