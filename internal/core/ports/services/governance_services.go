package services

import (
	"context"

	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/SscSPs/investment_club/internal/dto"
)

// VotingSvcFacade covers proposals and exactly-once voting on proposals and assistance requests.
type VotingSvcFacade interface {
	ListProposals(ctx context.Context) ([]domain.Proposal, error)

	// SubmitProposal opens a new proposal with an empty tally.
	SubmitProposal(ctx context.Context, actorID string, req dto.CreateProposalRequest) (*domain.Proposal, error)

	// CastVote records the actor's vote on an open item. A repeat vote or a
	// closed item is rejected and leaves the tally unchanged.
	CastVote(ctx context.Context, actorID string, ref domain.ItemRef, choice domain.VoteChoice) (*domain.Ballot, error)

	// OverrideProposalStatus sets a terminal status regardless of the tally. Admin only.
	OverrideProposalStatus(ctx context.Context, actorID, proposalID string, status domain.ProposalStatus) (*domain.Proposal, error)

	// ResolveProposalByTally closes a proposal as Passed on a strict majority for, Failed otherwise. Admin only.
	ResolveProposalByTally(ctx context.Context, actorID, proposalID string) (*domain.Proposal, error)
}

// ApprovalSvcFacade gates business listings and events behind admin approval.
type ApprovalSvcFacade interface {
	ListListings(ctx context.Context, status domain.ApprovalStatus) ([]domain.BusinessListing, error)
	SubmitListing(ctx context.Context, actorID string, req dto.CreateListingRequest) (*domain.BusinessListing, error)
	UpdateListing(ctx context.Context, actorID, listingID string, req dto.UpdateListingRequest) (*domain.BusinessListing, error)
	SetListingStatus(ctx context.Context, actorID, listingID string, status domain.ApprovalStatus) (*domain.BusinessListing, error)
	DeleteListing(ctx context.Context, actorID, listingID string) error

	ListEvents(ctx context.Context, status domain.ApprovalStatus) ([]domain.Event, error)
	SubmitEvent(ctx context.Context, actorID string, req dto.CreateEventRequest) (*domain.Event, error)
	UpdateEvent(ctx context.Context, actorID, eventID string, req dto.UpdateEventRequest) (*domain.Event, error)
	// SetEventStatus approves or rejects an event. Approval notifies members.
	SetEventStatus(ctx context.Context, actorID, eventID string, status domain.ApprovalStatus) (*domain.Event, error)
	DeleteEvent(ctx context.Context, actorID, eventID string) error
}

// RequestSvcFacade applies the financial side effects of withdrawal and assistance requests.
type RequestSvcFacade interface {
	// ListWithdrawals returns every request for admins and the actor's own requests otherwise.
	ListWithdrawals(ctx context.Context, actorID string) ([]domain.WithdrawalRequest, error)
	SubmitWithdrawal(ctx context.Context, actorID string, req dto.CreateWithdrawalRequest) (*domain.WithdrawalRequest, error)
	// ResolveWithdrawal completes or rejects a pending withdrawal. Completion re-checks the member's balance.
	ResolveWithdrawal(ctx context.Context, actorID, requestID string, status domain.WithdrawalStatus) (*domain.WithdrawalRequest, error)

	ListAssistanceRequests(ctx context.Context) ([]domain.AssistanceRequest, error)
	SubmitAssistanceRequest(ctx context.Context, actorID string, req dto.CreateAssistanceRequest) (*domain.AssistanceRequest, error)
	// ResolveAssistance approves or rejects a pending request. Approval pays out of the club pool.
	ResolveAssistance(ctx context.Context, actorID, requestID string, status domain.ApprovalStatus) (*domain.AssistanceRequest, error)

	// Reinvest moves part of the actor's available profit back into the club.
	Reinvest(ctx context.Context, actorID string, req dto.ReinvestRequest) (*domain.Transaction, error)
}

// DistributionSvcFacade allocates distributable profit to members in two steps.
type DistributionSvcFacade interface {
	// PreviewDistribution quotes a distribution and returns the token required to carry it out.
	PreviewDistribution(ctx context.Context, actorID string) (*domain.DistributionQuote, error)
	// Distribute carries out the previewed distribution if the state has not changed since.
	Distribute(ctx context.Context, actorID, confirmationToken string) (*domain.DistributionRecord, error)
	ListDistributions(ctx context.Context) ([]domain.DistributionRecord, error)
}

// CommentSvcFacade manages comment threads on any commentable item.
type CommentSvcFacade interface {
	AddComment(ctx context.Context, actorID string, ref domain.ItemRef, req dto.CreateCommentRequest) (*domain.Comment, error)
	// DeleteComment removes one comment. Admin only.
	DeleteComment(ctx context.Context, actorID string, ref domain.ItemRef, commentID string) error
}

// NotificationSvcFacade exposes the notification feed to the view layer.
type NotificationSvcFacade interface {
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	MarkAllViewed(ctx context.Context) error
	SetRead(ctx context.Context, notificationID string, read bool) (*domain.Notification, error)
}
