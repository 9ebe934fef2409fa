package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus is the governance state of a proposal.
type ProposalStatus string

const (
	ProposalOpen   ProposalStatus = "Open"
	ProposalPassed ProposalStatus = "Passed"
	ProposalFailed ProposalStatus = "Failed"
)

// ApprovalStatus is shared by assistance requests, business listings and events.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "Pending"
	StatusApproved ApprovalStatus = "Approved"
	StatusRejected ApprovalStatus = "Rejected"
)

// Proposal is a governance item members vote on.
type Proposal struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ProposedBy  string         `json:"proposedBy"`
	Status      ProposalStatus `json:"status"`
	Ballot
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *Proposal) BallotBox() *Ballot { return &p.Ballot }
func (p *Proposal) AcceptsVotes() bool { return ProposalWorkflow.IsOpen(p.Status) }
func (p *Proposal) Thread() *[]Comment { return &p.Comments }
func (p *Proposal) Ref() ItemRef       { return ItemRef{Kind: KindProposal, ID: p.ID} }

// TallyOutcome is the status the current tally points to: Passed on a strict majority for.
func (p *Proposal) TallyOutcome() ProposalStatus {
	if p.VotesFor > p.VotesAgainst {
		return ProposalPassed
	}
	return ProposalFailed
}

// AssistanceRequest is a member's request for a payout from the club pool, voted on by members.
type AssistanceRequest struct {
	ID          string          `json:"id"`
	RequesterID string          `json:"requesterId"`
	Amount      decimal.Decimal `json:"amount"`
	Purpose     string          `json:"purpose"`
	Status      ApprovalStatus  `json:"status"`
	Ballot
	RequestDate time.Time `json:"requestDate"`
	Comments    []Comment `json:"comments"`
}

func (r *AssistanceRequest) BallotBox() *Ballot { return &r.Ballot }
func (r *AssistanceRequest) AcceptsVotes() bool { return AssistanceWorkflow.IsOpen(r.Status) }
func (r *AssistanceRequest) Thread() *[]Comment { return &r.Comments }
func (r *AssistanceRequest) Ref() ItemRef       { return ItemRef{Kind: KindAssistanceRequest, ID: r.ID} }
