package domain

import (
	"fmt"
	"slices"

	"github.com/SscSPs/investment_club/internal/apperrors"
)

// VoteChoice is a member's position on a voteable item.
type VoteChoice string

const (
	VoteFor     VoteChoice = "for"
	VoteAgainst VoteChoice = "against"
)

// IsValid reports whether c is a known choice.
func (c VoteChoice) IsValid() bool {
	return c == VoteFor || c == VoteAgainst
}

// Ballot holds the tally of a voteable item. VotedIDs guarantees each member votes at most once.
type Ballot struct {
	VotesFor     int      `json:"votesFor"`
	VotesAgainst int      `json:"votesAgainst"`
	VotedIDs     []string `json:"votedIds"`
}

// HasVoted reports whether voterID already has a vote on the ballot.
func (b Ballot) HasVoted(voterID string) bool {
	return slices.Contains(b.VotedIDs, voterID)
}

// Cast records one vote. A repeat voter or an unknown choice leaves the ballot untouched.
func (b *Ballot) Cast(voterID string, choice VoteChoice) error {
	if !choice.IsValid() {
		return fmt.Errorf("%w: vote must be %q or %q", apperrors.ErrValidation, VoteFor, VoteAgainst)
	}
	if b.HasVoted(voterID) {
		return fmt.Errorf("%w: member %s has already voted", apperrors.ErrDuplicate, voterID)
	}
	if choice == VoteFor {
		b.VotesFor++
	} else {
		b.VotesAgainst++
	}
	b.VotedIDs = append(b.VotedIDs, voterID)
	return nil
}

// Consistent reports whether the tallies match the voter list.
func (b Ballot) Consistent() bool {
	return b.VotesFor >= 0 && b.VotesAgainst >= 0 && b.VotesFor+b.VotesAgainst == len(b.VotedIDs)
}

// Voteable is implemented by items that carry a ballot and accept votes only while open.
type Voteable interface {
	BallotBox() *Ballot
	AcceptsVotes() bool
}
