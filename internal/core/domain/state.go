package domain

import (
	"fmt"
	"slices"

	"github.com/SscSPs/investment_club/internal/apperrors"
)

// ClubState owns every collection of the club. It is held by a single store
// and only mutated through that store's Update.
type ClubState struct {
	Members            []Member             `json:"members"`
	Transactions       []Transaction        `json:"transactions"`
	Investments        []Investment         `json:"investments"`
	Proposals          []Proposal           `json:"proposals"`
	AssistanceRequests []AssistanceRequest  `json:"assistanceRequests"`
	BusinessListings   []BusinessListing    `json:"businessListings"`
	Events             []Event              `json:"events"`
	WithdrawalRequests []WithdrawalRequest  `json:"withdrawalRequests"`
	Notifications      []Notification       `json:"notifications"` // newest first
	Distributions      []DistributionRecord `json:"distributions"`
	Goal               ContributionGoal     `json:"goal"`
	Version            uint64               `json:"version"`
}

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, id)
}

// FindMember returns a pointer into the member collection.
func (s *ClubState) FindMember(id string) (*Member, error) {
	for i := range s.Members {
		if s.Members[i].ID == id {
			return &s.Members[i], nil
		}
	}
	return nil, notFound("member", id)
}

// MemberName returns the member's display name, or fallback when the member is unknown.
func (s *ClubState) MemberName(id, fallback string) string {
	if m, err := s.FindMember(id); err == nil && m.Name != "" {
		return m.Name
	}
	return fallback
}

func (s *ClubState) FindInvestment(id string) (*Investment, error) {
	for i := range s.Investments {
		if s.Investments[i].ID == id {
			return &s.Investments[i], nil
		}
	}
	return nil, notFound("investment", id)
}

func (s *ClubState) FindProposal(id string) (*Proposal, error) {
	for i := range s.Proposals {
		if s.Proposals[i].ID == id {
			return &s.Proposals[i], nil
		}
	}
	return nil, notFound("proposal", id)
}

func (s *ClubState) FindAssistanceRequest(id string) (*AssistanceRequest, error) {
	for i := range s.AssistanceRequests {
		if s.AssistanceRequests[i].ID == id {
			return &s.AssistanceRequests[i], nil
		}
	}
	return nil, notFound("assistance request", id)
}

func (s *ClubState) FindListing(id string) (*BusinessListing, error) {
	for i := range s.BusinessListings {
		if s.BusinessListings[i].ID == id {
			return &s.BusinessListings[i], nil
		}
	}
	return nil, notFound("business listing", id)
}

func (s *ClubState) FindEvent(id string) (*Event, error) {
	for i := range s.Events {
		if s.Events[i].ID == id {
			return &s.Events[i], nil
		}
	}
	return nil, notFound("event", id)
}

func (s *ClubState) FindWithdrawal(id string) (*WithdrawalRequest, error) {
	for i := range s.WithdrawalRequests {
		if s.WithdrawalRequests[i].ID == id {
			return &s.WithdrawalRequests[i], nil
		}
	}
	return nil, notFound("withdrawal request", id)
}

func (s *ClubState) FindNotification(id string) (*Notification, error) {
	for i := range s.Notifications {
		if s.Notifications[i].ID == id {
			return &s.Notifications[i], nil
		}
	}
	return nil, notFound("notification", id)
}

// Commentable resolves a tagged reference to the item it names.
func (s *ClubState) Commentable(ref ItemRef) (Commentable, error) {
	switch ref.Kind {
	case KindProposal:
		return s.FindProposal(ref.ID)
	case KindAssistanceRequest:
		return s.FindAssistanceRequest(ref.ID)
	case KindBusinessListing:
		return s.FindListing(ref.ID)
	case KindEvent:
		return s.FindEvent(ref.ID)
	}
	return nil, fmt.Errorf("%w: unknown item kind %q", apperrors.ErrValidation, ref.Kind)
}

// Voteable resolves a reference to an item carrying a ballot.
func (s *ClubState) Voteable(ref ItemRef) (Voteable, error) {
	switch ref.Kind {
	case KindProposal:
		return s.FindProposal(ref.ID)
	case KindAssistanceRequest:
		return s.FindAssistanceRequest(ref.ID)
	}
	return nil, fmt.Errorf("%w: %q items cannot be voted on", apperrors.ErrValidation, ref.Kind)
}

// RemoveListing deletes a listing. It reports whether one was removed.
func (s *ClubState) RemoveListing(id string) bool {
	n := len(s.BusinessListings)
	s.BusinessListings = slices.DeleteFunc(s.BusinessListings, func(l BusinessListing) bool { return l.ID == id })
	return len(s.BusinessListings) != n
}

// RemoveEvent deletes an event. It reports whether one was removed.
func (s *ClubState) RemoveEvent(id string) bool {
	n := len(s.Events)
	s.Events = slices.DeleteFunc(s.Events, func(e Event) bool { return e.ID == id })
	return len(s.Events) != n
}

// Notify prepends a notification so the list stays newest first.
func (s *ClubState) Notify(n Notification) {
	s.Notifications = slices.Insert(s.Notifications, 0, n)
}

// Clone returns a deep copy. Mutating the copy never affects s.
func (s *ClubState) Clone() *ClubState {
	c := *s
	c.Members = slices.Clone(s.Members)
	c.Transactions = make([]Transaction, len(s.Transactions))
	for i, t := range s.Transactions {
		if t.MemberID != nil {
			id := *t.MemberID
			t.MemberID = &id
		}
		c.Transactions[i] = t
	}
	c.Investments = slices.Clone(s.Investments)

	c.Proposals = make([]Proposal, len(s.Proposals))
	for i, p := range s.Proposals {
		p.VotedIDs = slices.Clone(p.VotedIDs)
		p.Comments = slices.Clone(p.Comments)
		c.Proposals[i] = p
	}
	c.AssistanceRequests = make([]AssistanceRequest, len(s.AssistanceRequests))
	for i, r := range s.AssistanceRequests {
		r.VotedIDs = slices.Clone(r.VotedIDs)
		r.Comments = slices.Clone(r.Comments)
		c.AssistanceRequests[i] = r
	}
	c.BusinessListings = make([]BusinessListing, len(s.BusinessListings))
	for i, l := range s.BusinessListings {
		l.Comments = slices.Clone(l.Comments)
		c.BusinessListings[i] = l
	}
	c.Events = make([]Event, len(s.Events))
	for i, e := range s.Events {
		e.Comments = slices.Clone(e.Comments)
		c.Events[i] = e
	}
	c.WithdrawalRequests = make([]WithdrawalRequest, len(s.WithdrawalRequests))
	for i, w := range s.WithdrawalRequests {
		if w.ResolvedAt != nil {
			at := *w.ResolvedAt
			w.ResolvedAt = &at
		}
		c.WithdrawalRequests[i] = w
	}
	c.Notifications = slices.Clone(s.Notifications)
	c.Distributions = make([]DistributionRecord, len(s.Distributions))
	for i, d := range s.Distributions {
		d.Shares = slices.Clone(d.Shares)
		c.Distributions[i] = d
	}
	return &c
}
