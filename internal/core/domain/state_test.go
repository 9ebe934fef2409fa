package domain_test

import (
	"testing"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() *domain.ClubState {
	return &domain.ClubState{
		Members: []domain.Member{{ID: "1", Name: "Admin User", Role: domain.RoleAdmin, AvailableProfit: decimal.NewFromInt(10)}},
		Proposals: []domain.Proposal{{
			ID: "p1", Status: domain.ProposalOpen,
			Ballot:   domain.Ballot{VotesFor: 1, VotedIDs: []string{"1"}},
			Comments: []domain.Comment{{ID: "c1", AuthorID: "1", Content: "hi"}},
		}},
		Events: []domain.Event{{ID: "e1", Status: domain.StatusPending}},
	}
}

func TestClubState_CloneIsDeep(t *testing.T) {
	s := sampleState()
	c := s.Clone()

	c.Members[0].Credit(decimal.NewFromInt(5))
	require.NoError(t, c.Proposals[0].Cast("2", domain.VoteAgainst))
	c.Proposals[0].Comments[0].Content = "edited"
	c.Notify(domain.Notification{ID: "n1"})

	assert.True(t, s.Members[0].AvailableProfit.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, []string{"1"}, s.Proposals[0].VotedIDs)
	assert.Equal(t, "hi", s.Proposals[0].Comments[0].Content)
	assert.Empty(t, s.Notifications)
}

func TestClubState_Commentable(t *testing.T) {
	s := sampleState()

	item, err := s.Commentable(domain.ItemRef{Kind: domain.KindProposal, ID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, domain.ItemRef{Kind: domain.KindProposal, ID: "p1"}, item.Ref())

	_, err = s.Commentable(domain.ItemRef{Kind: domain.KindEvent, ID: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = s.Commentable(domain.ItemRef{Kind: "poll", ID: "p1"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.True(t, domain.RemoveComment(item, "c1"))
	assert.Empty(t, s.Proposals[0].Comments)
	assert.False(t, domain.RemoveComment(item, "c1"))
}

func TestClubState_Voteable(t *testing.T) {
	s := sampleState()
	_, err := s.Voteable(domain.ItemRef{Kind: domain.KindEvent, ID: "e1"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	v, err := s.Voteable(domain.ItemRef{Kind: domain.KindProposal, ID: "p1"})
	require.NoError(t, err)
	assert.True(t, v.AcceptsVotes())
}

func TestClubState_NotifyNewestFirst(t *testing.T) {
	s := sampleState()
	s.Notify(domain.Notification{ID: "old"})
	s.Notify(domain.Notification{ID: "new"})
	assert.Equal(t, "new", s.Notifications[0].ID)
	assert.Equal(t, "old", s.Notifications[1].ID)
}

func TestClubState_MemberName(t *testing.T) {
	s := sampleState()
	assert.Equal(t, "Admin User", s.MemberName("1", "A member"))
	assert.Equal(t, "A member", s.MemberName("99", "A member"))
}

func TestClubState_RemoveEvent(t *testing.T) {
	s := sampleState()
	assert.True(t, s.RemoveEvent("e1"))
	assert.False(t, s.RemoveEvent("e1"))
}
