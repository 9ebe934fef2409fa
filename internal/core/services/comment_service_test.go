package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/SscSPs/investment_club/internal/core/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_AllKinds(t *testing.T) {
	ctx := context.Background()
	store := newFixtureStore(t)
	svc := services.NewCommentService(store, fixedClock())

	refs := []domain.ItemRef{
		{Kind: domain.KindProposal, ID: "1"}, // closed items still take comments
		{Kind: domain.KindAssistanceRequest, ID: "1"},
		{Kind: domain.KindBusinessListing, ID: "2"},
		{Kind: domain.KindEvent, ID: "1"},
	}
	for _, ref := range refs {
		t.Run(string(ref.Kind), func(t *testing.T) {
			c, err := svc.AddComment(ctx, bobID, ref, dto.CreateCommentRequest{Content: "  Looks good  "})
			require.NoError(t, err)
			assert.Equal(t, "Looks good", c.Content)
			assert.Equal(t, bobID, c.AuthorID)
			assert.Equal(t, fixedNow, c.Timestamp)

			item, err := readState(t, store).Commentable(ref)
			require.NoError(t, err)
			thread := *item.Thread()
			require.NotEmpty(t, thread)
			assert.Equal(t, c.ID, thread[len(thread)-1].ID)
		})
	}
}

func TestCommentService_Rejections(t *testing.T) {
	ctx := context.Background()
	store := newFixtureStore(t)
	svc := services.NewCommentService(store)
	ref := domain.ItemRef{Kind: domain.KindProposal, ID: "2"}

	_, err := svc.AddComment(ctx, bobID, ref, dto.CreateCommentRequest{Content: " "})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.AddComment(ctx, bobID, domain.ItemRef{Kind: "poll", ID: "2"}, dto.CreateCommentRequest{Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.AddComment(ctx, bobID, domain.ItemRef{Kind: domain.KindEvent, ID: "404"}, dto.CreateCommentRequest{Content: "hi"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCommentService_DeleteIsAdminOnly(t *testing.T) {
	ctx := context.Background()
	store := newFixtureStore(t)
	svc := services.NewCommentService(store)
	ref := domain.ItemRef{Kind: domain.KindEvent, ID: "2"}

	c, err := svc.AddComment(ctx, bobID, ref, dto.CreateCommentRequest{Content: "Count me in"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteComment(ctx, bobID, ref, c.ID), apperrors.ErrForbidden)
	require.NoError(t, svc.DeleteComment(ctx, adminID, ref, c.ID))
	assert.ErrorIs(t, svc.DeleteComment(ctx, adminID, ref, c.ID), apperrors.ErrNotFound)

	e, err := readState(t, store).FindEvent("2")
	require.NoError(t, err)
	assert.Empty(t, e.Comments)
}

func TestNotificationService(t *testing.T) {
	ctx := context.Background()
	store := newFixtureStore(t)
	svc := services.NewNotificationService(store)

	list, err := svc.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.False(t, list[0].Viewed)

	require.NoError(t, svc.MarkAllViewed(ctx))
	list, err = svc.ListNotifications(ctx)
	require.NoError(t, err)
	for _, n := range list {
		assert.True(t, n.Viewed)
	}

	n, err := svc.SetRead(ctx, "2", false)
	require.NoError(t, err)
	assert.False(t, n.Read)

	_, err = svc.SetRead(ctx, "404", true)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReportingService_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	store := newFixtureStore(t)
	svc := services.NewReportingService(store, fixedClock())

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, snap.TakenAt)
	assert.Len(t, snap.Members, 4)
	assert.Len(t, snap.Transactions, 13)
	assert.Len(t, snap.Investments, 3)

	snap.Members[0].Name = "changed"
	assert.Equal(t, "Admin User", member(t, store, adminID).Name)
}
