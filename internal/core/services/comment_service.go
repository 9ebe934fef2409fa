package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_club/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/google/uuid"
)

type commentService struct {
	BaseService
	store portsrepo.ClubStore
}

// NewCommentService creates a new CommentService.
func NewCommentService(store portsrepo.ClubStore, opts ...Option) portssvc.CommentSvcFacade {
	return &commentService{BaseService: newBaseService(opts), store: store}
}

var _ portssvc.CommentSvcFacade = (*commentService)(nil)

// AddComment appends to the item's thread. Closed items still accept comments.
func (s *commentService) AddComment(ctx context.Context, actorID string, ref domain.ItemRef, req dto.CreateCommentRequest) (*domain.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, s.Reject(ctx, "add_comment", fmt.Errorf("%w: comment must not be empty", apperrors.ErrValidation))
	}

	var comment domain.Comment
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		m, err := actingMember(st, actorID)
		if err != nil {
			return err
		}
		item, err := st.Commentable(ref)
		if err != nil {
			return err
		}
		comment = domain.Comment{
			ID:        uuid.NewString(),
			AuthorID:  m.ID,
			Content:   content,
			Timestamp: s.now(),
		}
		thread := item.Thread()
		*thread = append(*thread, comment)
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "add_comment", err, slog.String("kind", string(ref.Kind)), slog.String("item_id", ref.ID))
	}
	s.LogInfo(ctx, "Comment added", slog.String("kind", string(ref.Kind)), slog.String("item_id", ref.ID))
	return &comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, actorID string, ref domain.ItemRef, commentID string) error {
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireAdmin(st, actorID); err != nil {
			return err
		}
		item, err := st.Commentable(ref)
		if err != nil {
			return err
		}
		if !domain.RemoveComment(item, commentID) {
			return fmt.Errorf("%w: comment %s on %s %s", apperrors.ErrNotFound, commentID, ref.Kind, ref.ID)
		}
		return nil
	})
	if err != nil {
		return s.Reject(ctx, "delete_comment", err, slog.String("comment_id", commentID))
	}
	s.LogInfo(ctx, "Comment deleted", slog.String("comment_id", commentID))
	return nil
}
