package services

import (
	"context"
	"log/slog"
	"slices"

	"github.com/SscSPs/investment_club/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_club/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
)

// notificationService only flips the view-layer flags. Notifications are
// created by the services whose operations emit them.
type notificationService struct {
	BaseService
	store portsrepo.ClubStore
}

func NewNotificationService(store portsrepo.ClubStore, opts ...Option) portssvc.NotificationSvcFacade {
	return &notificationService{BaseService: newBaseService(opts), store: store}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		notifications = slices.Clone(st.Notifications)
		return nil
	})
	return notifications, err
}

func (s *notificationService) MarkAllViewed(ctx context.Context) error {
	return s.store.Update(ctx, func(st *domain.ClubState) error {
		for i := range st.Notifications {
			st.Notifications[i].Viewed = true
		}
		return nil
	})
}

func (s *notificationService) SetRead(ctx context.Context, notificationID string, read bool) (*domain.Notification, error) {
	var updated domain.Notification
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		n, err := st.FindNotification(notificationID)
		if err != nil {
			return err
		}
		n.Read = read
		updated = *n
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "set_notification_read", err, slog.String("notification_id", notificationID))
	}
	return &updated, nil
}
