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

type approvalService struct {
	BaseService
	store portsrepo.ClubStore
}

// NewApprovalService creates the service gating listings and events behind admin approval.
func NewApprovalService(store portsrepo.ClubStore, opts ...Option) portssvc.ApprovalSvcFacade {
	return &approvalService{BaseService: newBaseService(opts), store: store}
}

var _ portssvc.ApprovalSvcFacade = (*approvalService)(nil)

// ListListings returns listings with the given status, or all of them when status is empty.
func (s *approvalService) ListListings(ctx context.Context, status domain.ApprovalStatus) ([]domain.BusinessListing, error) {
	listings := []domain.BusinessListing{}
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		for _, l := range st.BusinessListings {
			if status == "" || l.Status == status {
				listings = append(listings, l)
			}
		}
		return nil
	})
	return listings, err
}

func (s *approvalService) SubmitListing(ctx context.Context, actorID string, req dto.CreateListingRequest) (*domain.BusinessListing, error) {
	listing := domain.BusinessListing{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Website:     strings.TrimSpace(req.Website),
		Contact:     strings.TrimSpace(req.Contact),
		Status:      domain.StatusPending,
		Comments:    []domain.Comment{},
	}
	if listing.Name == "" || listing.Description == "" || listing.Contact == "" {
		return nil, s.Reject(ctx, "submit_listing", fmt.Errorf("%w: name, description and contact are required", apperrors.ErrValidation))
	}

	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		m, err := actingMember(st, actorID)
		if err != nil {
			return err
		}
		listing.OwnerID = m.ID
		listing.AuditFields = domain.NewAuditFields(m.ID, s.now())
		st.BusinessListings = append(st.BusinessListings, listing)
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "submit_listing", err)
	}
	s.LogInfo(ctx, "Listing submitted for approval", slog.String("listing_id", listing.ID))
	return &listing, nil
}

func (s *approvalService) UpdateListing(ctx context.Context, actorID, listingID string, req dto.UpdateListingRequest) (*domain.BusinessListing, error) {
	var updated domain.BusinessListing
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireAdmin(st, actorID); err != nil {
			return err
		}
		l, err := st.FindListing(listingID)
		if err != nil {
			return err
		}
		applyString(&l.Name, req.Name)
		applyString(&l.Description, req.Description)
		applyString(&l.Website, req.Website)
		applyString(&l.Contact, req.Contact)
		if l.Name == "" || l.Description == "" || l.Contact == "" {
			return fmt.Errorf("%w: name, description and contact are required", apperrors.ErrValidation)
		}
		l.Touch(actorID, s.now())
		updated = *l
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "update_listing", err, slog.String("listing_id", listingID))
	}
	s.LogInfo(ctx, "Listing updated", slog.String("listing_id", listingID))
	return &updated, nil
}

// SetListingStatus approves or rejects a pending listing. It has no side effects beyond the status.
func (s *approvalService) SetListingStatus(ctx context.Context, actorID, listingID string, status domain.ApprovalStatus) (*domain.BusinessListing, error) {
	var updated domain.BusinessListing
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireAdmin(st, actorID); err != nil {
			return err
		}
		l, err := st.FindListing(listingID)
		if err != nil {
			return err
		}
		if err := domain.ListingWorkflow.Transition(l.Status, status); err != nil {
			return err
		}
		l.Status = status
		l.Touch(actorID, s.now())
		updated = *l
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "set_listing_status", err, slog.String("listing_id", listingID))
	}
	s.Metrics.IncResolution(string(domain.KindBusinessListing), string(status))
	s.LogInfo(ctx, "Listing resolved", slog.String("listing_id", listingID), slog.String("status", string(status)))
	return &updated, nil
}

func (s *approvalService) DeleteListing(ctx context.Context, actorID, listingID string) error {
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireAdmin(st, actorID); err != nil {
			return err
		}
		if !st.RemoveListing(listingID) {
			return fmt.Errorf("%w: business listing %s", apperrors.ErrNotFound, listingID)
		}
		return nil
	})
	if err != nil {
		return s.Reject(ctx, "delete_listing", err, slog.String("listing_id", listingID))
	}
	s.LogInfo(ctx, "Listing deleted", slog.String("listing_id", listingID))
	return nil
}

// ListEvents returns events with the given status, or all of them when status is empty.
func (s *approvalService) ListEvents(ctx context.Context, status domain.ApprovalStatus) ([]domain.Event, error) {
	events := []domain.Event{}
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		for _, e := range st.Events {
			if status == "" || e.Status == status {
				events = append(events, e)
			}
		}
		return nil
	})
	return events, err
}

func (s *approvalService) SubmitEvent(ctx context.Context, actorID string, req dto.CreateEventRequest) (*domain.Event, error) {
	event := domain.Event{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Date:        strings.TrimSpace(req.Date),
		Time:        strings.TrimSpace(req.Time),
		Location:    strings.TrimSpace(req.Location),
		Description: strings.TrimSpace(req.Description),
		Format:      domain.EventFormat(req.Format),
		Status:      domain.StatusPending,
		Comments:    []domain.Comment{},
	}
	if err := validateEvent(event); err != nil {
		return nil, s.Reject(ctx, "submit_event", err)
	}

	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		m, err := actingMember(st, actorID)
		if err != nil {
			return err
		}
		event.SubmittedBy = m.ID
		event.AuditFields = domain.NewAuditFields(m.ID, s.now())
		st.Events = append(st.Events, event)
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "submit_event", err)
	}
	s.LogInfo(ctx, "Event submitted for approval", slog.String("event_id", event.ID))
	return &event, nil
}

func (s *approvalService) UpdateEvent(ctx context.Context, actorID, eventID string, req dto.UpdateEventRequest) (*domain.Event, error) {
	var updated domain.Event
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireAdmin(st, actorID); err != nil {
			return err
		}
		e, err := st.FindEvent(eventID)
		if err != nil {
			return err
		}
		applyString(&e.Title, req.Title)
		applyString(&e.Date, req.Date)
		applyString(&e.Time, req.Time)
		applyString(&e.Location, req.Location)
		applyString(&e.Description, req.Description)
		if req.Format != nil {
			e.Format = domain.EventFormat(*req.Format)
		}
		if err := validateEvent(*e); err != nil {
			return err
		}
		e.Touch(actorID, s.now())
		updated = *e
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "update_event", err, slog.String("event_id", eventID))
	}
	s.LogInfo(ctx, "Event updated", slog.String("event_id", eventID))
	return &updated, nil
}

// SetEventStatus implements portssvc.ApprovalSvcFacade
func (s *approvalService) SetEventStatus(ctx context.Context, actorID, eventID string, status domain.ApprovalStatus) (*domain.Event, error) {
	var updated domain.Event
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireAdmin(st, actorID); err != nil {
			return err
		}
		e, err := st.FindEvent(eventID)
		if err != nil {
			return err
		}
		if err := domain.EventWorkflow.Transition(e.Status, status); err != nil {
			return err
		}
		now := s.now()
		e.Status = status
		e.Touch(actorID, now)
		updated = *e

		if status == domain.StatusApproved {
			st.Notify(domain.Notification{
				ID: uuid.NewString(),
				Message: fmt.Sprintf("%s just posted a new event: %q. Check it out!",
					st.MemberName(e.SubmittedBy, "A member"), e.Title),
				Timestamp: now,
				Type:      domain.NotificationEvent,
			})
		}
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "set_event_status", err, slog.String("event_id", eventID))
	}
	s.Metrics.IncResolution(string(domain.KindEvent), string(status))
	s.LogInfo(ctx, "Event resolved", slog.String("event_id", eventID), slog.String("status", string(status)))
	return &updated, nil
}

func (s *approvalService) DeleteEvent(ctx context.Context, actorID, eventID string) error {
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		if _, err := requireAdmin(st, actorID); err != nil {
			return err
		}
		if !st.RemoveEvent(eventID) {
			return fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
		}
		return nil
	})
	if err != nil {
		return s.Reject(ctx, "delete_event", err, slog.String("event_id", eventID))
	}
	s.LogInfo(ctx, "Event deleted", slog.String("event_id", eventID))
	return nil
}

func validateEvent(e domain.Event) error {
	if e.Title == "" || e.Date == "" || e.Time == "" || e.Location == "" || e.Description == "" {
		return fmt.Errorf("%w: title, date, time, location and description are required", apperrors.ErrValidation)
	}
	if !e.Format.IsValid() {
		return fmt.Errorf("%w: unknown event type %q", apperrors.ErrValidation, e.Format)
	}
	return nil
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
