package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_club/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/SscSPs/investment_club/internal/utils"
)

type memberService struct {
	BaseService
	store portsrepo.ClubStore
}

// NewMemberService creates a new MemberService.
func NewMemberService(store portsrepo.ClubStore, opts ...Option) portssvc.MemberSvcFacade {
	return &memberService{BaseService: newBaseService(opts), store: store}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	var members []domain.Member
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		members = slices.Clone(st.Members)
		return nil
	})
	return members, err
}

func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	var member domain.Member
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		m, err := st.FindMember(memberID)
		if err != nil {
			return err
		}
		member = *m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateProfile implements portssvc.MemberWriterSvc
func (s *memberService) UpdateProfile(ctx context.Context, actorID string, req dto.UpdateProfileRequest) (*domain.Member, error) {
	var updated domain.Member
	err := s.store.Update(ctx, func(st *domain.ClubState) error {
		m, err := actingMember(st, actorID)
		if err != nil {
			return err
		}
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return fmt.Errorf("%w: name must not be blank", apperrors.ErrValidation)
			}
			m.Name = name
		}
		if req.Email != nil {
			m.Email = strings.TrimSpace(*req.Email)
		}
		if req.Phone != nil {
			m.Phone = strings.TrimSpace(*req.Phone)
		}
		if req.Bio != nil {
			m.Bio = *req.Bio
		}
		if req.AvatarURL != nil {
			m.AvatarURL = *req.AvatarURL
		}
		updated = *m
		return nil
	})
	if err != nil {
		return nil, s.Reject(ctx, "update_profile", err)
	}
	s.LogInfo(ctx, "Profile updated", slog.String("member_id", actorID))
	return &updated, nil
}

type authService struct {
	BaseService
	store  portsrepo.ClubReader
	secret string
	expiry time.Duration
	issuer string
}

// NewAuthService creates the simulated-login service.
func NewAuthService(store portsrepo.ClubReader, jwtSecret string, expiry time.Duration, issuer string, opts ...Option) portssvc.AuthSvcFacade {
	return &authService{BaseService: newBaseService(opts), store: store, secret: jwtSecret, expiry: expiry, issuer: issuer}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login signs in as memberID, or as the first member on the roster when memberID is empty.
func (s *authService) Login(ctx context.Context, memberID string) (string, *domain.Member, time.Time, error) {
	var member domain.Member
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		if memberID == "" {
			if len(st.Members) == 0 {
				return fmt.Errorf("%w: the club has no members", apperrors.ErrNotFound)
			}
			member = st.Members[0]
			return nil
		}
		m, err := st.FindMember(memberID)
		if err != nil {
			return err
		}
		member = *m
		return nil
	})
	if err != nil {
		return "", nil, time.Time{}, s.Reject(ctx, "login", err, slog.String("member_id", memberID))
	}

	expiresAt := s.now().Add(s.expiry)
	token, err := utils.GenerateJWT(member.ID, string(member.Role), s.secret, s.expiry, s.issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token", slog.String("member_id", member.ID))
		return "", nil, time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	s.LogInfo(ctx, "Member signed in", slog.String("member_id", member.ID))
	return token, &member, expiresAt, nil
}
