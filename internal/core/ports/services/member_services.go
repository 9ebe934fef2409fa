package services

import (
	"context"
	"time"

	"github.com/SscSPs/investment_club/internal/core/domain"
	"github.com/SscSPs/investment_club/internal/dto"
)

// MemberReaderSvc defines read operations for member data
type MemberReaderSvc interface {
	// ListMembers returns every member in roster order.
	ListMembers(ctx context.Context) ([]domain.Member, error)

	// GetMemberByID retrieves a member by id.
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
}

// MemberWriterSvc defines write operations for member data
type MemberWriterSvc interface {
	// UpdateProfile edits the acting member's own profile. Balances and role are not editable.
	UpdateProfile(ctx context.Context, actorID string, req dto.UpdateProfileRequest) (*domain.Member, error)
}

// MemberSvcFacade combines all member-related service interfaces
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}

// AuthSvcFacade issues session tokens for the simulated login.
type AuthSvcFacade interface {
	// Login signs in as memberID, or as the first member when memberID is empty.
	Login(ctx context.Context, memberID string) (token string, member *domain.Member, expiresAt time.Time, err error)
}
