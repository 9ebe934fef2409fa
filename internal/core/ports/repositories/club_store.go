package repositories

import (
	"context"

	"github.com/SscSPs/investment_club/internal/core/domain"
)

// ClubReader gives read access to the club state.
// fn must not retain the state or any pointer into it after returning.
type ClubReader interface {
	Read(ctx context.Context, fn func(s *domain.ClubState) error) error
}

// ClubWriter applies mutations atomically. fn runs on a private copy of the
// state; the copy replaces the current state, with Version bumped, only when
// fn returns nil. Any error leaves the stored state untouched.
type ClubWriter interface {
	Update(ctx context.Context, fn func(s *domain.ClubState) error) error
}

// ClubStore is the single owner of the club state.
type ClubStore interface {
	ClubReader
	ClubWriter
	// Version is bumped by every committed Update.
	Version(ctx context.Context) uint64
}
