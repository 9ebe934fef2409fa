package services

import (
	"context"
	"slices"

	"github.com/SscSPs/investment_club/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_club/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	store portsrepo.ClubReader
}

// NewReportingService creates the service feeding export collaborators.
func NewReportingService(store portsrepo.ClubReader, opts ...Option) portssvc.ReportingSvcFacade {
	return &reportingService{BaseService: newBaseService(opts), store: store}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Snapshot copies the exportable collections. Formatting is left to the caller.
func (s *reportingService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{TakenAt: s.now()}
	err := s.store.Read(ctx, func(st *domain.ClubState) error {
		snap.Members = slices.Clone(st.Members)
		snap.Transactions = slices.Clone(st.Transactions)
		snap.Investments = slices.Clone(st.Investments)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}
