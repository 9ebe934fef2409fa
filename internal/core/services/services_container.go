package services

import (
	portsrepo "github.com/SscSPs/investment_club/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/platform/config"
	"github.com/SscSPs/investment_club/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// generator may be nil, in which case insight requests report the service as unavailable.
func NewServiceContainer(cfg *config.Config, store portsrepo.ClubStore, generator portssvc.TextGenerator, m *metrics.ClubMetrics) *portssvc.ServiceContainer {
	opts := []Option{WithMetrics(m)}

	container := &portssvc.ServiceContainer{}
	container.Auth = NewAuthService(store, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer, opts...)
	container.Member = NewMemberService(store, opts...)
	container.Ledger = NewLedgerService(store, cfg.ContributionWindow, opts...)
	container.Investment = NewInvestmentService(store, opts...)
	container.Voting = NewVotingService(store, opts...)
	container.Approval = NewApprovalService(store, opts...)
	container.Request = NewRequestService(store, opts...)
	container.Distribution = NewDistributionService(store, cfg.DistributionPolicy, opts...)
	container.Comment = NewCommentService(store, opts...)
	container.Notification = NewNotificationService(store, opts...)
	container.Reporting = NewReportingService(store, opts...)
	container.Insight = NewInsightService(store, generator, opts...)

	return container
}
