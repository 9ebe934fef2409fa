package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/investment_club/internal/core/domain"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, memberID string) (string, *domain.Member, time.Time, error) {
	args := m.Called(ctx, memberID)
	if args.Get(1) == nil {
		return "", nil, time.Time{}, args.Error(3)
	}
	return args.String(0), args.Get(1).(*domain.Member), args.Get(2).(time.Time), args.Error(3)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetSummary(ctx context.Context) (*domain.FinancialSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}
func (m *MockLedgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}
func (m *MockLedgerService) GetGoalProgress(ctx context.Context, now time.Time) (*domain.GoalProgress, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoalProgress), args.Error(1)
}
func (m *MockLedgerService) RecordTransaction(ctx context.Context, actorID string, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) RecordDeposit(ctx context.Context, actorID string, req dto.RecordDepositRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock VotingService ---
type MockVotingService struct {
	mock.Mock
}

func (m *MockVotingService) ListProposals(ctx context.Context) ([]domain.Proposal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposal), args.Error(1)
}
func (m *MockVotingService) SubmitProposal(ctx context.Context, actorID string, req dto.CreateProposalRequest) (*domain.Proposal, error) {
	args := m.Called(ctx, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockVotingService) CastVote(ctx context.Context, actorID string, ref domain.ItemRef, choice domain.VoteChoice) (*domain.Ballot, error) {
	args := m.Called(ctx, actorID, ref, choice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ballot), args.Error(1)
}
func (m *MockVotingService) OverrideProposalStatus(ctx context.Context, actorID, proposalID string, status domain.ProposalStatus) (*domain.Proposal, error) {
	args := m.Called(ctx, actorID, proposalID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockVotingService) ResolveProposalByTally(ctx context.Context, actorID, proposalID string) (*domain.Proposal, error) {
	args := m.Called(ctx, actorID, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

var _ portssvc.VotingSvcFacade = (*MockVotingService)(nil)

// --- Mock RequestService ---
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) ListWithdrawals(ctx context.Context, actorID string) ([]domain.WithdrawalRequest, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WithdrawalRequest), args.Error(1)
}
func (m *MockRequestService) SubmitWithdrawal(ctx context.Context, actorID string, req dto.CreateWithdrawalRequest) (*domain.WithdrawalRequest, error) {
	args := m.Called(ctx, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithdrawalRequest), args.Error(1)
}
func (m *MockRequestService) ResolveWithdrawal(ctx context.Context, actorID, requestID string, status domain.WithdrawalStatus) (*domain.WithdrawalRequest, error) {
	args := m.Called(ctx, actorID, requestID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithdrawalRequest), args.Error(1)
}
func (m *MockRequestService) ListAssistanceRequests(ctx context.Context) ([]domain.AssistanceRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssistanceRequest), args.Error(1)
}
func (m *MockRequestService) SubmitAssistanceRequest(ctx context.Context, actorID string, req dto.CreateAssistanceRequest) (*domain.AssistanceRequest, error) {
	args := m.Called(ctx, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssistanceRequest), args.Error(1)
}
func (m *MockRequestService) ResolveAssistance(ctx context.Context, actorID, requestID string, status domain.ApprovalStatus) (*domain.AssistanceRequest, error) {
	args := m.Called(ctx, actorID, requestID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssistanceRequest), args.Error(1)
}
func (m *MockRequestService) Reinvest(ctx context.Context, actorID string, req dto.ReinvestRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.RequestSvcFacade = (*MockRequestService)(nil)

// --- Mock DistributionService ---
type MockDistributionService struct {
	mock.Mock
}

func (m *MockDistributionService) PreviewDistribution(ctx context.Context, actorID string) (*domain.DistributionQuote, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DistributionQuote), args.Error(1)
}
func (m *MockDistributionService) Distribute(ctx context.Context, actorID, confirmationToken string) (*domain.DistributionRecord, error) {
	args := m.Called(ctx, actorID, confirmationToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DistributionRecord), args.Error(1)
}
func (m *MockDistributionService) ListDistributions(ctx context.Context) ([]domain.DistributionRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DistributionRecord), args.Error(1)
}

var _ portssvc.DistributionSvcFacade = (*MockDistributionService)(nil)

// --- Mock InsightService ---
type MockInsightService struct {
	mock.Mock
}

func (m *MockInsightService) BuildPrompt(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}
func (m *MockInsightService) Ask(ctx context.Context, actorID, query string) (string, error) {
	args := m.Called(ctx, actorID, query)
	return args.String(0), args.Error(1)
}

var _ portssvc.InsightSvcFacade = (*MockInsightService)(nil)
