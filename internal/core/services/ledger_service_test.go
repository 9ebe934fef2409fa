package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_club/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/core/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   portsrepo.ClubStore
	service portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = newFixtureStore(suite.T())
	suite.service = services.NewLedgerService(suite.store, 180*24*time.Hour, fixedClock())
}

func (suite *LedgerServiceTestSuite) TestGetSummary_Fixtures() {
	summary, err := suite.service.GetSummary(suite.ctx)

	suite.Require().NoError(err)
	suite.True(dec("1050").Equal(summary.TotalContributions), summary.TotalContributions.String())
	suite.True(dec("3000").Equal(summary.TotalInvested))
	suite.True(dec("3350").Equal(summary.TotalCurrentValue))
	suite.True(dec("350").Equal(summary.NetProfit))
	suite.True(dec("245").Equal(summary.TotalWithdrawn))
	suite.True(dec("250").Equal(summary.TotalAssistancePaid))
	suite.True(dec("-145").Equal(summary.DistributableProfit))
	suite.Equal(4, summary.MemberCount)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_PagesNewestFirst() {
	first, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Limit: 5})
	suite.Require().NoError(err)
	suite.Require().Len(first.Transactions, 5)
	suite.Require().NotNil(first.NextToken)
	suite.Equal("t7", first.Transactions[0].TransactionID)
	for i := 1; i < len(first.Transactions); i++ {
		suite.False(first.Transactions[i].Date.After(first.Transactions[i-1].Date))
	}

	second, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Limit: 5, NextToken: first.NextToken})
	suite.Require().NoError(err)
	suite.Len(second.Transactions, 5)
	suite.NotNil(second.NextToken)

	third, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Limit: 5, NextToken: second.NextToken})
	suite.Require().NoError(err)
	suite.Len(third.Transactions, 3)
	suite.Nil(third.NextToken)

	seen := map[string]bool{}
	for _, page := range [][]domain.Transaction{first.Transactions, second.Transactions, third.Transactions} {
		for _, txn := range page {
			suite.False(seen[txn.TransactionID], "duplicate %s", txn.TransactionID)
			seen[txn.TransactionID] = true
		}
	}
	suite.Len(seen, 13)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_Filters() {
	resp, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{MemberID: treasurerID})
	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 2)

	resp, err = suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Type: string(domain.TxnWithdrawal)})
	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 2)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_BadToken() {
	_, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{NextToken: strPtr("not-a-token")})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_EnforcesSignConvention() {
	_, err := suite.service.RecordTransaction(suite.ctx, adminID, dto.RecordTransactionRequest{
		Description: "Buy VOO",
		Type:        string(domain.TxnInvestment),
		Amount:      dec("1200"),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	txn, err := suite.service.RecordTransaction(suite.ctx, treasurerID, dto.RecordTransactionRequest{
		Description: "Buy VOO",
		Type:        string(domain.TxnInvestment),
		Amount:      dec("-1200"),
	})
	suite.Require().NoError(err)
	suite.Equal(domain.TxnCompleted, txn.Status)
	suite.True(txn.IsClubEntry())
	suite.Equal(fixedNow, txn.Date)
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_RoleAndMemberChecks() {
	req := dto.RecordTransactionRequest{Description: "Dues", Type: string(domain.TxnDeposit), Amount: dec("100")}

	_, err := suite.service.RecordTransaction(suite.ctx, bobID, req)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	req.MemberID = strPtr("99")
	_, err = suite.service.RecordTransaction(suite.ctx, adminID, req)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.Len(readState(suite.T(), suite.store).Transactions, 13)
}

func (suite *LedgerServiceTestSuite) TestRecordDeposit_MarksContributionPaid() {
	suite.Equal(domain.ContributionPending, member(suite.T(), suite.store, bobID).ContributionStatus)

	txn, err := suite.service.RecordDeposit(suite.ctx, bobID, dto.RecordDepositRequest{Amount: dec("100")})

	suite.Require().NoError(err)
	suite.Equal(domain.TxnDeposit, txn.Type)
	suite.True(txn.BelongsTo(bobID))
	suite.Equal("Monthly contribution", txn.Description)
	suite.Equal(domain.ContributionPaid, member(suite.T(), suite.store, bobID).ContributionStatus)
}

func (suite *LedgerServiceTestSuite) TestGetGoalProgress() {
	progress, err := suite.service.GetGoalProgress(suite.ctx, fixedNow)

	suite.Require().NoError(err)
	// t1 and t2 fall inside the 180 days before the deadline; t6 does not.
	suite.True(dec("350").Equal(progress.Collected), progress.Collected.String())
	suite.True(dec("4650").Equal(progress.Remaining))
	suite.True(dec("7").Equal(progress.Percent), progress.Percent.String())
	suite.Equal(47, progress.DaysLeft)

	after, err := suite.service.GetGoalProgress(suite.ctx, fixedNow.AddDate(1, 0, 0))
	suite.Require().NoError(err)
	suite.Equal(0, after.DaysLeft)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
