package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/investment_club/internal/apperrors"
	"github.com/SscSPs/investment_club/internal/core/domain"
	portsrepo "github.com/SscSPs/investment_club/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/core/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/stretchr/testify/suite"
)

type ApprovalServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   portsrepo.ClubStore
	service portssvc.ApprovalSvcFacade
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = newFixtureStore(suite.T())
	suite.service = services.NewApprovalService(suite.store, fixedClock())
}

func (suite *ApprovalServiceTestSuite) TestListListings_ByStatus() {
	approved, err := suite.service.ListListings(suite.ctx, domain.StatusApproved)
	suite.Require().NoError(err)
	suite.Len(approved, 2)

	all, err := suite.service.ListListings(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func (suite *ApprovalServiceTestSuite) TestSubmitListing_StartsPending() {
	l, err := suite.service.SubmitListing(suite.ctx, charlieID, dto.CreateListingRequest{
		Name: "Charlie's Tax Prep", Description: "Seasonal tax help", Contact: "charlie@example.com",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, l.Status)
	suite.Equal(charlieID, l.OwnerID)
	suite.Equal(fixedNow, l.CreatedAt)

	_, err = suite.service.SubmitListing(suite.ctx, charlieID, dto.CreateListingRequest{Name: "x", Description: "", Contact: "c"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ApprovalServiceTestSuite) TestSetListingStatus() {
	_, err := suite.service.SetListingStatus(suite.ctx, bobID, "3", domain.StatusApproved)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	l, err := suite.service.SetListingStatus(suite.ctx, adminID, "3", domain.StatusApproved)
	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, l.Status)
	suite.Equal(adminID, l.LastUpdatedBy)

	_, err = suite.service.SetListingStatus(suite.ctx, adminID, "3", domain.StatusRejected)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
	_, err = suite.service.SetListingStatus(suite.ctx, adminID, "1", domain.StatusPending)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ApprovalServiceTestSuite) TestUpdateListing_KeepsStatus() {
	name := "Alice's Studio"
	l, err := suite.service.UpdateListing(suite.ctx, adminID, "1", dto.UpdateListingRequest{Name: &name})

	suite.Require().NoError(err)
	suite.Equal(name, l.Name)
	suite.Equal(domain.StatusApproved, l.Status)
	suite.Equal("alice@example.com", l.Contact)
}

func (suite *ApprovalServiceTestSuite) TestDeleteListing() {
	suite.ErrorIs(suite.service.DeleteListing(suite.ctx, bobID, "1"), apperrors.ErrForbidden)
	suite.Require().NoError(suite.service.DeleteListing(suite.ctx, adminID, "1"))
	suite.ErrorIs(suite.service.DeleteListing(suite.ctx, adminID, "1"), apperrors.ErrNotFound)
	suite.Len(readState(suite.T(), suite.store).BusinessListings, 2)
}

func (suite *ApprovalServiceTestSuite) TestSetEventStatus_ApprovalNotifies() {
	before := len(readState(suite.T(), suite.store).Notifications)

	e, err := suite.service.SetEventStatus(suite.ctx, adminID, "2", domain.StatusApproved)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, e.Status)
	st := readState(suite.T(), suite.store)
	suite.Len(st.Notifications, before+1)
	suite.Equal(`Alice Johnson just posted a new event: "End of Year Social". Check it out!`, st.Notifications[0].Message)
	suite.Equal(domain.NotificationEvent, st.Notifications[0].Type)
	suite.Equal(fixedNow, st.Notifications[0].Timestamp)
}

func (suite *ApprovalServiceTestSuite) TestSetEventStatus_RejectionIsSilent() {
	before := len(readState(suite.T(), suite.store).Notifications)

	_, err := suite.service.SetEventStatus(suite.ctx, adminID, "2", domain.StatusRejected)

	suite.Require().NoError(err)
	suite.Len(readState(suite.T(), suite.store).Notifications, before)
}

func (suite *ApprovalServiceTestSuite) TestSetEventStatus_UnknownSubmitter() {
	suite.Require().NoError(suite.store.Update(suite.ctx, func(st *domain.ClubState) error {
		e, err := st.FindEvent("2")
		if err != nil {
			return err
		}
		e.SubmittedBy = "gone"
		return nil
	}))

	_, err := suite.service.SetEventStatus(suite.ctx, adminID, "2", domain.StatusApproved)

	suite.Require().NoError(err)
	suite.Equal(`A member just posted a new event: "End of Year Social". Check it out!`,
		readState(suite.T(), suite.store).Notifications[0].Message)
}

func (suite *ApprovalServiceTestSuite) TestSubmitAndUpdateEvent() {
	e, err := suite.service.SubmitEvent(suite.ctx, bobID, dto.CreateEventRequest{
		Title: "Portfolio Workshop", Date: "2025-01-10", Time: "18:30",
		Location: "Library", Description: "Reading annual reports", Format: string(domain.EventInPerson),
	})
	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, e.Status)
	suite.Equal(bobID, e.SubmittedBy)

	online := string(domain.EventOnline)
	updated, err := suite.service.UpdateEvent(suite.ctx, adminID, e.ID, dto.UpdateEventRequest{Format: &online})
	suite.Require().NoError(err)
	suite.Equal(domain.EventOnline, updated.Format)
	suite.Equal(domain.StatusPending, updated.Status)

	bad := "Hybrid"
	_, err = suite.service.UpdateEvent(suite.ctx, adminID, e.ID, dto.UpdateEventRequest{Format: &bad})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.Require().NoError(suite.service.DeleteEvent(suite.ctx, adminID, e.ID))
	suite.ErrorIs(suite.service.DeleteEvent(suite.ctx, adminID, e.ID), apperrors.ErrNotFound)
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
