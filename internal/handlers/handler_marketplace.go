package handlers

import (
	"net/http"

	"github.com/SscSPs/investment_club/internal/core/domain"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/gin-gonic/gin"
)

// marketplaceHandler serves the approval-gated business directory and event calendar.
type marketplaceHandler struct {
	approvalService portssvc.ApprovalSvcFacade
}

func registerMarketplaceRoutes(rg *gin.RouterGroup, approvalService portssvc.ApprovalSvcFacade) {
	h := &marketplaceHandler{approvalService: approvalService}

	listings := rg.Group("/listings")
	{
		listings.GET("", h.listListings)
		listings.POST("", h.submitListing)
		listings.PUT("/:id", h.updateListing)
		listings.PUT("/:id/status", h.setListingStatus)
		listings.DELETE("/:id", h.deleteListing)
	}

	events := rg.Group("/events")
	{
		events.GET("", h.listEvents)
		events.POST("", h.submitEvent)
		events.PUT("/:id", h.updateEvent)
		events.PUT("/:id/status", h.setEventStatus)
		events.DELETE("/:id", h.deleteEvent)
	}
}

// listListings godoc
// @Summary List business listings
// @Tags marketplace
// @Produce json
// @Param status query string false "Pending, Approved or Rejected"
// @Success 200 {array} domain.BusinessListing
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings [get]
func (h *marketplaceHandler) listListings(c *gin.Context) {
	var params dto.ListItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	listings, err := h.approvalService.ListListings(c.Request.Context(), domain.ApprovalStatus(params.Status))
	if err != nil {
		respondError(c, err, "Failed to list business listings")
		return
	}
	c.JSON(http.StatusOK, listings)
}

// submitListing godoc
// @Summary Submit a business listing for approval
// @Tags marketplace
// @Accept json
// @Produce json
// @Param listing body dto.CreateListingRequest true "Listing"
// @Success 201 {object} domain.BusinessListing
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings [post]
func (h *marketplaceHandler) submitListing(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	listing, err := h.approvalService.SubmitListing(c.Request.Context(), memberID, req)
	if err != nil {
		respondError(c, err, "Failed to submit business listing")
		return
	}
	c.JSON(http.StatusCreated, listing)
}

// updateListing godoc
// @Summary Edit a business listing
// @Tags marketplace
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param listing body dto.UpdateListingRequest true "Fields to change"
// @Success 200 {object} domain.BusinessListing
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings/{id} [put]
func (h *marketplaceHandler) updateListing(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	listing, err := h.approvalService.UpdateListing(c.Request.Context(), memberID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update business listing")
		return
	}
	c.JSON(http.StatusOK, listing)
}

// setListingStatus godoc
// @Summary Approve or reject a business listing
// @Tags marketplace
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param status body dto.SetStatusRequest true "Approved or Rejected"
// @Success 200 {object} domain.BusinessListing
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings/{id}/status [put]
func (h *marketplaceHandler) setListingStatus(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	listing, err := h.approvalService.SetListingStatus(c.Request.Context(), memberID, c.Param("id"), domain.ApprovalStatus(req.Status))
	if err != nil {
		respondError(c, err, "Failed to update business listing status")
		return
	}
	c.JSON(http.StatusOK, listing)
}

// deleteListing godoc
// @Summary Delete a business listing
// @Tags marketplace
// @Param id path string true "Listing ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /listings/{id} [delete]
func (h *marketplaceHandler) deleteListing(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.approvalService.DeleteListing(c.Request.Context(), memberID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete business listing")
		return
	}
	c.Status(http.StatusNoContent)
}

// listEvents godoc
// @Summary List club events
// @Tags marketplace
// @Produce json
// @Param status query string false "Pending, Approved or Rejected"
// @Success 200 {array} domain.Event
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [get]
func (h *marketplaceHandler) listEvents(c *gin.Context) {
	var params dto.ListItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	events, err := h.approvalService.ListEvents(c.Request.Context(), domain.ApprovalStatus(params.Status))
	if err != nil {
		respondError(c, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// submitEvent godoc
// @Summary Submit an event for approval
// @Tags marketplace
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event"
// @Success 201 {object} domain.Event
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (h *marketplaceHandler) submitEvent(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	event, err := h.approvalService.SubmitEvent(c.Request.Context(), memberID, req)
	if err != nil {
		respondError(c, err, "Failed to submit event")
		return
	}
	c.JSON(http.StatusCreated, event)
}

// updateEvent godoc
// @Summary Edit an event
// @Tags marketplace
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body dto.UpdateEventRequest true "Fields to change"
// @Success 200 {object} domain.Event
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *marketplaceHandler) updateEvent(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	event, err := h.approvalService.UpdateEvent(c.Request.Context(), memberID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// setEventStatus godoc
// @Summary Approve or reject an event
// @Description Approving an event notifies all members.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param status body dto.SetStatusRequest true "Approved or Rejected"
// @Success 200 {object} domain.Event
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id}/status [put]
func (h *marketplaceHandler) setEventStatus(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	event, err := h.approvalService.SetEventStatus(c.Request.Context(), memberID, c.Param("id"), domain.ApprovalStatus(req.Status))
	if err != nil {
		respondError(c, err, "Failed to update event status")
		return
	}
	c.JSON(http.StatusOK, event)
}

// deleteEvent godoc
// @Summary Delete an event
// @Tags marketplace
// @Param id path string true "Event ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *marketplaceHandler) deleteEvent(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.approvalService.DeleteEvent(c.Request.Context(), memberID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}
