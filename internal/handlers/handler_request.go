package handlers

import (
	"net/http"

	"github.com/SscSPs/investment_club/internal/core/domain"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/gin-gonic/gin"
)

type requestHandler struct {
	requestService portssvc.RequestSvcFacade
}

func registerRequestRoutes(rg *gin.RouterGroup, requestService portssvc.RequestSvcFacade, votingService portssvc.VotingSvcFacade) {
	h := &requestHandler{requestService: requestService}

	assistance := rg.Group("/assistance")
	{
		assistance.GET("", h.listAssistance)
		assistance.POST("", h.submitAssistance)
		assistance.POST("/:id/votes", castVote(votingService, domain.KindAssistanceRequest))
		assistance.PUT("/:id/status", h.resolveAssistance)
	}

	withdrawals := rg.Group("/withdrawals")
	{
		withdrawals.GET("", h.listWithdrawals)
		withdrawals.POST("", h.submitWithdrawal)
		withdrawals.PUT("/:id/status", h.resolveWithdrawal)
	}

	rg.POST("/reinvestments", h.reinvest)
}

// listAssistance godoc
// @Summary List assistance requests
// @Tags assistance
// @Produce json
// @Success 200 {array} domain.AssistanceRequest
// @Security BearerAuth
// @Router /assistance [get]
func (h *requestHandler) listAssistance(c *gin.Context) {
	requests, err := h.requestService.ListAssistanceRequests(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list assistance requests")
		return
	}
	c.JSON(http.StatusOK, requests)
}

// submitAssistance godoc
// @Summary Request financial assistance
// @Tags assistance
// @Accept json
// @Produce json
// @Param request body dto.CreateAssistanceRequest true "Request"
// @Success 201 {object} domain.AssistanceRequest
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /assistance [post]
func (h *requestHandler) submitAssistance(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateAssistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	r, err := h.requestService.SubmitAssistanceRequest(c.Request.Context(), memberID, req)
	if err != nil {
		respondError(c, err, "Failed to submit assistance request")
		return
	}
	c.JSON(http.StatusCreated, r)
}

// resolveAssistance godoc
// @Summary Approve or reject an assistance request
// @Description Admin only. Approval pays the amount out of the club pool.
// @Tags assistance
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param status body dto.SetStatusRequest true "Approved or Rejected"
// @Success 200 {object} domain.AssistanceRequest
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /assistance/{id}/status [put]
func (h *requestHandler) resolveAssistance(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	r, err := h.requestService.ResolveAssistance(c.Request.Context(), memberID, c.Param("id"), domain.ApprovalStatus(req.Status))
	if err != nil {
		respondError(c, err, "Failed to resolve assistance request")
		return
	}
	c.JSON(http.StatusOK, r)
}

// listWithdrawals godoc
// @Summary List withdrawal requests
// @Description Admins see every request, members only their own.
// @Tags withdrawals
// @Produce json
// @Success 200 {array} domain.WithdrawalRequest
// @Security BearerAuth
// @Router /withdrawals [get]
func (h *requestHandler) listWithdrawals(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	requests, err := h.requestService.ListWithdrawals(c.Request.Context(), memberID)
	if err != nil {
		respondError(c, err, "Failed to list withdrawals")
		return
	}
	c.JSON(http.StatusOK, requests)
}

// submitWithdrawal godoc
// @Summary Request a withdrawal of available profit
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body dto.CreateWithdrawalRequest true "Withdrawal"
// @Success 201 {object} domain.WithdrawalRequest
// @Failure 400 {object} ErrorResponse "Invalid input or amount above available profit"
// @Security BearerAuth
// @Router /withdrawals [post]
func (h *requestHandler) submitWithdrawal(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	r, err := h.requestService.SubmitWithdrawal(c.Request.Context(), memberID, req)
	if err != nil {
		respondError(c, err, "Failed to submit withdrawal")
		return
	}
	c.JSON(http.StatusCreated, r)
}

// resolveWithdrawal godoc
// @Summary Complete or reject a withdrawal
// @Description Admin only. Completion re-checks the member's balance and records the payout.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param status body dto.SetStatusRequest true "Completed or Rejected"
// @Success 200 {object} domain.WithdrawalRequest
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /withdrawals/{id}/status [put]
func (h *requestHandler) resolveWithdrawal(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	r, err := h.requestService.ResolveWithdrawal(c.Request.Context(), memberID, c.Param("id"), domain.WithdrawalStatus(req.Status))
	if err != nil {
		respondError(c, err, "Failed to resolve withdrawal")
		return
	}
	c.JSON(http.StatusOK, r)
}

// reinvest godoc
// @Summary Reinvest available profit
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param request body dto.ReinvestRequest true "Amount"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reinvestments [post]
func (h *requestHandler) reinvest(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.ReinvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	txn, err := h.requestService.Reinvest(c.Request.Context(), memberID, req)
	if err != nil {
		respondError(c, err, "Failed to reinvest")
		return
	}
	c.JSON(http.StatusCreated, txn)
}
