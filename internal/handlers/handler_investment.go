package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/gin-gonic/gin"
)

type investmentHandler struct {
	investmentService portssvc.InvestmentSvcFacade
}

func registerInvestmentRoutes(rg *gin.RouterGroup, investmentService portssvc.InvestmentSvcFacade) {
	h := &investmentHandler{investmentService: investmentService}

	investments := rg.Group("/investments")
	{
		investments.GET("", h.listInvestments)
		investments.POST("", h.addInvestment)
		investments.PUT("/:id", h.updateInvestment)
	}
}

// listInvestments godoc
// @Summary List portfolio holdings
// @Tags investments
// @Produce json
// @Success 200 {array} domain.Investment
// @Security BearerAuth
// @Router /investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	investments, err := h.investmentService.ListInvestments(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list investments")
		return
	}
	c.JSON(http.StatusOK, investments)
}

// addInvestment godoc
// @Summary Add a holding
// @Tags investments
// @Accept json
// @Produce json
// @Param investment body dto.CreateInvestmentRequest true "Holding"
// @Success 201 {object} domain.Investment
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments [post]
func (h *investmentHandler) addInvestment(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	inv, err := h.investmentService.AddInvestment(c.Request.Context(), memberID, req)
	if err != nil {
		respondError(c, err, "Failed to add investment")
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// updateInvestment godoc
// @Summary Update a holding
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Param investment body dto.UpdateInvestmentRequest true "Fields to change"
// @Success 200 {object} domain.Investment
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /investments/{id} [put]
func (h *investmentHandler) updateInvestment(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.UpdateInvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	inv, err := h.investmentService.UpdateInvestment(c.Request.Context(), memberID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update investment")
		return
	}
	c.JSON(http.StatusOK, inv)
}
