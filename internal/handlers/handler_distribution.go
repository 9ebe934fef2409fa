package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/SscSPs/investment_club/internal/middleware"
	"github.com/gin-gonic/gin"
)

type distributionHandler struct {
	distributionService portssvc.DistributionSvcFacade
}

func registerDistributionRoutes(rg *gin.RouterGroup, distributionService portssvc.DistributionSvcFacade) {
	h := &distributionHandler{distributionService: distributionService}

	distribution := rg.Group("/distribution")
	{
		distribution.GET("/preview", h.preview)
		distribution.POST("", h.distribute)
		distribution.GET("/history", h.history)
	}
}

// preview godoc
// @Summary Preview a profit distribution
// @Description Admin only. Returns each member's share and the confirmation token required by POST /distribution.
// @Tags distribution
// @Produce json
// @Success 200 {object} domain.DistributionQuote
// @Failure 400 {object} ErrorResponse "Nothing to distribute"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /distribution/preview [get]
func (h *distributionHandler) preview(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	quote, err := h.distributionService.PreviewDistribution(c.Request.Context(), memberID)
	if err != nil {
		respondError(c, err, "Failed to preview distribution")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// distribute godoc
// @Summary Distribute profit to members
// @Description Admin only. Fails with 409 if the club state changed since the preview.
// @Tags distribution
// @Accept json
// @Produce json
// @Param confirmation body dto.DistributeRequest true "Token from the preview"
// @Success 201 {object} domain.DistributionRecord
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Stale confirmation token"
// @Security BearerAuth
// @Router /distribution [post]
func (h *distributionHandler) distribute(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.DistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	record, err := h.distributionService.Distribute(c.Request.Context(), memberID, req.ConfirmationToken)
	if err != nil {
		respondError(c, err, "Failed to distribute profit")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Profit distributed",
		slog.String("record_id", record.ID), slog.String("total", record.Total.String()))
	c.JSON(http.StatusCreated, record)
}

// history godoc
// @Summary List past distributions
// @Tags distribution
// @Produce json
// @Success 200 {array} domain.DistributionRecord
// @Security BearerAuth
// @Router /distribution/history [get]
func (h *distributionHandler) history(c *gin.Context) {
	records, err := h.distributionService.ListDistributions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list distributions")
		return
	}
	c.JSON(http.StatusOK, records)
}
