package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}
	rg.GET("/reports/snapshot", h.snapshot)
}

// snapshot godoc
// @Summary Export snapshot of members, transactions and investments
// @Tags reports
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Security BearerAuth
// @Router /reports/snapshot [get]
func (h *reportingHandler) snapshot(c *gin.Context) {
	snap, err := h.reportingService.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build snapshot")
		return
	}
	c.JSON(http.StatusOK, snap)
}
