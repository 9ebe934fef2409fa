package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/gin-gonic/gin"
)

type insightHandler struct {
	insightService portssvc.InsightSvcFacade
}

func registerInsightRoutes(rg *gin.RouterGroup, insightService portssvc.InsightSvcFacade) {
	h := &insightHandler{insightService: insightService}
	rg.POST("/insights", h.ask)
}

// ask godoc
// @Summary Ask a question about the club's finances
// @Tags insights
// @Accept json
// @Produce json
// @Param query body dto.InsightRequest true "Question"
// @Success 200 {object} dto.InsightResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Text generator unavailable"
// @Security BearerAuth
// @Router /insights [post]
func (h *insightHandler) ask(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	answer, err := h.insightService.Ask(c.Request.Context(), memberID, req.Query)
	if err != nil {
		respondError(c, err, "Failed to generate insight")
		return
	}
	c.JSON(http.StatusOK, dto.InsightResponse{Answer: answer})
}
