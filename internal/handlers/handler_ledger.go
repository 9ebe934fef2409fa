package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: ledgerService}

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/summary", h.getSummary)
		ledger.GET("/goal", h.getGoalProgress)
		ledger.GET("/transactions", h.listTransactions)
		ledger.POST("/transactions", h.recordTransaction)
		ledger.POST("/deposits", h.recordDeposit)
	}
}

// getSummary godoc
// @Summary Club financial summary
// @Description Contributions, portfolio value, withdrawals, assistance paid and distributable profit.
// @Tags ledger
// @Produce json
// @Success 200 {object} domain.FinancialSummary
// @Security BearerAuth
// @Router /ledger/summary [get]
func (h *ledgerHandler) getSummary(c *gin.Context) {
	summary, err := h.ledgerService.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getGoalProgress godoc
// @Summary Contribution goal progress
// @Tags ledger
// @Produce json
// @Success 200 {object} domain.GoalProgress
// @Security BearerAuth
// @Router /ledger/goal [get]
func (h *ledgerHandler) getGoalProgress(c *gin.Context) {
	progress, err := h.ledgerService.GetGoalProgress(c.Request.Context(), timeNow())
	if err != nil {
		respondError(c, err, "Failed to compute goal progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}

// listTransactions godoc
// @Summary List transactions
// @Description Newest first. Pass nextToken from the previous page to continue.
// @Tags ledger
// @Produce json
// @Param memberId query string false "Only entries attributed to this member"
// @Param type query string false "Transaction type"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// recordTransaction godoc
// @Summary Record a ledger entry
// @Description Admin or treasurer only. The amount sign must match the type.
// @Tags ledger
// @Accept json
// @Produce json
// @Param transaction body dto.RecordTransactionRequest true "Entry"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/transactions [post]
func (h *ledgerHandler) recordTransaction(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	txn, err := h.ledgerService.RecordTransaction(c.Request.Context(), memberID, req)
	if err != nil {
		respondError(c, err, "Failed to record transaction")
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// recordDeposit godoc
// @Summary Log my contribution
// @Tags ledger
// @Accept json
// @Produce json
// @Param deposit body dto.RecordDepositRequest true "Deposit"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/deposits [post]
func (h *ledgerHandler) recordDeposit(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.RecordDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	txn, err := h.ledgerService.RecordDeposit(c.Request.Context(), memberID, req)
	if err != nil {
		respondError(c, err, "Failed to record deposit")
		return
	}
	c.JSON(http.StatusCreated, txn)
}
