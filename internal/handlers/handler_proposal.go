package handlers

import (
	"net/http"

	"github.com/SscSPs/investment_club/internal/core/domain"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/gin-gonic/gin"
)

type proposalHandler struct {
	votingService portssvc.VotingSvcFacade
}

func registerProposalRoutes(rg *gin.RouterGroup, votingService portssvc.VotingSvcFacade) {
	h := &proposalHandler{votingService: votingService}

	proposals := rg.Group("/proposals")
	{
		proposals.GET("", h.listProposals)
		proposals.POST("", h.submitProposal)
		proposals.POST("/:id/votes", castVote(votingService, domain.KindProposal))
		proposals.PUT("/:id/status", h.overrideStatus)
		proposals.POST("/:id/resolve", h.resolveByTally)
	}
}

// listProposals godoc
// @Summary List proposals
// @Tags proposals
// @Produce json
// @Success 200 {array} domain.Proposal
// @Security BearerAuth
// @Router /proposals [get]
func (h *proposalHandler) listProposals(c *gin.Context) {
	proposals, err := h.votingService.ListProposals(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list proposals")
		return
	}
	c.JSON(http.StatusOK, proposals)
}

// submitProposal godoc
// @Summary Submit a proposal
// @Tags proposals
// @Accept json
// @Produce json
// @Param proposal body dto.CreateProposalRequest true "Proposal"
// @Success 201 {object} domain.Proposal
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /proposals [post]
func (h *proposalHandler) submitProposal(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := h.votingService.SubmitProposal(c.Request.Context(), memberID, req)
	if err != nil {
		respondError(c, err, "Failed to submit proposal")
		return
	}
	c.JSON(http.StatusCreated, p)
}

// castVote godoc
// @Summary Vote on a proposal or assistance request
// @Description Each member votes once per item, and only while the item is open.
// @Tags proposals,assistance
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param vote body dto.CastVoteRequest true "Vote"
// @Success 200 {object} domain.Ballot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already voted or item closed"
// @Security BearerAuth
// @Router /proposals/{id}/votes [post]
// @Router /assistance/{id}/votes [post]
func castVote(votingService portssvc.VotingSvcFacade, kind domain.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, ok := actorID(c)
		if !ok {
			return
		}
		var req dto.CastVoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		ref := domain.ItemRef{Kind: kind, ID: c.Param("id")}
		ballot, err := votingService.CastVote(c.Request.Context(), memberID, ref, domain.VoteChoice(req.Vote))
		if err != nil {
			respondError(c, err, "Failed to record vote")
			return
		}
		c.JSON(http.StatusOK, ballot)
	}
}

// overrideStatus godoc
// @Summary Set a proposal's outcome
// @Description Admin only. Closes an open proposal as Passed or Failed regardless of the tally.
// @Tags proposals
// @Accept json
// @Produce json
// @Param id path string true "Proposal ID"
// @Param status body dto.SetStatusRequest true "Passed or Failed"
// @Success 200 {object} domain.Proposal
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /proposals/{id}/status [put]
func (h *proposalHandler) overrideStatus(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := h.votingService.OverrideProposalStatus(c.Request.Context(), memberID, c.Param("id"), domain.ProposalStatus(req.Status))
	if err != nil {
		respondError(c, err, "Failed to update proposal")
		return
	}
	c.JSON(http.StatusOK, p)
}

// resolveByTally godoc
// @Summary Close a proposal by its tally
// @Description Admin only. Passed on a strict majority for, Failed otherwise.
// @Tags proposals
// @Produce json
// @Param id path string true "Proposal ID"
// @Success 200 {object} domain.Proposal
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /proposals/{id}/resolve [post]
func (h *proposalHandler) resolveByTally(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	p, err := h.votingService.ResolveProposalByTally(c.Request.Context(), memberID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to resolve proposal")
		return
	}
	c.JSON(http.StatusOK, p)
}
