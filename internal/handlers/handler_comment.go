package handlers

import (
	"net/http"

	"github.com/SscSPs/investment_club/internal/core/domain"
	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/gin-gonic/gin"
)

type commentHandler struct {
	commentService portssvc.CommentSvcFacade
}

func registerCommentRoutes(rg *gin.RouterGroup, commentService portssvc.CommentSvcFacade) {
	h := &commentHandler{commentService: commentService}

	comments := rg.Group("/comments/:kind/:id")
	{
		comments.POST("", h.addComment)
		comments.DELETE("/:commentID", h.deleteComment)
	}
}

func itemRef(c *gin.Context) domain.ItemRef {
	return domain.ItemRef{Kind: domain.ItemKind(c.Param("kind")), ID: c.Param("id")}
}

// addComment godoc
// @Summary Comment on an item
// @Tags comments
// @Accept json
// @Produce json
// @Param kind path string true "proposal, business_listing, event or assistance_request"
// @Param id path string true "Item ID"
// @Param comment body dto.CreateCommentRequest true "Comment"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments/{kind}/{id} [post]
func (h *commentHandler) addComment(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	comment, err := h.commentService.AddComment(c.Request.Context(), memberID, itemRef(c), req)
	if err != nil {
		respondError(c, err, "Failed to add comment")
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// deleteComment godoc
// @Summary Delete a comment
// @Description Admin only.
// @Tags comments
// @Param kind path string true "proposal, business_listing, event or assistance_request"
// @Param id path string true "Item ID"
// @Param commentID path string true "Comment ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments/{kind}/{id}/{commentID} [delete]
func (h *commentHandler) deleteComment(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.commentService.DeleteComment(c.Request.Context(), memberID, itemRef(c), c.Param("commentID")); err != nil {
		respondError(c, err, "Failed to delete comment")
		return
	}
	c.Status(http.StatusNoContent)
}
