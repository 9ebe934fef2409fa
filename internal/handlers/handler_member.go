package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/gin-gonic/gin"
)

type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := &memberHandler{memberService: memberService}

	members := rg.Group("/members")
	{
		members.GET("", h.listMembers)
		members.PUT("/me", h.updateMe)
		members.GET("/:id", h.getMember)
	}
}

// listMembers godoc
// @Summary List members
// @Tags members
// @Produce json
// @Success 200 {array} domain.Member
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	members, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, members)
}

// getMember godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} domain.Member
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	member, err := h.memberService.GetMemberByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve member")
		return
	}
	c.JSON(http.StatusOK, member)
}

// updateMe godoc
// @Summary Update own profile
// @Description Balances and role cannot be changed here.
// @Tags members
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} domain.Member
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/me [put]
func (h *memberHandler) updateMe(c *gin.Context) {
	memberID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	member, err := h.memberService.UpdateProfile(c.Request.Context(), memberID, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, member)
}
