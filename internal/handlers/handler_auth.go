package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/investment_club/internal/core/ports/services"
	"github.com/SscSPs/investment_club/internal/dto"
	"github.com/SscSPs/investment_club/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler serves the simulated login.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade, loginLimit gin.HandlerFunc) {
	h := &authHandler{authService: authService}

	auth := r.Group("/auth")
	{
		auth.POST("/login", loginLimit, h.login)
	}
}

// login godoc
// @Summary Sign in as a club member
// @Description Issues a session token for the chosen member. Without a memberId the first member is used.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest false "Member to sign in as"
// @Success 200 {object} dto.LoginResponse
// @Failure 404 {object} ErrorResponse "Unknown member"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	token, member, expiresAt, err := h.authService.Login(c.Request.Context(), req.MemberID)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}

	logger.Info("Login successful", slog.String("member_id", member.ID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		MemberID:  member.ID,
		Role:      string(member.Role),
	})
}
