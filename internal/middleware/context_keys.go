package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// memberIDKey and roleKey hold the authenticated member in the request context.
const (
	memberIDKey = contextKey("memberID")
	roleKey     = contextKey("role")
)

// WithMember returns a copy of ctx carrying the authenticated member.
func WithMember(ctx context.Context, memberID, role string) context.Context {
	ctx = context.WithValue(ctx, memberIDKey, memberID)
	return context.WithValue(ctx, roleKey, role)
}

// GetMemberIDFromContext retrieves the authenticated member ID.
// It returns the member ID and a boolean indicating if it was found.
func GetMemberIDFromContext(c *gin.Context) (string, bool) {
	memberID, ok := c.Request.Context().Value(memberIDKey).(string)
	if !ok || memberID == "" {
		return "", false
	}
	return memberID, true
}

// GetRoleFromContext returns the role claimed by the session token, if any.
func GetRoleFromContext(c *gin.Context) string {
	role, _ := c.Request.Context().Value(roleKey).(string)
	return role
}
