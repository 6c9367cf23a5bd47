package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/barisbulutdemir/raporermak/pkg/response"
)

// MustGetUserID extracts the authenticated user_id from the context.
// Writes a 401 and returns false when the auth middleware did not run.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "kimlik doğrulaması gerekli")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "kimlik doğrulaması gerekli")
		return "", false
	}
	return s, true
}

// MustGetRole extracts the caller's role from the context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "kimlik doğrulaması gerekli")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "kimlik doğrulaması gerekli")
		return "", false
	}
	return s, true
}
