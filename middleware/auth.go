package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// emailKey is the context key under which the authenticated identity is set.
const emailKey = "email"

// authenticate verifies the bearer token and returns the embedded email.
// On failure it writes the response and aborts: a missing credential is
// unauthorized, an invalid one forbidden, matching the original portal.
func authenticate(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	email, err := utils.ExtractEmailFromToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return "", false
	}

	c.Set(emailKey, email)
	return email, true
}

// AuthenticatedEmail returns the identity set by the policy middleware.
func AuthenticatedEmail(c *gin.Context) (string, bool) {
	email, ok := c.Get(emailKey)
	if !ok {
		return "", false
	}
	s, ok := email.(string)
	return s, ok
}
