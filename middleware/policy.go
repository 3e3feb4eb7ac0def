package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Capability is the access requirement a route declares. Authentication and
// authorization compose in that order; handler logic never runs on failure.
type Capability int

const (
	// Public routes skip all checks.
	Public Capability = iota
	// SelfScoped routes require the token email to equal the requested
	// ?email= parameter, independent of role.
	SelfScoped
	// AdminOnly routes require the authenticated account to hold the admin role.
	AdminOnly
)

// AdminChecker resolves whether an email's account holds the admin role.
type AdminChecker interface {
	IsAdmin(email string) (bool, error)
}

// Require returns the policy middleware for a declared capability.
func Require(capability Capability, admins AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if capability == Public {
			c.Next()
			return
		}

		email, ok := authenticate(c)
		if !ok {
			return
		}

		switch capability {
		case SelfScoped:
			if c.Query("email") != email {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
				return
			}
		case AdminOnly:
			isAdmin, err := admins.IsAdmin(email)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify role"})
				return
			}
			if !isAdmin {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
				return
			}
		}

		c.Next()
	}
}
