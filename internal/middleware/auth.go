package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/epeers/company-accounts/internal/models"
)

const (
	IdentityHeader     = "ERIC-Identity"
	IdentityTypeHeader = "ERIC-Identity-Type"

	IdentityKey = "identity"
)

// ValidateIdentity records the caller identity forwarded by the API gateway.
// Requests without one continue anonymously.
func ValidateIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := strings.TrimSpace(c.GetHeader(IdentityHeader))
		if identity == "" || strings.TrimSpace(c.GetHeader(IdentityTypeHeader)) == "" {
			c.Next()
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// GetIdentity retrieves the caller identity from the context
func GetIdentity(c *gin.Context) (string, bool) {
	identity, exists := c.Get(IdentityKey)
	if !exists {
		return "", false
	}
	return identity.(string), true
}

// RequireIdentity ensures the caller has been identified
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := GetIdentity(c); !exists {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "unauthorized",
				Message: "identity required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
