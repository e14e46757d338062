package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/airport-service/internal/access"
	"github.com/farellandr/airport-service/internal/auth"
	"github.com/farellandr/airport-service/internal/helpers"
)

const principalKey = "principal"

type TokenParser interface {
	Parse(tokenString, tokenType string) (*auth.Claims, error)
}

// Authenticate resolves an optional Bearer access token into a principal. Requests
// without a token continue anonymously; a bad token is rejected.
func Authenticate(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Authorization header must be in format: Bearer <token>.")
			return
		}

		claims, err := parser.Parse(strings.TrimSpace(token), auth.TokenTypeAccess)
		if err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Given token not valid for any token type.")
			return
		}

		c.Set(principalKey, claims.Principal())
		c.Next()
	}
}

// GetPrincipal returns nil for anonymous requests.
func GetPrincipal(c *gin.Context) *access.Principal {
	principal, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	return principal.(*access.Principal)
}

// Require checks the access table for kind, deriving the verb from the HTTP method.
func Require(kind access.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := access.Check(GetPrincipal(c), kind, access.VerbFor(c.Request.Method)); err != nil {
			helpers.RespondWithAppError(c, err)
			return
		}
		c.Next()
	}
}
