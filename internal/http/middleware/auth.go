package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dashboard-service/internal/auth"
	"dashboard-service/internal/model"
)

const (
	claimsKey    = "tokenClaims"
	principalKey = "principal"
	authHeader   = "Authorization"
	bearerPrefix = "Bearer"
)

var (
	errMissingHeader = errors.New("authorization header missing")
	errMalformed     = errors.New("invalid authorization header")
)

// Auth validates the bearer token and stores the caller's principal. The raw token
// is kept so upstream calls are made on the caller's behalf.
func Auth(parser *auth.Parser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader(authHeader))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims, err := parser.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Set(principalKey, model.Principal{
			UserID: claims.UserID,
			OrgID:  claims.OrgID,
			Role:   strings.ToLower(claims.Role),
			Token:  token,
		})
		c.Next()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingHeader
	}
	scheme, token, found := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, bearerPrefix) || token == "" {
		return "", errMalformed
	}
	return token, nil
}

func MustPrincipal(c *gin.Context) (model.Principal, bool) {
	principal, ok := c.Value(principalKey).(model.Principal)
	return principal, ok
}
