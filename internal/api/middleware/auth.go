package middleware

import (
	"net/http"
	"strings"

	"ctchen222/Tic-Tac-Toe-Solo/internal/api/response"

	"github.com/gin-gonic/gin"
)

const profileIDKey = "profile_id"

// TokenParser resolves a bearer token to a profile id.
type TokenParser interface {
	ParseToken(tokenString string) (string, error)
}

// RequireProfile rejects requests without a valid token and stores the
// profile id on the context. Browsers cannot set headers on websocket
// upgrades, so a "token" query parameter is accepted as well.
func RequireProfile(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			token = c.Query("token")
		}
		if token == "" {
			response.AbortWithError(c, http.StatusUnauthorized, "missing token")
			return
		}

		profileID, err := tokens.ParseToken(token)
		if err != nil {
			response.AbortWithError(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(profileIDKey, profileID)
		c.Next()
	}
}

// ProfileID returns the id stored by RequireProfile.
func ProfileID(c *gin.Context) string {
	return c.GetString(profileIDKey)
}
