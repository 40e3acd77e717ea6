package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/streamhive/backend/internal/application"
	"github.com/streamhive/backend/pkg/helpers"
	"github.com/streamhive/backend/pkg/response"
)

// Auth validates the access token from the Authorization header or the
// accessToken cookie and confirms the user still exists. It sets userID,
// userName, and userEmail in the Gin context on success.
func Auth(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token, _ = c.Cookie(helpers.AccessTokenCookie)
		}
		if token == "" {
			resp := response.Error(c, http.StatusUnauthorized, "missing access token", nil)
			c.AbortWithStatusJSON(resp.StatusCode, resp)
			return
		}

		u, err := auth.VerifyAccess(c.Request.Context(), token)
		if err != nil {
			resp := response.Error(c, http.StatusUnauthorized, "invalid access token", nil)
			c.AbortWithStatusJSON(resp.StatusCode, resp)
			return
		}

		c.Set("userID", u.ID)
		c.Set("userName", u.Username)
		c.Set("userEmail", u.Email)
		c.Next()
	}
}

// OptionalAuth resolves the viewer when a valid token is present but never
// rejects the request. Anonymous requests proceed with an empty userID.
func OptionalAuth(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token, _ = c.Cookie(helpers.AccessTokenCookie)
		}
		if token != "" {
			if u, err := auth.VerifyAccess(c.Request.Context(), token); err == nil {
				c.Set("userID", u.ID)
				c.Set("userName", u.Username)
				c.Set("userEmail", u.Email)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
