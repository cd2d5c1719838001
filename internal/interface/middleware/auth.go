package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hirestack/jobboard-api/pkg/helpers"
	"github.com/hirestack/jobboard-api/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
	CtxUserRoleKey  = "userRole"
)

// Auth extracts a bearer token from the Authorization header, verifies it and
// injects the caller's identity into the Gin context.
// A missing or malformed header is 401; a bad signature or expired token is 403.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token")
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusForbidden, "invalid or expired token")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Set(CtxUserRoleKey, claims.Role)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
