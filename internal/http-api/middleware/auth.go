package middleware

import (
	"net/http"
	"strings"

	"watchhub/internal/http-api/policy"
	"watchhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

const (
	ctxClaimsKey = "claims"
	ctxActorKey  = "actor"
)

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Empty string when the header is missing or malformed.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// RequireAuth rejects any request without a valid bearer token and stores the
// decoded claims in the context for handlers to use.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		setActor(c, claims)
		c.Next()
	}
}

// OptionalAuth decodes credentials when present but lets anonymous requests
// through. Policy gates downstream decide whether an actor is needed.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString != "" {
			if claims, err := authService.ValidateToken(c.Request.Context(), tokenString); err == nil {
				setActor(c, claims)
			}
		}
		c.Next()
	}
}

// AdminOrReadOnly enforces the admin-or-read-only policy: safe methods pass,
// unsafe methods need an authenticated staff actor. Anonymous writers get 401,
// authenticated non-staff writers get 403.
func AdminOrReadOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		if policy.AdminOrReadOnly(c.Request.Method, actor) {
			c.Next()
			return
		}
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		} else {
			c.JSON(http.StatusForbidden, gin.H{"error": "staff permission required"})
		}
		c.Abort()
	}
}

func setActor(c *gin.Context, claims *service.Claims) {
	c.Set(ctxClaimsKey, claims)
	c.Set(ctxActorKey, &policy.Actor{UserID: claims.UserID, Role: claims.Role})
}

// ActorFromContext returns the authenticated actor, or nil for anonymous
// requests.
func ActorFromContext(c *gin.Context) *policy.Actor {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return nil
	}
	actor, ok := v.(*policy.Actor)
	if !ok {
		return nil
	}
	return actor
}

// ClaimsFromContext returns the full token claims, or nil for anonymous
// requests.
func ClaimsFromContext(c *gin.Context) *service.Claims {
	v, exists := c.Get(ctxClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}
