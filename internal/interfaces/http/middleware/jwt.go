// Package middleware contains gin middleware for authentication and
// cross-cutting request handling.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/infrastructure/auth"
	"github.com/crm/backend/internal/interfaces/http/dto"
)

const (
	claimsContextKey = "jwt_claims"
	actorContextKey  = "actor"
)

// TokenValidator validates an access token and returns its claims.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// RevocationChecker reports whether a token ID has been revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// JWTConfig configures the auth middleware.
type JWTConfig struct {
	Validator TokenValidator
	Blacklist RevocationChecker
	Logger    *zap.Logger
	SkipPaths []string
}

// JWT authenticates requests with a bearer token. Paths in SkipPaths
// pass through unauthenticated.
func JWT(cfg JWTConfig) gin.HandlerFunc {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		token := extractBearerToken(c)
		if token == "" {
			abortUnauthorized(c, "authentication required")
			return
		}

		claims, err := cfg.Validator.Validate(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		if cfg.Blacklist != nil {
			revoked, err := cfg.Blacklist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				// Fail open: a blacklist outage must not lock everyone
				// out, but it has to leave a trace.
				cfg.Logger.Warn("token revocation check failed",
					zap.String("jti", claims.ID),
					zap.Error(err),
				)
			} else if revoked {
				abortUnauthorized(c, "token has been revoked")
				return
			}
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			abortUnauthorized(c, "invalid token claims")
			return
		}
		role := identity.Role(claims.Role)
		if !role.Valid() {
			abortUnauthorized(c, "invalid token claims")
			return
		}

		c.Set(claimsContextKey, claims)
		c.Set(actorContextKey, identity.Actor{ID: userID, Role: role})
		c.Next()
	}
}

// GetJWTClaims returns the claims set by the JWT middleware, or nil.
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if value, exists := c.Get(claimsContextKey); exists {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetActor returns the authenticated actor set by the JWT middleware.
func GetActor(c *gin.Context) (identity.Actor, bool) {
	if value, exists := c.Get(actorContextKey); exists {
		if actor, ok := value.(identity.Actor); ok {
			return actor, true
		}
	}
	return identity.Actor{}, false
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", message))
}
