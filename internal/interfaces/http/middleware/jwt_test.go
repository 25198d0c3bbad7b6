package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/crm/backend/internal/infrastructure/auth"
)

type stubValidator struct {
	claims *auth.Claims
	err    error
}

func (s *stubValidator) Validate(string) (*auth.Claims, error) {
	return s.claims, s.err
}

type stubBlacklist struct {
	revoked bool
	err     error
}

func (s *stubBlacklist) IsRevoked(context.Context, string) (bool, error) {
	return s.revoked, s.err
}

func validClaims() *auth.Claims {
	return &auth.Claims{
		UserID: uuid.New().String(),
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ID: "token-1",
		},
	}
}

func newJWTRouter(cfg JWTConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(JWT(cfg))
	engine.GET("/protected", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func doProtected(t *testing.T, engine *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestJWTMiddleware(t *testing.T) {
	t.Run("valid token passes", func(t *testing.T) {
		engine := newJWTRouter(JWTConfig{
			Validator: &stubValidator{claims: validClaims()},
		})

		w := doProtected(t, engine)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		engine := newJWTRouter(JWTConfig{
			Validator: &stubValidator{claims: validClaims()},
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		engine := newJWTRouter(JWTConfig{
			Validator: &stubValidator{err: errors.New("bad signature")},
		})

		w := doProtected(t, engine)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		engine := newJWTRouter(JWTConfig{
			Validator: &stubValidator{claims: validClaims()},
			Blacklist: &stubBlacklist{revoked: true},
		})

		w := doProtected(t, engine)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("blacklist outage fails open and is logged", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		engine := newJWTRouter(JWTConfig{
			Validator: &stubValidator{claims: validClaims()},
			Blacklist: &stubBlacklist{err: errors.New("connection refused")},
			Logger:    zap.New(core),
		})

		w := doProtected(t, engine)
		assert.Equal(t, http.StatusOK, w.Code)

		entries := logs.FilterMessage("token revocation check failed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zap.WarnLevel, entries[0].Level)
	})

	t.Run("skip paths pass through unauthenticated", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		engine := gin.New()
		engine.Use(JWT(JWTConfig{
			Validator: &stubValidator{err: errors.New("unused")},
			SkipPaths: []string{"/open"},
		}))
		engine.GET("/open", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
