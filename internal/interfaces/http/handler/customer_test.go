package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appcrm "github.com/crm/backend/internal/application/crm"
	"github.com/crm/backend/internal/domain/crm"
	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/interfaces/http/dto"
)

type stubCustomerRepo struct {
	findByID func(ctx context.Context, id uuid.UUID) (*crm.Customer, error)
	save     func(ctx context.Context, customer *crm.Customer) error
}

func (s *stubCustomerRepo) Save(ctx context.Context, customer *crm.Customer) error {
	if s.save != nil {
		return s.save(ctx, customer)
	}
	return nil
}

func (s *stubCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*crm.Customer, error) {
	return s.findByID(ctx, id)
}

func (s *stubCustomerRepo) FindAll(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*crm.Customer], error) {
	return shared.NewPaginated([]*crm.Customer{}, 0, filter.Page, filter.PageSize), nil
}

func (s *stubCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type stubLeadRepo struct{}

func (s *stubLeadRepo) Save(context.Context, *crm.Lead) error { return nil }
func (s *stubLeadRepo) FindByID(context.Context, uuid.UUID) (*crm.Lead, error) {
	return nil, shared.ErrNotFound
}
func (s *stubLeadRepo) FindByCustomer(context.Context, uuid.UUID, crm.LeadStatus) ([]*crm.Lead, error) {
	return []*crm.Lead{}, nil
}
func (s *stubLeadRepo) DeleteByCustomer(context.Context, uuid.UUID) (int64, error) { return 0, nil }
func (s *stubLeadRepo) Delete(context.Context, uuid.UUID) error                    { return nil }

type stubTxManager struct{}

func (s *stubTxManager) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func setupCustomerRouter(t *testing.T, actor identity.Actor, customers *stubCustomerRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := appcrm.NewCustomerService(customers, &stubLeadRepo{}, &stubTxManager{}, zap.NewNop())
	h := NewCustomerHandler(service)

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set("actor", actor)
		c.Next()
	})
	engine.POST("/api/customers", h.Create)
	engine.GET("/api/customers/:id", h.Get)
	engine.DELETE("/api/customers/:id", h.Delete)
	return engine
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCustomerHandlerGet(t *testing.T) {
	ownerID := uuid.New()
	owner := identity.Actor{ID: ownerID, Role: identity.RoleUser}
	stranger := identity.Actor{ID: uuid.New(), Role: identity.RoleUser}

	customer, err := crm.NewCustomer(ownerID, "Acme Corp", "", "", "")
	require.NoError(t, err)

	repoWith := func(found *crm.Customer) *stubCustomerRepo {
		return &stubCustomerRepo{
			findByID: func(_ context.Context, id uuid.UUID) (*crm.Customer, error) {
				if found != nil && id == found.ID {
					return found, nil
				}
				return nil, shared.ErrNotFound
			},
		}
	}

	t.Run("missing customer returns 404", func(t *testing.T) {
		engine := setupCustomerRouter(t, owner, repoWith(nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/customers/"+uuid.NewString(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("foreign customer returns 403", func(t *testing.T) {
		engine := setupCustomerRouter(t, stranger, repoWith(customer))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/customers/"+customer.ID.String(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", decodeResponse(t, w).Error.Code)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		engine := setupCustomerRouter(t, owner, repoWith(customer))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/customers/not-a-uuid", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", decodeResponse(t, w).Error.Code)
	})

	t.Run("owner gets customer detail", func(t *testing.T) {
		engine := setupCustomerRouter(t, owner, repoWith(customer))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/customers/"+customer.ID.String(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
	})
}

func TestCustomerHandlerCreate(t *testing.T) {
	actor := identity.Actor{ID: uuid.New(), Role: identity.RoleUser}

	t.Run("creates and returns 201", func(t *testing.T) {
		engine := setupCustomerRouter(t, actor, &stubCustomerRepo{})

		body, _ := json.Marshal(map[string]string{"name": "Acme Corp"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decodeResponse(t, w).Success)
	})

	t.Run("missing name returns 400", func(t *testing.T) {
		engine := setupCustomerRouter(t, actor, &stubCustomerRepo{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
