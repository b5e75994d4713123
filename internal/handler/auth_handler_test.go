package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"eshop_backend/internal/model"
	"eshop_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Resolve(ctx context.Context, login string) (*model.User, []string, error) {
	args := m.Called(ctx, login)
	return userArg(args.Get(0)), rolesArg(args.Get(1)), args.Error(2)
}

func (m *mockAuthService) Login(ctx context.Context, login, password string) (*model.User, []string, string, error) {
	args := m.Called(ctx, login, password)
	return userArg(args.Get(0)), rolesArg(args.Get(1)), args.String(2), args.Error(3)
}

func rolesArg(v interface{}) []string {
	if v == nil {
		return nil
	}
	return v.([]string)
}

func setupAuthRouter(svc *mockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAuthHandler(svc).RegisterAuthRoutes(router.Group(""))
	return router
}

func TestAuthHandler_LoginSuccessful(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, "admin", "secret123").
		Return(&model.User{ID: 1, Login: "admin"}, []string{model.RoleUser, model.RoleAdmin}, "tok123", nil)
	router := setupAuthRouter(svc)

	body := bytes.NewBufferString(`{"login":"admin","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"tok123"`)
	assert.Contains(t, w.Body.String(), model.RoleAdmin)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, "admin", "wrong").
		Return(nil, nil, "", service.ErrInvalidCredentials)
	router := setupAuthRouter(svc)

	body := bytes.NewBufferString(`{"login":"admin","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	svc := new(mockAuthService)
	router := setupAuthRouter(svc)

	body := bytes.NewBufferString(`{"login":"admin"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}
