package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doclyn-be/internal/models"
)

type fakeAccountService struct {
	resp *models.UserLoginResponse
	err  error

	lastReq *models.UserLoginRequest
}

func (f *fakeAccountService) ProcessLogin(req *models.UserLoginRequest) (*models.UserLoginResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func newTestRouter(svc *fakeAccountService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	uc := NewUserController(svc)
	router.POST("/api/users/login", uc.Login)
	router.GET("/api/users/health", uc.Health)
	return router
}

func postLogin(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.UserLoginResponse {
	t.Helper()
	var out models.UserLoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestLogin_SuccessReturns200(t *testing.T) {
	id := "apple-123"
	svc := &fakeAccountService{
		resp: &models.UserLoginResponse{
			Message: "User login successful",
			Success: true,
			ID:      &id,
		},
	}
	router := newTestRouter(svc)

	rec := postLogin(t, router, map[string]string{
		"id":       "apple-123",
		"email":    "jane@example.com",
		"fullName": "Jane Doe",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.True(t, out.Success)
	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "apple-123", svc.lastReq.ID)
	assert.Equal(t, "jane@example.com", svc.lastReq.Email)
}

func TestLogin_BusinessFailureReturns401(t *testing.T) {
	svc := &fakeAccountService{resp: models.Failure("Invalid email or password")}
	router := newTestRouter(svc)

	rec := postLogin(t, router, map[string]string{
		"email":    "jane@example.com",
		"password": "wrong",
		"action":   "signIn",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	out := decodeResponse(t, rec)
	assert.False(t, out.Success)
	assert.Equal(t, "Invalid email or password", out.Message)
}

func TestLogin_InfraErrorReturns500WithGenericMessage(t *testing.T) {
	svc := &fakeAccountService{err: errors.New("pq: connection refused")}
	router := newTestRouter(svc)

	rec := postLogin(t, router, map[string]string{"id": "apple-123"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	out := decodeResponse(t, rec)
	assert.False(t, out.Success)
	assert.NotContains(t, out.Message, "connection refused")
}

func TestLogin_MalformedBodyReturns400(t *testing.T) {
	svc := &fakeAccountService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	out := decodeResponse(t, rec)
	assert.False(t, out.Success)
	assert.Nil(t, svc.lastReq)
}

func TestHealth_ReturnsFixedString(t *testing.T) {
	router := newTestRouter(&fakeAccountService{})

	req := httptest.NewRequest(http.MethodGet, "/api/users/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User service is running!", rec.Body.String())
}
