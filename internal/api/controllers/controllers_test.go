package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

type stubAccountService struct {
	createErr error
	loginErr  error
	token     string
	profile   *response_models.AccountResponse
	loggedOut string
}

func (s *stubAccountService) CreateAccount(_ context.Context, _ request_models.SignUpRequest) error {
	return s.createErr
}

func (s *stubAccountService) Login(_ context.Context, _ request_models.LoginRequest) (string, error) {
	return s.token, s.loginErr
}

func (s *stubAccountService) Logout(token string) error {
	s.loggedOut = token
	return nil
}

func (s *stubAccountService) GetProfile(_ context.Context, _ string) (*response_models.AccountResponse, error) {
	if s.profile == nil {
		return nil, utils.ErrAccountNotFound
	}
	return s.profile, nil
}

type stubTripService struct {
	plan      *response_models.TripPlanResponse
	planErr   error
	saveErr   error
	pdf       []byte
	exportErr error
	raw       string
	rawErr    error
	savedID   string
	saved     string
}

func (s *stubTripService) PlanTrip(_ context.Context, _ string, _ request_models.TripRequest) (*response_models.TripPlanResponse, error) {
	return s.plan, s.planErr
}

func (s *stubTripService) ListTrips(_ context.Context, _ string, _, _ int) ([]response_models.TripSummary, error) {
	return []response_models.TripSummary{{TripID: "trip-1", Destination: "Kyoto"}}, nil
}

func (s *stubTripService) GetTrip(_ context.Context, _ string, _ string) (*response_models.TripPlanResponse, error) {
	if s.plan == nil {
		return nil, utils.ErrTripNotFound
	}
	return s.plan, nil
}

func (s *stubTripService) SaveEditedContent(_ context.Context, _ string, tripID, content string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.savedID = tripID
	s.saved = content
	return nil
}

func (s *stubTripService) DiscardEdit(_ context.Context, _ string, tripID string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.savedID = tripID
	s.saved = ""
	return nil
}

func (s *stubTripService) ExportPDF(_ context.Context, _ string, _ string) ([]byte, error) {
	return s.pdf, s.exportErr
}

func (s *stubTripService) GenerateRaw(_ context.Context, _ string) (string, error) {
	return s.raw, s.rawErr
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not an API envelope: %v (%s)", err, w.Body.String())
	}
	return resp
}

// fakeAuth stands in for the JWT middleware in handler tests.
func fakeAuth(userID, token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("token", token)
		c.Next()
	}
}

func TestRegisterValidatesPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewAccountController(&stubAccountService{}, zap.NewNop())
	router := gin.New()
	router.POST("/api/auth/register", ctrl.Register)

	w := perform(router, http.MethodPost, "/api/auth/register", `{"email":"not-an-email"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %d", w.Code)
	}

	w = perform(router, http.MethodPost, "/api/auth/register",
		`{"display_name":"Dana","email":"dana@example.com","password":"hunter2secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewAccountController(&stubAccountService{createErr: utils.ErrEmailAlreadyExists}, zap.NewNop())
	router := gin.New()
	router.POST("/api/auth/register", ctrl.Register)

	w := perform(router, http.MethodPost, "/api/auth/register",
		`{"display_name":"Dana","email":"dana@example.com","password":"hunter2secret"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestLoginReturnsToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewAccountController(&stubAccountService{token: "signed-token"}, zap.NewNop())
	router := gin.New()
	router.POST("/api/auth/login", ctrl.Login)

	w := perform(router, http.MethodPost, "/api/auth/login",
		`{"email":"dana@example.com","password":"hunter2secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeEnvelope(t, w)
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["token"] != "signed-token" {
		t.Fatalf("expected token in response data, got %v", resp.Data)
	}
}

func TestLoginBadCredentialsUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewAccountController(&stubAccountService{loginErr: utils.ErrInvalidCredentials}, zap.NewNop())
	router := gin.New()
	router.POST("/api/auth/login", ctrl.Login)

	w := perform(router, http.MethodPost, "/api/auth/login",
		`{"email":"dana@example.com","password":"wrongpass"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLogoutRevokesPresentedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubAccountService{}
	ctrl := NewAccountController(svc, zap.NewNop())
	router := gin.New()
	router.POST("/api/auth/logout", fakeAuth("user-1", "bearer-token"), ctrl.Logout)

	w := perform(router, http.MethodPost, "/api/auth/logout", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.loggedOut != "bearer-token" {
		t.Fatalf("expected the presented token to be revoked, got %q", svc.loggedOut)
	}
}

func TestGenerateProxiesPrompt(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewAIController(&stubTripService{raw: "Day 1\nArrive and rest."}, zap.NewNop())
	router := gin.New()
	router.POST("/api/ai/generate", fakeAuth("user-1", "tok"), ctrl.Generate)

	w := perform(router, http.MethodPost, "/api/ai/generate", `{"prompt":"Plan a trip to Kyoto"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeEnvelope(t, w)
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["message"] != "Day 1\nArrive and rest." {
		t.Fatalf("expected generated text under message, got %v", resp.Data)
	}
}

func TestGenerateFailureIsBadGateway(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewAIController(&stubTripService{rawErr: utils.ErrAIUnavailable}, zap.NewNop())
	router := gin.New()
	router.POST("/api/ai/generate", fakeAuth("user-1", "tok"), ctrl.Generate)

	w := perform(router, http.MethodPost, "/api/ai/generate", `{"prompt":"Plan a trip"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 on provider failure, got %d", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if !strings.Contains(resp.Message, "Failed to generate trip plan") {
		t.Fatalf("unexpected error message %q", resp.Message)
	}
}

func TestCreateTripRequiresFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewTripController(&stubTripService{}, zap.NewNop())
	router := gin.New()
	router.POST("/api/trips", fakeAuth("user-1", "tok"), ctrl.CreateTrip)

	w := perform(router, http.MethodPost, "/api/trips", `{"destination":"Kyoto"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when dates are missing, got %d", w.Code)
	}
}

func TestGetTripNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewTripController(&stubTripService{}, zap.NewNop())
	router := gin.New()
	router.GET("/api/trips/:id", fakeAuth("user-1", "tok"), ctrl.GetTrip)

	w := perform(router, http.MethodGet, "/api/trips/unknown", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSaveContentPersistsEdit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubTripService{}
	ctrl := NewTripController(svc, zap.NewNop())
	router := gin.New()
	router.PUT("/api/trips/:id/content", fakeAuth("user-1", "tok"), ctrl.SaveContent)

	w := perform(router, http.MethodPut, "/api/trips/trip-1/content", `{"content":"<p>edited</p>"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.savedID != "trip-1" || svc.saved != "<p>edited</p>" {
		t.Fatalf("edit not forwarded: id=%q content=%q", svc.savedID, svc.saved)
	}

	w = perform(router, http.MethodPut, "/api/trips/trip-1/content", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty content, got %d", w.Code)
	}
}

func TestDeleteContentDiscardsEdit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubTripService{saved: "<p>edited</p>"}
	ctrl := NewTripController(svc, zap.NewNop())
	router := gin.New()
	router.DELETE("/api/trips/:id/content", fakeAuth("user-1", "tok"), ctrl.DeleteContent)

	w := perform(router, http.MethodDelete, "/api/trips/trip-1/content", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if svc.savedID != "trip-1" || svc.saved != "" {
		t.Fatalf("discard not forwarded: id=%q content=%q", svc.savedID, svc.saved)
	}
}

func TestExportPDFSetsDownloadHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewTripController(&stubTripService{pdf: []byte("%PDF-1.4 fake")}, zap.NewNop())
	router := gin.New()
	router.GET("/api/trips/:id/export", fakeAuth("user-1", "tok"), ctrl.ExportPDF)

	w := perform(router, http.MethodGet, "/api/trips/trip-1/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("expected attachment disposition, got %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Fatal("expected PDF body")
	}
}

func TestExportPDFFailureIsServerError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewTripController(&stubTripService{exportErr: utils.ErrExportFailed}, zap.NewNop())
	router := gin.New()
	router.GET("/api/trips/:id/export", fakeAuth("user-1", "tok"), ctrl.ExportPDF)

	w := perform(router, http.MethodGet, "/api/trips/trip-1/export", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
