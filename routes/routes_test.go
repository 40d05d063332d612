package routes

import (
	"alertsystem/config"
	"alertsystem/controllers"
	"alertsystem/events"
	"alertsystem/interfaces"
	"alertsystem/metrics"
	"alertsystem/models"
	"alertsystem/repositories/memory"
	"alertsystem/utils"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type RouterSuite struct {
	suite.Suite

	repos     *interfaces.Repositories
	publisher *events.RecordingPublisher
	router    *gin.Engine
}

func TestRouterSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(RouterSuite))
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:        "test",
		BaseURL:            "http://localhost:8080",
		JWTSecret:          "router-test-secret",
		JWTExpirationHours: 1,
		CORSOrigins:        []string{"https://relief.example.org"},
		RateLimitRequests:  1000,
		RateLimitWindowMin: 1,
	}
}

func (s *RouterSuite) SetupTest() {
	s.repos = memory.NewRepositories()
	s.publisher = &events.RecordingPublisher{}
	s.router = s.newRouter(nil)
}

func (s *RouterSuite) newRouter(checks map[string]controllers.HealthCheck) *gin.Engine {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return SetupRoutes(Dependencies{
		Config:       testConfig(),
		Repositories: s.repos,
		Publisher:    s.publisher,
		Metrics:      metrics.New(),
		Logger:       logger,
		HealthChecks: checks,
	})
}

func (s *RouterSuite) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) message(w *httptest.ResponseRecorder) string {
	var body models.MessageResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func (s *RouterSuite) signupCitizen(email string) string {
	w := s.do(http.MethodPost, "/api/auth/signup", models.SignupRequest{
		Name:     "Ravi Kumar",
		Email:    email,
		Password: "secret123",
		State:    "Karnataka",
		District: "Mysuru",
	}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("User registered successfully!", s.message(w))

	return s.signin(email, "secret123")
}

func (s *RouterSuite) signin(email, password string) string {
	w := s.do(http.MethodPost, "/api/auth/signin", models.LoginRequest{Email: email, Password: password}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp models.JWTResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("Bearer", resp.Type)
	return resp.Token
}

// createStaff inserts an account directly, the way the admin bootstrap does.
func (s *RouterSuite) createStaff(email string, role models.Role) string {
	hash, err := utils.NewPasswordServiceWithCost(4).Hash("secret123")
	s.Require().NoError(err)

	now := time.Now()
	s.Require().NoError(s.repos.Users.Create(context.Background(), &models.User{
		Name:      "Staff Member",
		Email:     email,
		Password:  hash,
		Role:      role,
		State:     "Karnataka",
		District:  "Mysuru",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}))
	return s.signin(email, "secret123")
}

func (s *RouterSuite) TestAPIInfo() {
	w := s.do(http.MethodGet, "/", nil, "")
	s.Require().Equal(http.StatusOK, w.Code)

	var info models.APIInfoResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &info))
	s.Equal("Disaster Management & Alerts System API", info.Message)
	s.Equal("Running", info.Status)
	s.Equal("http://localhost:8080", info.BaseURL)
}

func (s *RouterSuite) TestHealthReportsFailingDependency() {
	w := s.do(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusOK, w.Code)

	s.router = s.newRouter(map[string]controllers.HealthCheck{
		"mongodb": func(context.Context) error { return errors.New("connection refused") },
	})
	w = s.do(http.MethodGet, "/health", nil, "")
	s.Equal(http.StatusServiceUnavailable, w.Code)

	var health models.HealthResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &health))
	s.Equal("unhealthy", health.Status)
	s.Contains(health.Services["mongodb"], "connection refused")
}

func (s *RouterSuite) TestMetricsEndpoint() {
	w := s.do(http.MethodGet, "/metrics", nil, "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestProtectedRoutesRequireToken() {
	w := s.do(http.MethodGet, "/api/alerts/active", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.True(strings.HasPrefix(s.message(w), "Error: "))

	w = s.do(http.MethodGet, "/api/alerts/active", nil, "not-a-jwt")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterSuite) TestSignupSigninAndSignout() {
	token := s.signupCitizen("ravi@example.com")

	w := s.do(http.MethodGet, "/api/auth/me", nil, token)
	s.Require().Equal(http.StatusOK, w.Code)

	var me models.User
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &me))
	s.Equal("ravi@example.com", me.Email)
	s.Equal(models.RoleCitizen, me.Role)

	w = s.do(http.MethodPost, "/api/auth/signout", nil, token)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/auth/me", nil, token)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterSuite) TestSignupRejectsDuplicateEmail() {
	s.signupCitizen("ravi@example.com")

	w := s.do(http.MethodPost, "/api/auth/signup", models.SignupRequest{
		Name:     "Another Ravi",
		Email:    "RAVI@example.com",
		Password: "secret123",
	}, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.message(w), "Email is already in use!")
}

func (s *RouterSuite) TestRoleEnforcement() {
	citizen := s.signupCitizen("ravi@example.com")

	w := s.do(http.MethodGet, "/api/rescue-requests/all/count", nil, citizen)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Error: Insufficient permissions", s.message(w))

	w = s.do(http.MethodGet, "/api/emergency-teams", nil, citizen)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RouterSuite) TestRescueRequestLifecycle() {
	citizen := s.signupCitizen("ravi@example.com")
	officer := s.createStaff("officer@example.com", models.RoleOfficer)
	admin := s.createStaff("admin@example.com", models.RoleAdmin)

	w := s.do(http.MethodPost, "/api/rescue-requests", models.CreateRescueRequest{
		RescueType:   "Flood",
		Location:     "Near river bank",
		UrgencyLevel: "CRITICAL",
		Description:  "Family stranded on roof",
	}, citizen)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created models.RescueRequest
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.Equal("Mysuru", created.District)
	s.Equal(models.RequestPending, created.Status)

	w = s.do(http.MethodGet, "/api/rescue-requests/all/count", nil, admin)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("1", strings.TrimSpace(w.Body.String()))

	w = s.do(http.MethodGet, "/api/rescue-requests/district/Mysuru/pending", nil, officer)
	s.Require().Equal(http.StatusOK, w.Code)
	var pending []models.RescueRequest
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &pending))
	s.Len(pending, 1)

	w = s.do(http.MethodPut, "/api/rescue-requests/"+created.ID.Hex()+"/assign", nil, officer)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/rescue-requests/my-requests", nil, citizen)
	s.Require().Equal(http.StatusOK, w.Code)
	var mine []models.RescueRequest
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &mine))
	s.Require().Len(mine, 1)
	s.Equal(models.RequestAssigned, mine[0].Status)

	s.Contains(s.publisher.Types(), "rescue_request.created")
}

func (s *RouterSuite) TestMalformedIDIsNotFound() {
	admin := s.createStaff("admin@example.com", models.RoleAdmin)

	w := s.do(http.MethodGet, "/api/disasters/not-an-id", nil, admin)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Error: Disaster not found", s.message(w))
}

func (s *RouterSuite) TestUnknownRoute() {
	w := s.do(http.MethodGet, "/api/does-not-exist", nil, "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Error: Endpoint not found", s.message(w))
}

func (s *RouterSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/auth/signin", nil)
	req.Header.Set("Origin", "https://relief.example.org")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNoContent, w.Code)
	s.Equal("https://relief.example.org", w.Header().Get("Access-Control-Allow-Origin"))
	s.Contains(w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}
