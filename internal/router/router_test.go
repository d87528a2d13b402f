package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dormhub/dormhub-api/internal/models"
	"github.com/dormhub/dormhub-api/internal/repository"
	"github.com/dormhub/dormhub-api/internal/service"
	"github.com/dormhub/dormhub-api/internal/store"
	"github.com/dormhub/dormhub-api/pkg/config"
)

func testEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:       config.EnvDevelopment,
		APIPrefix: "/api/v1",
		Auth: config.AuthConfig{
			TokenSecret: "integration-secret",
			TokenExpiry: time.Hour,
		},
		Server: config.ServerConfig{
			RateLimitPerSec:   1000,
			RateLimitBurst:    1000,
			ReferenceCacheTTL: time.Minute,
		},
	}

	s := store.New(store.Seed(time.Now()))
	users := repository.NewUserRepository(s)
	buildings := repository.NewBuildingRepository(s)
	rooms := repository.NewRoomRepository(s)
	students := repository.NewStudentRepository(s)

	logr := zap.NewNop()
	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(nil, metricsSvc, time.Minute, logr, false)

	authSvc := service.NewAuthService(users, nil, logr, service.AuthConfig{
		TokenSecret: cfg.Auth.TokenSecret,
		TokenExpiry: cfg.Auth.TokenExpiry,
	})
	studentSvc := service.NewStudentService(students, nil, logr)
	roomSvc := service.NewRoomService(rooms, buildings, logr)
	repairSvc := service.NewRepairService(repository.NewRepairRepository(s), students, nil, logr)
	hygieneSvc := service.NewHygieneService(repository.NewHygieneRepository(s), students, nil, logr)
	visitorSvc := service.NewVisitorService(repository.NewVisitorRepository(s), students, nil, logr)
	dashboardSvc := service.NewDashboardService(studentSvc, repairSvc, visitorSvc, rooms, buildings, students, cacheSvc, logr)
	summarySvc := service.NewSummaryService(repairSvc, hygieneSvc, visitorSvc, metricsSvc, logr, service.SummaryConfig{})
	exportSvc := service.NewExportService(students, rooms, buildings, repository.NewHygieneRepository(s), repository.NewRepairRepository(s))

	return New(cfg, logr, Services{
		Auth:       authSvc,
		Students:   studentSvc,
		Rooms:      roomSvc,
		Repairs:    repairSvc,
		Hygiene:    hygieneSvc,
		Visitors:   visitorSvc,
		Dashboards: dashboardSvc,
		Summaries:  summarySvc,
		Exports:    exportSvc,
		Metrics:    metricsSvc,
	})
}

func loginAs(t *testing.T, engine *gin.Engine, userID string) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"user_id":"`+userID+`"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.AccessToken)
	return envelope.Data.AccessToken
}

func do(engine *gin.Engine, method, target, token, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestRoutesRequireAuthentication(t *testing.T) {
	engine := testEngine(t)

	assert.Equal(t, http.StatusUnauthorized, do(engine, http.MethodGet, "/api/v1/students", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(engine, http.MethodGet, "/api/v1/dashboard", "", "").Code)
	assert.Equal(t, http.StatusOK, do(engine, http.MethodGet, "/health", "", "").Code)
}

func TestStudentRoutesEnforceRoles(t *testing.T) {
	engine := testEngine(t)
	studentToken := loginAs(t, engine, "user-student-1")
	adminToken := loginAs(t, engine, "user-admin")

	assert.Equal(t, http.StatusForbidden, do(engine, http.MethodPost, "/api/v1/students", studentToken,
		`{"name":"X","student_number":"S9","gender":"Male","class":"CS"}`).Code)
	assert.Equal(t, http.StatusForbidden, do(engine, http.MethodGet, "/api/v1/exports/students", studentToken, "").Code)
	assert.Equal(t, http.StatusForbidden, do(engine, http.MethodGet, "/api/v1/rooms", studentToken, "").Code)

	w := do(engine, http.MethodPost, "/api/v1/students", adminToken,
		`{"name":"New Kid","student_number":"S9","gender":"Male","class":"CS"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestManagerListScopedByRouter(t *testing.T) {
	engine := testEngine(t)
	token := loginAs(t, engine, "user-manager-a")

	w := do(engine, http.MethodGet, "/api/v1/students", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []models.Student `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 3)
	for _, st := range envelope.Data {
		assert.Equal(t, "dorm-a", st.BuildingID)
	}
}

func TestAssignmentFlowOverHTTP(t *testing.T) {
	engine := testEngine(t)
	token := loginAs(t, engine, "user-admin")

	w := do(engine, http.MethodPost, "/api/v1/students/assign", token, `{"student_id":"stu-6","room_id":"room-b-202"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(engine, http.MethodPost, "/api/v1/students/assign", token, `{"student_id":"stu-6","room_id":"room-a-101"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestVisitorCheckOutConflictOverHTTP(t *testing.T) {
	engine := testEngine(t)
	token := loginAs(t, engine, "user-manager-b")

	assert.Equal(t, http.StatusOK, do(engine, http.MethodPost, "/api/v1/visitors/vis-2/checkout", token, "").Code)
	assert.Equal(t, http.StatusConflict, do(engine, http.MethodPost, "/api/v1/visitors/vis-2/checkout", token, "").Code)
}

func TestSummaryWithoutKeyReturnsPlaceholder(t *testing.T) {
	engine := testEngine(t)
	token := loginAs(t, engine, "user-student-1")

	w := do(engine, http.MethodPost, "/api/v1/summary", token, `{"language":"en"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Summary string `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Gemini API key is not configured. Cannot generate summary.", envelope.Data.Summary)
}

func TestExportStudentsCSVOverHTTP(t *testing.T) {
	engine := testEngine(t)
	token := loginAs(t, engine, "user-admin")

	w := do(engine, http.MethodGet, "/api/v1/exports/students?format=csv", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "Student Number")
}
