package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/asistapp/attendance-backend-go/internal/config"
	"github.com/asistapp/attendance-backend-go/internal/pkg/jwt"
	"github.com/asistapp/attendance-backend-go/internal/pkg/sse"
	"github.com/asistapp/attendance-backend-go/internal/repository/localfile"
	"github.com/asistapp/attendance-backend-go/internal/repository/memory"
	attendanceService "github.com/asistapp/attendance-backend-go/internal/service/attendance"
	authService "github.com/asistapp/attendance-backend-go/internal/service/auth"
	backupService "github.com/asistapp/attendance-backend-go/internal/service/backup"
	dashboardService "github.com/asistapp/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/asistapp/attendance-backend-go/internal/service/employee"
	reportService "github.com/asistapp/attendance-backend-go/internal/service/report"
	scanService "github.com/asistapp/attendance-backend-go/internal/service/scan"
	settingsService "github.com/asistapp/attendance-backend-go/internal/service/settings"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	routerTestSecret   = "test-secret-key-for-jwt"
	routerTestEmail    = "admin@example.com"
	routerTestPassword = "password123"
)

// newTestRouter wires the full API over the in-process store.
func newTestRouter(t *testing.T) *chi.Mux {
	hash, err := bcrypt.GenerateFromPassword([]byte(routerTestPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	cfg := &config.Config{
		App: config.AppConfig{
			Env:         "test",
			FrontendURL: "http://localhost:3000",
		},
		Admin: config.AdminConfig{
			Email:        routerTestEmail,
			PasswordHash: string(hash),
		},
	}

	store := memory.NewStore()
	employeeRepo := store.Employees()
	attendanceRepo := store.Attendance()

	settingsRepo := localfile.NewSettingsRepository(filepath.Join(t.TempDir(), "settings.json"))
	settingsSvc, err := settingsService.NewSettingsService(settingsRepo)
	require.NoError(t, err)

	hub := sse.NewHub()
	jwtService := jwt.NewJWTService(routerTestSecret, "1h", "24h")

	authSvc := authService.NewAuthService(cfg.Admin, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	scanSvc := scanService.NewScanService(employeeRepo, attendanceRepo, attendanceSvc, settingsSvc, hub)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo)
	backupSvc := backupService.NewBackupService(employeeRepo, attendanceRepo, settingsSvc)

	handlers := Handlers{
		Auth:       NewAuthHandler(authSvc),
		Employee:   NewEmployeeHandler(employeeSvc),
		Attendance: NewAttendanceHandler(attendanceSvc),
		Scan:       NewScanHandler(scanSvc),
		Dashboard:  NewDashboardHandler(dashboardSvc),
		Report:     NewReportHandler(reportSvc),
		Settings:   NewSettingsHandler(settingsSvc),
		Backup:     NewBackupHandler(backupSvc),
		Events:     NewEventsHandler(hub, jwtService),
	}

	return NewRouter(cfg, jwtService, handlers)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router http.Handler) string {
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    routerTestEmail,
		"password": routerTestPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.AccessToken)
	return body.Data.AccessToken
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	token := login(t, router)
	assert.NotEmpty(t, token)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    routerTestEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEmployeesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEmployeeLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/employees", token, map[string]string{
		"name":       "Ana Quispe",
		"department": "Danza",
		"position":   "Bailarina",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/employees/"+created.Data.ID+"/qr", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var badge struct {
		Data struct {
			Payload string `json:"payload"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &badge))
	assert.Contains(t, badge.Data.Payload, created.Data.ID)

	// Scanning the badge records attendance and shows up on the dashboard.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/scan", token, map[string]string{
		"raw_text": badge.Data.Payload,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/scan", token, map[string]string{
		"raw_text": badge.Data.Payload,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var dup struct {
		Data struct {
			Result string `json:"result"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dup))
	assert.Equal(t, "duplicate", dup.Data.Result)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		Data struct {
			TotalEmployees int `json:"total_employees"`
			Present        int `json:"present"`
			Late           int `json:"late"`
			Absent         int `json:"absent"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Data.TotalEmployees)
	assert.Equal(t, 1, stats.Data.Present+stats.Data.Late)
	assert.Equal(t, 0, stats.Data.Absent)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/employees/"+created.Data.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/employees/"+created.Data.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScanUnknownCode(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/scan", token, map[string]string{
		"raw_text": "zzz-unknown",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSettingsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/settings", token, map[string]interface{}{
		"late_threshold_minutes": 30,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/settings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Data struct {
			LateThresholdMinutes int `json:"late_threshold_minutes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 30, got.Data.LateThresholdMinutes)
}

func TestReportExportEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/reports/export?start_date=2024-03-10&end_date=2024-03-12", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Body.String(), "Date,Employee,Department")
}

func TestReportValidation(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/reports?start_date=2024-03-12&end_date=2024-03-10", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
