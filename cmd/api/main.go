package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/asistapp/attendance-backend-go/internal/config"
	"github.com/asistapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistapp/attendance-backend-go/internal/domain/employee"
	"github.com/asistapp/attendance-backend-go/internal/fixtures"
	appHTTP "github.com/asistapp/attendance-backend-go/internal/handler/http"
	"github.com/asistapp/attendance-backend-go/internal/pkg/database"
	"github.com/asistapp/attendance-backend-go/internal/pkg/jwt"
	"github.com/asistapp/attendance-backend-go/internal/pkg/sse"
	"github.com/asistapp/attendance-backend-go/internal/repository/localfile"
	"github.com/asistapp/attendance-backend-go/internal/repository/memory"
	"github.com/asistapp/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/asistapp/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/asistapp/attendance-backend-go/internal/service/auth"
	backupService "github.com/asistapp/attendance-backend-go/internal/service/backup"
	dashboardService "github.com/asistapp/attendance-backend-go/internal/service/dashboard"
	employeeService "github.com/asistapp/attendance-backend-go/internal/service/employee"
	reportService "github.com/asistapp/attendance-backend-go/internal/service/report"
	scanService "github.com/asistapp/attendance-backend-go/internal/service/scan"
	settingsService "github.com/asistapp/attendance-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var employeeRepo employee.EmployeeRepository
	var attendanceRepo attendance.AttendanceRepository

	switch cfg.Store.Driver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		employeeRepo = postgresql.NewEmployeeRepository(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db)
	case "memory":
		store := memory.NewStore()
		employeeRepo = store.Employees()
		attendanceRepo = store.Attendance()
	default:
		log.Fatal("Unsupported store driver: ", cfg.Store.Driver)
	}

	settingsRepo := localfile.NewSettingsRepository(cfg.App.SettingsPath)
	hub := sse.NewHub()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	settingsSvc, err := settingsService.NewSettingsService(settingsRepo)
	if err != nil {
		log.Fatal("Failed to load settings: ", err)
	}
	authSvc := serviceAuth.NewAuthService(cfg.Admin, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	scanSvc := scanService.NewScanService(employeeRepo, attendanceRepo, attendanceSvc, settingsSvc, hub)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo)
	backupSvc := backupService.NewBackupService(employeeRepo, attendanceRepo, settingsSvc)

	if cfg.App.SeedSampleData {
		if err := fixtures.SeedIfEmpty(context.Background(), employeeRepo, attendanceRepo); err != nil {
			log.Fatal("Failed to seed sample data: ", err)
		}
	}

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Scan:       appHTTP.NewScanHandler(scanSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Backup:     appHTTP.NewBackupHandler(backupSvc),
		Events:     appHTTP.NewEventsHandler(hub, JWTService),
	}

	router := appHTTP.NewRouter(cfg, JWTService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server is running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Error starting server:", err)
	}
}
