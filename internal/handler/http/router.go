package http

import (
	"log/slog"
	"os"

	"github.com/asistapp/attendance-backend-go/internal/config"
	"github.com/asistapp/attendance-backend-go/internal/handler/http/middleware"
	"github.com/asistapp/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Scan       ScanHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
	Settings   SettingsHandler
	Backup     BackupHandler
	Events     EventsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
		})

		// EventSource authenticates through the token query parameter
		r.Get("/events/stream", h.Events.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/events/token", h.Events.GetSSEToken)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Put("/", h.Employee.Update)
					r.Delete("/", h.Employee.Delete)
					r.Get("/qr", h.Employee.BadgePayload)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.ListByDate)
				r.Post("/", h.Attendance.Mark)
			})

			r.Post("/scan", h.Scan.Scan)

			r.Get("/dashboard", h.Dashboard.DailyStats)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", h.Report.RangeStats)
				r.Get("/export", h.Report.ExportCSV)
			})

			r.Route("/backup", func(r chi.Router) {
				r.Get("/", h.Backup.Export)
				r.Post("/import", h.Backup.Import)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.Get)
				r.Put("/", h.Settings.Update)
			})
		})
	})
	return r
}
