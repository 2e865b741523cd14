package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/hrms-lite/hrms-backend-go/internal/handler/http/response"
)

type Handlers struct {
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Dashboard  DashboardHandler
	Report     ReportHandler
}

func NewRouter(logger *slog.Logger, allowedOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", Health)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Post("/", h.Employee.Create)
			r.Get("/{id}", h.Employee.Get)
			r.Put("/{id}", h.Employee.Update)
			r.Delete("/{id}", h.Employee.Delete)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.List)
			r.Post("/", h.Attendance.Mark)
			r.Get("/export", h.Report.ExportAttendance)
			r.Get("/employee/{employeeId}", h.Attendance.GetByEmployee)
			r.Delete("/{id}", h.Attendance.Delete)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", h.Leave.ListRequests)
			r.Post("/", h.Leave.CreateRequest)
			r.Get("/export", h.Report.ExportLeaves)
			r.Get("/stats/summary", h.Leave.GetStats)
			r.Get("/employee/{employeeId}", h.Leave.GetEmployeeRequests)
			r.Get("/{id}", h.Leave.GetRequest)
			r.Delete("/{id}", h.Leave.CancelRequest)
			r.Put("/{id}/status", h.Leave.ReviewRequest)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", h.Dashboard.GetStats)
		})
	})

	return r
}
