package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/config"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-backend-go/internal/domain/leave"
	appHTTP "github.com/hrms-lite/hrms-backend-go/internal/handler/http"
	"github.com/hrms-lite/hrms-backend-go/internal/handler/http/response"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-lite/hrms-backend-go/internal/pkg/logger"
	"github.com/hrms-lite/hrms-backend-go/internal/repository/memory"
	"github.com/hrms-lite/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrms-lite/hrms-backend-go/internal/service/attendance"
	dashboardService "github.com/hrms-lite/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/hrms-lite/hrms-backend-go/internal/service/employee"
	leaveService "github.com/hrms-lite/hrms-backend-go/internal/service/leave"
	reportService "github.com/hrms-lite/hrms-backend-go/internal/service/report"
)

const version = "v1.0.0"

type repositories struct {
	tx         database.Transactor
	employee   employee.EmployeeRepository
	attendance attendance.AttendanceRepository
	leave      leave.LeaveRequestRepository
	dashboard  dashboard.DashboardRepository
	close      func()
}

func openRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		store := memory.NewStore()
		return repositories{
			tx:         store,
			employee:   memory.NewEmployeeRepository(store),
			attendance: memory.NewAttendanceRepository(store),
			leave:      memory.NewLeaveRequestRepository(store),
			dashboard:  memory.NewDashboardRepository(store),
			close:      func() {},
		}, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return repositories{}, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return repositories{}, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	return repositories{
		tx:         postgresql.NewTransactor(db),
		employee:   postgresql.NewEmployeeRepository(db),
		attendance: postgresql.NewAttendanceRepository(db),
		leave:      postgresql.NewLeaveRequestRepository(db),
		dashboard:  postgresql.NewDashboardRepository(db),
		close:      db.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.App.LogLevel, cfg.App.Env, version)
	slog.SetDefault(log)
	response.ExposeInternalErrors(cfg.IsDevelopment())

	loc, err := cfg.Location()
	if err != nil {
		log.Error("invalid time zone", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		log.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer repos.close()

	employeeSvc := employeeService.NewEmployeeService(
		repos.tx,
		repos.employee,
		repos.attendance,
		repos.leave,
		cfg.Leave.CascadeOnEmployeeDelete,
	)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employee, loc)
	leaveSvc := leaveService.NewLeaveService(repos.tx, repos.leave, repos.employee, loc)
	dashboardSvc := dashboardService.NewDashboardService(repos.dashboard, loc)
	reportSvc := reportService.NewReportService(leaveSvc, attendanceSvc, loc)

	router := appHTTP.NewRouter(log, cfg.App.AllowedOrigins, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to shutdown server", "error", err)
		}
	}()

	log.Info("Server running", "addr", server.Addr, "storage", cfg.Storage.Driver, "timezone", loc.String())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server encountered error", "error", err)
		repos.close()
		os.Exit(1)
	}
}
