package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/attendo-hq/attendance-backend-go/internal/config"
	appHTTP "github.com/attendo-hq/attendance-backend-go/internal/handler/http"
	"github.com/attendo-hq/attendance-backend-go/internal/pkg/cron"
	"github.com/attendo-hq/attendance-backend-go/internal/pkg/database"
	"github.com/attendo-hq/attendance-backend-go/internal/pkg/jwt"
	"github.com/attendo-hq/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendo-hq/attendance-backend-go/internal/service/attendance"
	authService "github.com/attendo-hq/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/attendo-hq/attendance-backend-go/internal/service/dashboard"
	departmentService "github.com/attendo-hq/attendance-backend-go/internal/service/department"
	employeeService "github.com/attendo-hq/attendance-backend-go/internal/service/employee"
	reportService "github.com/attendo-hq/attendance-backend-go/internal/service/report"
	settingService "github.com/attendo-hq/attendance-backend-go/internal/service/setting"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	attendanceLogRepo := postgresql.NewAttendanceLogRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	runInTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}

	settingSvc := settingService.NewSettingService(settingRepo)
	attendanceSvc := attendanceService.NewAttendanceService(runInTx, attendanceRepo, attendanceLogRepo, employeeRepo, settingSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)
	reportSvc := reportService.NewReportService(attendanceRepo)
	authSvc := authService.NewAuthService(userRepo, jwtService)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Department: appHTTP.NewDepartmentHandler(departmentSvc),
		Setting:    appHTTP.NewSettingHandler(settingSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(jwtService, handlers)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		fmt.Printf("Server starting on port %d\n", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
