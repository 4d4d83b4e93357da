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

	"github.com/aleclahey/payroll-backend-go/internal/app"
	"github.com/aleclahey/payroll-backend-go/internal/config"
	appHTTP "github.com/aleclahey/payroll-backend-go/internal/handler/http"
	"github.com/aleclahey/payroll-backend-go/internal/pkg/cron"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	services := app.NewServices(cfg, logger)

	employeeHandler := appHTTP.NewEmployeeHandler(services.Employee, services.Compensation)
	masterHandler := appHTTP.NewMasterHandler(services.Master)
	timesheetHandler := appHTTP.NewTimesheetHandler(services.Timesheet)
	benefitHandler := appHTTP.NewBenefitHandler(services.Benefit)
	payrollHandler := appHTTP.NewPayrollHandler(services.Payroll, services.Compensation)
	dashboardHandler := appHTTP.NewDashboardHandler(services.Dashboard)

	router := appHTTP.NewRouter(
		cfg.App,
		logger,
		employeeHandler,
		masterHandler,
		timesheetHandler,
		benefitHandler,
		payrollHandler,
		dashboardHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler()
	if cfg.Payroll.MonthSyncInterval > 0 {
		cron.NewPayrollMonthJobs(services.Compensation).RegisterJobs(scheduler, cfg.Payroll.MonthSyncInterval)
	}
	scheduler.Start(ctx)

	go func() {
		logger.Info("Server running", "addr", server.Addr, "upstream", cfg.Upstream.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	scheduler.Wait()
	logger.Info("Server stopped")
}
