package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fredyfurtado/salon-manager/internal/config"
	"github.com/fredyfurtado/salon-manager/internal/handler"
	catalogHandler "github.com/fredyfurtado/salon-manager/internal/handler/catalog"
	clientHandler "github.com/fredyfurtado/salon-manager/internal/handler/client"
	ledgerHandler "github.com/fredyfurtado/salon-manager/internal/handler/ledger"
	reportHandler "github.com/fredyfurtado/salon-manager/internal/handler/report"
	scheduleHandler "github.com/fredyfurtado/salon-manager/internal/handler/schedule"
	staffHandler "github.com/fredyfurtado/salon-manager/internal/handler/staff"
	visitHandler "github.com/fredyfurtado/salon-manager/internal/handler/visit"
	"github.com/fredyfurtado/salon-manager/internal/repository/sqlite"
	"github.com/fredyfurtado/salon-manager/internal/router"
	catalogService "github.com/fredyfurtado/salon-manager/internal/service/catalog"
	clientService "github.com/fredyfurtado/salon-manager/internal/service/client"
	ledgerService "github.com/fredyfurtado/salon-manager/internal/service/ledger"
	reportService "github.com/fredyfurtado/salon-manager/internal/service/report"
	scheduleService "github.com/fredyfurtado/salon-manager/internal/service/schedule"
	staffService "github.com/fredyfurtado/salon-manager/internal/service/staff"
	visitService "github.com/fredyfurtado/salon-manager/internal/service/visit"
	"github.com/fredyfurtado/salon-manager/pkg/logger"
	"github.com/fredyfurtado/salon-manager/pkg/metrics"
)

func main() {
	log := logger.NewLogger(nil)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	m := metrics.NewMetrics(cfg.Metrics.Namespace)

	// Open the store and make sure the tables exist; without a store there
	// is nothing to serve.
	store, err := sqlite.Open(cfg.Store.Path, m)
	if err != nil {
		log.Fatal(err, "failed to open store")
	}
	defer store.Close()

	if err := store.EnsureSchema(context.Background()); err != nil {
		log.Fatal(err, "failed to ensure schema")
	}

	// Initialize repositories
	clientRepo := sqlite.NewClientRepository(store)
	serviceRepo := sqlite.NewServiceRepository(store)
	staffRepo := sqlite.NewStaffRepository(store)
	visitRepo := sqlite.NewVisitRepository(store)
	appointmentRepo := sqlite.NewAppointmentRepository(store)
	ledgerRepo := sqlite.NewLedgerRepository(store)

	// Initialize services
	clientSvc := clientService.NewService(clientRepo)
	catalogSvc := catalogService.NewService(serviceRepo)
	staffSvc := staffService.NewService(staffRepo)
	visitSvc := visitService.NewService(visitRepo, catalogSvc)
	scheduleSvc := scheduleService.NewService(appointmentRepo)
	ledgerSvc := ledgerService.NewService(ledgerRepo)
	reportSvc := reportService.NewService(visitRepo, ledgerRepo, m)

	// Setup router
	r := router.NewRouter(
		handler.NewHandler(),
		router.Config{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			MetricsNamespace:  cfg.Metrics.Namespace,
		},
		clientHandler.NewHandler(clientSvc),
		catalogHandler.NewHandler(catalogSvc),
		staffHandler.NewHandler(staffSvc),
		visitHandler.NewHandler(visitSvc),
		scheduleHandler.NewHandler(scheduleSvc),
		ledgerHandler.NewHandler(ledgerSvc),
		reportHandler.NewHandler(reportSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err, "server error")
		}
	}()
	log.WithFields(map[string]interface{}{
		"port":  cfg.Server.Port,
		"store": cfg.Store.Path,
	}).Info("salon manager started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "forced shutdown")
	}
}
