package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"fleetrental/internal/config"
	"fleetrental/internal/database"
	"fleetrental/internal/domain"
	"fleetrental/internal/logger"
	"fleetrental/internal/middleware"
	"fleetrental/internal/modules/auth"
	"fleetrental/internal/modules/dashboard"
	"fleetrental/internal/modules/fleet"
	"fleetrental/internal/modules/livefeed"
	"fleetrental/internal/modules/logs"
	"fleetrental/internal/modules/rental"
	"fleetrental/internal/modules/reports"
	"fleetrental/internal/modules/service"
	"fleetrental/internal/modules/warehouse"
	"fleetrental/internal/monitor"
	jwtsvc "fleetrental/internal/pkg/jwt"
	"fleetrental/internal/repository"
	"fleetrental/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger.Initialize(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Company{},
		&domain.Trailer{},
		&domain.Rental{},
		&domain.RentalTrailer{},
		&domain.RentalHistory{},
		&domain.TrailerLog{},
		&domain.ServiceHistory{},
		&domain.WarehouseItem{},
		&domain.WarehouseLog{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	trailerRepo := repository.NewTrailerRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	historyRepo := repository.NewServiceHistoryRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	fleetService := fleet.NewService(trailerRepo, auditRepo, historyRepo)
	fleetHandler := fleet.NewHandler(fleetService)

	rentalService := rental.NewService(rentalRepo, assignmentRepo, companyRepo, trailerRepo)
	rentalHandler := rental.NewHandler(rentalService)

	maintService := service.NewService(trailerRepo, historyRepo, auditRepo, assignmentRepo, service.DefaultServiceCenter)
	maintHandler := service.NewHandler(maintService)

	warehouseService := warehouse.NewService(warehouseRepo)
	warehouseHandler := warehouse.NewHandler(warehouseService)

	logsService := logs.NewService(auditRepo)
	logsHandler := logs.NewHandler(logsService)

	dashboardService := dashboard.NewService(trailerRepo, rentalRepo, assignmentRepo, warehouseRepo, userRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	reportsService := reports.NewService(trailerRepo, rentalRepo, warehouseRepo, historyRepo)
	reportsHandler := reports.NewHandler(reportsService)

	hub := livefeed.NewHub()
	livefeedHandler := livefeed.NewHandler(hub, j)

	prober := monitor.NewTCPProber(cfg.ProbePort, cfg.ProbeTimeout)
	mon := monitor.New(trailerRepo, auditRepo, prober, hub)

	sched, err := scheduler.New(mon, cfg.SweepInterval)
	if err != nil {
		log.Fatal(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	livefeedHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			dashboardHandler.RegisterRoutes(protected)
			logsHandler.RegisterRoutes(protected)
			reportsHandler.RegisterRoutes(protected)

			managers := protected.Group("/")
			managers.Use(middleware.ManagerOrAdmin())
			{
				fleetHandler.RegisterRoutes(managers)
				rentalHandler.RegisterRoutes(managers)
				maintHandler.RegisterRoutes(managers)
				warehouseHandler.RegisterRoutes(managers)
			}

			admins := protected.Group("/")
			admins.Use(middleware.AdminOnly())
			{
				authHandler.RegisterAdminRoutes(admins)
			}
		}
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	sched.Start()
	logger.Info("reachability sweep scheduled", "interval", cfg.SweepInterval)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	sched.Stop()
	hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	logger.Info("bye")
}
