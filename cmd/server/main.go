package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/smallbiz/backend/internal/application/catalog"
	financeapp "github.com/smallbiz/backend/internal/application/finance"
	partnerapp "github.com/smallbiz/backend/internal/application/partner"
	reportapp "github.com/smallbiz/backend/internal/application/report"
	tradeapp "github.com/smallbiz/backend/internal/application/trade"
	"github.com/smallbiz/backend/internal/infrastructure/config"
	"github.com/smallbiz/backend/internal/infrastructure/logger"
	"github.com/smallbiz/backend/internal/infrastructure/persistence"
	"github.com/smallbiz/backend/internal/interfaces/http/handler"
	"github.com/smallbiz/backend/internal/interfaces/http/middleware"
	"github.com/smallbiz/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)
	txManager := persistence.NewGormTxManager(db.DB)

	// Services
	clientService := partnerapp.NewClientService(clientRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	productService := catalogapp.NewProductService(productRepo)
	saleService := tradeapp.NewSaleService(saleRepo, productRepo, txManager)
	expenseService := financeapp.NewExpenseService(expenseRepo)
	paymentService := financeapp.NewPaymentService(paymentRepo)
	dashboardService := reportapp.NewDashboardService(clientRepo, saleRepo, expenseRepo, reportRepo)
	salesReportService := reportapp.NewSalesReportService(reportRepo)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}
	middleware.SetupValidator()

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	r := router.NewRouter(engine)
	r.Register(handler.NewSystemHandler(db)).
		Register(handler.NewClientHandler(clientService)).
		Register(handler.NewSupplierHandler(supplierService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewSaleHandler(saleService)).
		Register(handler.NewExpenseHandler(expenseService)).
		Register(handler.NewPaymentHandler(paymentService)).
		Register(handler.NewDashboardHandler(dashboardService)).
		Register(handler.NewReportHandler(salesReportService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
