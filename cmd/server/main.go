package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dukapos/payment-engine/internal/config"
	"github.com/dukapos/payment-engine/internal/database"
	"github.com/dukapos/payment-engine/internal/handler"
	"github.com/dukapos/payment-engine/internal/middleware"
	"github.com/dukapos/payment-engine/internal/repository"
	"github.com/dukapos/payment-engine/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if err := database.SeedData(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool)
	router.GET("/health", healthHandler.Health)

	handler.SetupSwagger(router)
	svc := setupAPIRoutes(router, pool, cfg)

	// Reference data loads in the background; BNPL checkouts are
	// refused until it lands.
	go func() {
		loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer loadCancel()
		if err := svc.LoadReferenceData(loadCtx); err != nil {
			log.Error().Err(err).Msg("failed to load reference data")
		}
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, pool *pgxpool.Pool, cfg *config.Config) *service.CheckoutService {
	customerRepo := repository.NewCustomerRepository(pool)
	providerRepo := repository.NewProviderRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	svc := service.NewCheckoutService(customerRepo, providerRepo, paymentRepo,
		cfg.LoyaltyPointRate, cfg.TaxRate)

	quoteHandler := handler.NewQuoteHandler(svc, cfg.CurrencyCode)
	customerHandler := handler.NewCustomerHandler(svc)
	providerHandler := handler.NewProviderHandler(svc)
	checkoutHandler := handler.NewCheckoutHandler(svc)
	paymentHandler := handler.NewPaymentHandler(svc)

	api := router.Group("/api/v1")
	{
		api.POST("/quotes", quoteHandler.Quote)
		api.GET("/customers/search", customerHandler.Search)
		api.GET("/bnpl/providers", providerHandler.List)
		api.POST("/checkouts", checkoutHandler.Open)
		api.GET("/checkouts/:id", checkoutHandler.Get)
		api.PUT("/checkouts/:id/method", checkoutHandler.SelectMethod)
		api.POST("/checkouts/:id/submit", checkoutHandler.Submit)
		api.DELETE("/checkouts/:id", checkoutHandler.Cancel)
		api.GET("/payments/:id/installments", paymentHandler.Installments)
	}

	return svc
}
