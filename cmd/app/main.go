package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elite-gym-console/internal/config"
	"elite-gym-console/internal/domain/model"
	pg "elite-gym-console/internal/infra/db/postgres"
	"elite-gym-console/internal/infra/logging"
	"elite-gym-console/internal/infra/metrics"
	red "elite-gym-console/internal/infra/redis"
	"elite-gym-console/internal/infra/web"
	"elite-gym-console/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs, no API key required)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Warn().Msg("developer mode enabled")
	}

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, cfg.Database.MaxPoolConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres")
	}
	defer pool.Close()

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis")
	}
	defer redisClient.Close()

	// ---- Metrics ----
	metrics.MustRegister()

	// ---- Repositories ----
	clientRepo := pg.NewClientRepoCacheDecorator(pg.NewClientRepo(pool), redisClient, cfg.Redis.TTL)
	ledgerRepo := pg.NewLedgerRepo(pool)
	productRepo := pg.NewProductRepo(pool)
	saleRepo := pg.NewSaleRepo(pool)
	txManager := pg.NewTxManager(pool)

	// ---- Use cases ----
	catalog := model.DefaultCatalog()
	planUC := usecase.NewPlanUseCase(catalog, logger)
	paymentUC := usecase.NewPaymentUseCase(catalog, ledgerRepo, logger)
	clientUC := usecase.NewClientUseCase(clientRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, productRepo, txManager, logger)
	statsUC := usecase.NewStatsUseCase(ledgerRepo, saleRepo, logger)

	// ---- HTTP server ----
	srv := web.NewServer(planUC, paymentUC, clientUC, productUC, saleUC, statsUC, cfg.Server.APIKey, logger)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(),
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown")
	}
	cancel()
}
