package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/kylewhite0225/cloud-ml-license-reader/internal/config"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/db"
	httpapi "github.com/kylewhite0225/cloud-ml-license-reader/internal/http"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/queue"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/registry"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/service"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "dmvservice").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.Open(cfg.Registry.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to registry database")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("failed to run registry migrations")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load AWS configuration")
	}

	repo := registry.NewRepository(gormDB)
	enricher := service.NewEnrichmentService(repo, log)

	sqsClient := sqs.NewFromConfig(awsCfg)
	tickets := queue.NewSQSQueue(sqsClient, cfg.Queues.Tickets)
	violations := queue.NewSQSQueue(sqsClient, cfg.Queues.Violations)

	runner := queue.NewStageRunner(
		"dmvservice",
		tickets,
		violations,
		enricher.Process,
		cfg.Pipeline.PollInterval,
		cfg.Pipeline.BatchSize,
		log,
	)
	go runner.Run(ctx)

	router := httpapi.NewRouter()
	handler := httpapi.NewHandler(repo, log)
	handler.Register(router, httpapi.AuthMiddleware(cfg.Auth.JWTSecret))

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("registry API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("registry API failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)

	log.Info().Msg("dmvservice stopped")
}
