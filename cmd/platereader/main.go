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
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/kylewhite0225/cloud-ml-license-reader/internal/config"
	httpapi "github.com/kylewhite0225/cloud-ml-license-reader/internal/http"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/objectstore"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/plate"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/queue"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/service"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/vision"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "platereader").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load AWS configuration")
	}

	scanner := vision.NewRekognitionScanner(rekognition.NewFromConfig(awsCfg), log)
	store := objectstore.NewS3Store(s3.NewFromConfig(awsCfg), cfg.Buckets.Review, log)
	extractor := plate.NewExtractor(cfg.Pipeline.Jurisdiction)
	reader := service.NewPlateReaderService(scanner, store, extractor, log)

	sqsClient := sqs.NewFromConfig(awsCfg)
	uploads := queue.NewSQSQueue(sqsClient, cfg.Queues.Uploads)
	tickets := queue.NewSQSQueue(sqsClient, cfg.Queues.Tickets)

	runner := queue.NewStageRunner(
		"platereader",
		uploads,
		tickets,
		reader.Process,
		cfg.Pipeline.PollInterval,
		cfg.Pipeline.BatchSize,
		log,
	)
	go runner.Run(ctx)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httpapi.NewRouter(),
	}
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("ops server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ops server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)

	log.Info().Msg("platereader stopped")
}
