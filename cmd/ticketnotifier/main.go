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
	"github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/kylewhite0225/cloud-ml-license-reader/internal/config"
	httpapi "github.com/kylewhite0225/cloud-ml-license-reader/internal/http"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/notify"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/queue"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/service"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "ticketnotifier").Logger()

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

	translator := notify.NewAWSTranslator(translate.NewFromConfig(awsCfg))
	composer := notify.NewComposer(translator, log)

	mailer, err := notify.NewSMTPMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.Subject,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create mailer")
	}

	notifier := service.NewNotificationService(composer, mailer, log)

	sqsClient := sqs.NewFromConfig(awsCfg)
	violations := queue.NewSQSQueue(sqsClient, cfg.Queues.Violations)

	runner := queue.NewStageRunner(
		"ticketnotifier",
		violations,
		nil,
		notifier.Process,
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

	log.Info().Msg("ticketnotifier stopped")
}
