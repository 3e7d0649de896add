package config

import "testing"

func TestLoadEnvOnlyKeys(t *testing.T) {
	t.Setenv("TICKETER_QUEUES_TICKETS", "https://sqs.us-east-1.amazonaws.com/123/ticket-queue")
	t.Setenv("TICKETER_SMTP_USERNAME", "dmv-notifier")
	t.Setenv("TICKETER_AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Queues.Tickets != "https://sqs.us-east-1.amazonaws.com/123/ticket-queue" {
		t.Errorf("Queues.Tickets = %q, want value from environment", cfg.Queues.Tickets)
	}
	if cfg.SMTP.Username != "dmv-notifier" {
		t.Errorf("SMTP.Username = %q, want value from environment", cfg.SMTP.Username)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Errorf("Auth.JWTSecret = %q, want value from environment", cfg.Auth.JWTSecret)
	}
}

func TestLoadEnvOverridesDefault(t *testing.T) {
	t.Setenv("TICKETER_AWS_REGION", "eu-west-1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.AWS.Region != "eu-west-1" {
		t.Errorf("AWS.Region = %q, want eu-west-1", cfg.AWS.Region)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Pipeline.Jurisdiction != "California" {
		t.Errorf("Pipeline.Jurisdiction = %q, want California", cfg.Pipeline.Jurisdiction)
	}
	if cfg.Pipeline.BatchSize != 10 {
		t.Errorf("Pipeline.BatchSize = %d, want 10", cfg.Pipeline.BatchSize)
	}
	if cfg.SMTP.Subject != "You just got served" {
		t.Errorf("SMTP.Subject = %q", cfg.SMTP.Subject)
	}
}
