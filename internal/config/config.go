package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`

	Queues struct {
		Uploads    string `mapstructure:"uploads"`
		Tickets    string `mapstructure:"tickets"`
		Violations string `mapstructure:"violations"`
	} `mapstructure:"queues"`

	Buckets struct {
		Review string `mapstructure:"review"`
	} `mapstructure:"buckets"`

	Pipeline struct {
		Jurisdiction string        `mapstructure:"jurisdiction"`
		PollInterval time.Duration `mapstructure:"poll_interval"`
		BatchSize    int32         `mapstructure:"batch_size"`
	} `mapstructure:"pipeline"`

	Registry struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"registry"`

	SMTP struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		From     string `mapstructure:"from"`
		Subject  string `mapstructure:"subject"`
	} `mapstructure:"smtp"`

	HTTP struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"http"`

	Auth struct {
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"auth"`
}

// Load reads configuration from an optional config.yaml and the
// environment (prefix TICKETER, dots replaced with underscores, e.g.
// TICKETER_QUEUES_TICKETS).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/ticketer")

	v.SetEnvPrefix("TICKETER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default, even an empty one: Unmarshal only
	// sees keys viper already knows, so a key left out here would
	// ignore its environment variable.
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("queues.uploads", "")
	v.SetDefault("queues.tickets", "")
	v.SetDefault("queues.violations", "")
	v.SetDefault("buckets.review", "cc-plate-manual-review")
	v.SetDefault("pipeline.jurisdiction", "California")
	v.SetDefault("pipeline.poll_interval", "5s")
	v.SetDefault("pipeline.batch_size", 10)
	v.SetDefault("registry.dsn", "host=localhost user=postgres password=postgres dbname=dmv port=5432 sslmode=disable")
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "fakedmvemail@gmail.com")
	v.SetDefault("smtp.subject", "You just got served")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("auth.jwt_secret", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
