package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Server     ServerConfig     `yaml:"server"`
	TwitterAPI TwitterAPIConfig `yaml:"twitterapi"`
	Ingest     IngestConfig     `yaml:"ingest"`
	Sync       SyncConfig       `yaml:"sync"`
	RabbitMQ   RabbitMQConfig   `yaml:"rabbitmq"`
	LogLevel   string           `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// URL returns the connection string form the migration tool expects.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type ServerConfig struct {
	Addr string `yaml:"addr"`

	// CronSecret guards the ingestion trigger. Empty means the trigger is
	// unauthenticated.
	CronSecret string `yaml:"cron_secret"`
}

type TwitterAPIConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

type IngestConfig struct {
	// Lookback is the maximum age of a tweet eligible for storage.
	Lookback time.Duration `yaml:"lookback"`

	MaxPagesPerAccount int `yaml:"max_pages_per_account"`

	// MinInterval spaces consecutive upstream calls. The free tier allows
	// one request per 5s; the default leaves a buffer.
	MinInterval time.Duration `yaml:"min_interval"`
}

type SyncConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Interval   time.Duration `yaml:"interval"`
	RunTimeout time.Duration `yaml:"run_timeout"`
}

// RabbitMQConfig configures the optional new-tweet event publisher. An
// empty URL disables publishing entirely.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.TwitterAPI.Timeout == 0 {
		c.TwitterAPI.Timeout = 30 * time.Second
	}
	if c.Ingest.Lookback == 0 {
		c.Ingest.Lookback = 72 * time.Hour
	}
	if c.Ingest.MaxPagesPerAccount == 0 {
		c.Ingest.MaxPagesPerAccount = 5
	}
	if c.Ingest.MinInterval == 0 {
		c.Ingest.MinInterval = 6500 * time.Millisecond
	}
	if c.Sync.Interval == 0 {
		c.Sync.Interval = 30 * time.Minute
	}
	if c.Sync.RunTimeout == 0 {
		c.Sync.RunTimeout = 25 * time.Minute
	}
	if c.RabbitMQ.URL != "" {
		if c.RabbitMQ.Exchange == "" {
			c.RabbitMQ.Exchange = "tweet_feeds"
		}
		if c.RabbitMQ.RoutingKey == "" {
			c.RabbitMQ.RoutingKey = "tweets"
		}
		if c.RabbitMQ.QueueName == "" {
			c.RabbitMQ.QueueName = "feed_tweets"
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
