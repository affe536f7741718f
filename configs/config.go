package configs

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"4000"`
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	DBSource string `envconfig:"DB_SOURCE" default:"storefront.db"`

	AccessTokenSecret  string        `envconfig:"ACCESS_TOKEN_SECRET" default:"changeme"`
	RefreshTokenSecret string        `envconfig:"REFRESH_TOKEN_SECRET" default:"changeme-too"`
	AccessTokenTTL     time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"15m"`
	RefreshTokenTTL    time.Duration `envconfig:"REFRESH_TOKEN_TTL" default:"168h"`

	AWSRegion     string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSBucketName string `envconfig:"AWS_BUCKET_NAME"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool { return c.AppEnv == "production" }
