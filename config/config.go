package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD" default:""`
	DBName      string `envconfig:"DB_NAME" default:"shark_electronics"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`

	BraintreeMerchantID string `envconfig:"BRAINTREE_MERCHANT_ID" default:""`
	BraintreePublicKey  string `envconfig:"BRAINTREE_PUBLIC_KEY" default:""`
	BraintreePrivateKey string `envconfig:"BRAINTREE_PRIVATE_KEY" default:""`
	BraintreeAPIURL     string `envconfig:"BRAINTREE_API_URL" default:""`
	BraintreeMode       string `envconfig:"BRAINTREE_MODE" default:"sandbox"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
