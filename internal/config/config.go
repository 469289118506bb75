package config

import (
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`
	Port       int  `env:"PORT" envDefault:"8080"`

	Secret        string `env:"SECRET,required"`
	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	BcryptHasherCost      int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	SessionTokenValidFor  time.Duration `env:"SESSION_TOKEN_VALID_DURATION" envDefault:"168h"`
	PasswordResetValidFor time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"1h"`
	LowercaseEmails       bool          `env:"EMAIL_LOWERCASE" envDefault:"true"`

	AwsRegion                     string  `env:"AWS_REGION,required"`
	AwsAccessKey                  string  `env:"AWS_ACCESS_KEY,required"`
	AwsSecretKey                  string  `env:"AWS_SECRET_KEY,required"`
	AwsEmailSender                string  `env:"AWS_EMAIL_SENDER,required"`
	AwsEmailPasswordResetTemplate string  `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE,required"`
	PasswordResetBaseUrl          url.URL `env:"PASSWORD_RESET_BASE_URL,required"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
