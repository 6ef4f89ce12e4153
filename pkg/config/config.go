package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/cockroachdb/errors"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
)

const (
	BackendNone     = "none"
	BackendRest     = "rest"
	BackendCosmos   = "cosmos"
	BackendPostgres = "postgres"
)

type Config struct {
	ApiKey     string `env:"API_KEY"`
	ListenPort string `env:"FUNCTIONS_CUSTOMHANDLER_PORT" envDefault:"8080"`

	UserID      string `env:"SYNC_USER_ID"`
	AccessToken string `env:"SYNC_ACCESS_TOKEN"`

	LocalDBPath     string `env:"LOCAL_DB_PATH" envDefault:"expenses.db"`
	LocalQuotaBytes int64  `env:"LOCAL_QUOTA_BYTES" envDefault:"52428800"`

	RemoteBackend   string        `env:"REMOTE_BACKEND" envDefault:"rest"`
	ReachabilityTTL time.Duration `env:"REACHABILITY_TTL" envDefault:"30s"`

	RestURL    string `env:"REMOTE_REST_URL"`
	RestAPIKey string `env:"REMOTE_REST_API_KEY"`

	CosmosConnectionString string `env:"COSMO_DB_CONNECTION_STRING"`
	CosmosDBName           string `env:"COSMO_DB_NAME" envDefault:"expense_tracker"`

	PostgresDSN string `env:"POSTGRES_DSN"`

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID"`

	Cleanup Cleanup `envPrefix:"CLEANUP_"`
}

type Cleanup struct {
	DryRun       bool `env:"DRY_RUN" envDefault:"true"`
	MaxToDelete  int  `env:"MAX_TO_DELETE" envDefault:"100"`
	IncludeCloud bool `env:"INCLUDE_CLOUD"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to parse config")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.RemoteBackend {
	case BackendNone:
	case BackendRest:
		if c.RestURL == "" {
			return errors.Wrap(common.ErrValidation, "REMOTE_REST_URL is required for the rest backend")
		}
	case BackendCosmos:
		if c.CosmosConnectionString == "" {
			return errors.Wrap(common.ErrValidation, "COSMO_DB_CONNECTION_STRING is required for the cosmos backend")
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return errors.Wrap(common.ErrValidation, "POSTGRES_DSN is required for the postgres backend")
		}
	default:
		return errors.Wrapf(common.ErrValidation, "unknown remote backend %q", c.RemoteBackend)
	}

	if c.Cleanup.MaxToDelete < 0 {
		return errors.Wrap(common.ErrValidation, "CLEANUP_MAX_TO_DELETE must not be negative")
	}

	return nil
}

func (c Config) ListenAddr() string {
	return ":" + c.ListenPort
}
