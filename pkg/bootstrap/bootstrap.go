package bootstrap

import (
	"context"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/skynet2/expense-tracker-sync/pkg/cloudapi"
	"github.com/skynet2/expense-tracker-sync/pkg/config"
	"github.com/skynet2/expense-tracker-sync/pkg/manualsync"
	"github.com/skynet2/expense-tracker-sync/pkg/notifications"
	"github.com/skynet2/expense-tracker-sync/pkg/printer"
	"github.com/skynet2/expense-tracker-sync/pkg/repo"
	"github.com/skynet2/expense-tracker-sync/pkg/spreadsheet"
)

type Options struct {
	ExitHook   manualsync.ExitHook
	HTTPClient *req.Client
}

// App is a fully wired sync session for the configured user.
type App struct {
	Manager  *manualsync.Manager
	Notifier *notifications.Telegram
	Printer  *printer.Printer
	Exporter *spreadsheet.Exporter

	closers []io.Closer
}

func Open(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = req.C()
	}

	app := &App{
		Notifier: notifications.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID, opts.HTTPClient),
		Printer:  printer.NewPrinter(),
		Exporter: spreadsheet.NewExporter(),
	}

	local, err := repo.OpenSQLite(cfg.LocalDBPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open local database")
	}

	if err = app.track(local); err != nil {
		return nil, err
	}

	remote, connectivity, err := app.openRemote(ctx, cfg, opts.HTTPClient)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	mgr, err := manualsync.NewManager(ctx, manualsync.Config{
		Session: manualsync.Session{
			UserID:      cfg.UserID,
			AccessToken: cfg.AccessToken,
		},
		Local:        LocalStores(local),
		Remote:       remote,
		Connectivity: connectivity,
		ExitHook:     opts.ExitHook,
		Quota:        repo.NewSQLiteQuota(local, cfg.LocalQuotaBytes),
		Settings:     repo.NewSettings(local),
	})
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	app.Manager = mgr

	zerolog.Ctx(ctx).Info().
		Str("backend", cfg.RemoteBackend).
		Str("local", cfg.LocalDBPath).
		Bool("signed_in", cfg.UserID != "").
		Msg("sync session opened")

	return app, nil
}

func (a *App) openRemote(
	ctx context.Context,
	cfg config.Config,
	httpClient *req.Client,
) (manualsync.RemoteStores, manualsync.Connectivity, error) {
	switch cfg.RemoteBackend {
	case config.BackendRest:
		client := cloudapi.NewClient(cfg.RestAPIKey, cfg.RestURL, httpClient)
		token := func() string { return cfg.AccessToken }

		return RestStores(client, token), cloudapi.NewReachability(client, cfg.ReachabilityTTL), nil
	case config.BackendCosmos:
		cl, err := azcosmos.NewClientFromConnectionString(cfg.CosmosConnectionString, nil)
		if err != nil {
			return manualsync.RemoteStores{}, nil, errors.Wrap(err, "failed to create cosmos client")
		}

		cosmo, err := repo.NewCosmo(ctx, cl, cfg.CosmosDBName)
		if err != nil {
			return manualsync.RemoteStores{}, nil, errors.Wrap(err, "failed to open cosmos database")
		}

		stores, err := CosmosStores(cosmo)
		if err != nil {
			return manualsync.RemoteStores{}, nil, err
		}

		return stores, cloudapi.NewProbeReachability(cosmo.Ping, cfg.ReachabilityTTL), nil
	case config.BackendPostgres:
		db, err := repo.OpenPostgres(cfg.PostgresDSN)
		if err != nil {
			return manualsync.RemoteStores{}, nil, errors.Wrap(err, "failed to open postgres")
		}

		if err = a.track(db); err != nil {
			return manualsync.RemoteStores{}, nil, err
		}

		ping := func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}

			return sqlDB.PingContext(ctx)
		}

		return PostgresStores(db), cloudapi.NewProbeReachability(ping, cfg.ReachabilityTTL), nil
	default:
		return manualsync.RemoteStores{}, nil, nil
	}
}

func (a *App) track(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql db")
	}

	a.closers = append(a.closers, sqlDB)

	return nil
}

// Close releases the exit hook and every database handle.
func (a *App) Close() error {
	if a.Manager != nil {
		a.Manager.Close()
	}

	var err error
	for _, c := range a.closers {
		err = errors.CombineErrors(err, c.Close())
	}

	a.closers = nil

	return err
}
