// Package app builds the service graph shared by the server and the terminal client.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/simaogato/kirimuang-backend/internal/adapter/events/rabbitmq"
	"github.com/simaogato/kirimuang-backend/internal/adapter/notifier/telegram"
	"github.com/simaogato/kirimuang-backend/internal/adapter/repository/memory"
	"github.com/simaogato/kirimuang-backend/internal/adapter/repository/postgres"
	redisrepo "github.com/simaogato/kirimuang-backend/internal/adapter/repository/redis"
	"github.com/simaogato/kirimuang-backend/internal/adapter/repository/sqlite"
	"github.com/simaogato/kirimuang-backend/internal/config"
	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/i18n"
	"github.com/simaogato/kirimuang-backend/internal/usecase/dashboard"
	"github.com/simaogato/kirimuang-backend/internal/usecase/history"
	"github.com/simaogato/kirimuang-backend/internal/usecase/notification"
	"github.com/simaogato/kirimuang-backend/internal/usecase/preferences"
	"github.com/simaogato/kirimuang-backend/internal/usecase/profile"
	"github.com/simaogato/kirimuang-backend/internal/usecase/rates"
	"github.com/simaogato/kirimuang-backend/internal/usecase/seeder"
	"github.com/simaogato/kirimuang-backend/internal/usecase/submission"
	"github.com/simaogato/kirimuang-backend/internal/usecase/wizard"
)

// rateHistoryCapacity bounds the in-memory snapshot history
const rateHistoryCapacity = 500

// App owns every long-lived collaborator
type App struct {
	Config *config.Config
	Logger zerolog.Logger

	Translator  *i18n.Translator
	Center      *notification.Center
	Notices     *notification.Notices
	Rates       *rates.Service
	Wizards     *wizard.Manager
	History     *history.HistoryService
	Dashboard   *dashboard.DashboardService
	Preferences *preferences.Service
	Profile     *profile.Service

	closers []func() error
}

// New connects the configured stores and channels and builds the services.
// Optional channels (RabbitMQ, Telegram) that fail to connect are disabled with a warning.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	// 1. Translations
	translator, err := i18n.Load()
	if err != nil {
		return nil, err
	}
	a.Translator = translator

	// 2. Storage
	var db *postgres.DB
	if cfg.NeedsPostgres() {
		db, err = postgres.NewDB(cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.closers = append(a.closers, db.Close)

		if err := db.Migrate(ctx); err != nil {
			a.Close()
			return nil, err
		}
		logger.Info().Msg("connected to postgres")
	}

	var (
		transactionRepo domain.TransactionRepository
		rateHistoryRepo domain.RateHistoryRepository
	)
	switch cfg.Storage {
	case config.StoragePostgres:
		transactionRepo = postgres.NewTransactionRepository(db)
		rateHistoryRepo = postgres.NewRateHistoryRepository(db)
	default:
		transactionRepo = memory.NewTransactionRepository()
		rateHistoryRepo = memory.NewRateHistoryRepository(rateHistoryCapacity)
	}

	prefStore, err := a.preferenceStore(ctx, db)
	if err != nil {
		a.Close()
		return nil, err
	}

	if cfg.SeedHistory {
		if err := seeder.NewHistorySeeder(transactionRepo).Seed(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to seed transaction history: %w", err)
		}
		logger.Info().Int("transactions", len(seeder.SampleHistory)).Msg("sample history seeded")
	}

	// 3. Outbound channels
	publisher := a.eventPublisher()
	a.Center = notification.NewCenter(a.platformNotifier(), logger)
	a.Notices = notification.NewNotices(a.Center, translator)

	// 4. Services
	a.Rates = rates.NewService(
		rates.NewRandomSource(nil),
		rateHistoryRepo,
		a.Notices,
		rates.Options{
			Interval:      cfg.RateInterval,
			ManualLatency: cfg.ManualRefreshDelay,
			ManualEvery:   cfg.ManualRefreshEvery,
		},
		logger,
	)
	a.History = history.NewHistoryService(transactionRepo, translator)
	a.Preferences = preferences.NewService(prefStore)
	a.Dashboard = dashboard.NewDashboardService(a.History, a.Rates, a.Preferences)
	a.Profile = profile.NewService(a.History)
	a.Wizards = wizard.NewManager(wizard.Deps{
		Submitter:  submission.NewSimulatedService(cfg.SubmitDelay, publisher, logger),
		Rates:      a.Rates,
		Notices:    a.Notices,
		Translator: translator,
		Logger:     logger,
	})

	return a, nil
}

func (a *App) preferenceStore(ctx context.Context, db *postgres.DB) (domain.PreferenceStore, error) {
	cfg := a.Config

	switch cfg.PreferenceStore {
	case config.StoragePostgres:
		return postgres.NewPreferenceStore(db), nil

	case config.StorageSQLite:
		store, err := sqlite.NewPreferenceStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store, nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		return redisrepo.NewPreferenceStore(client), nil

	default:
		return memory.NewPreferenceStore(), nil
	}
}

func (a *App) eventPublisher() domain.EventPublisher {
	if a.Config.RabbitMQURL == "" {
		return nil
	}

	conn, err := rabbitmq.Dial(a.Config.RabbitMQURL, domain.TransferEventsExchange)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("rabbitmq unavailable, transfer events disabled")
		return nil
	}
	a.closers = append(a.closers, conn.Close)
	a.Logger.Info().Msg("connected to rabbitmq")
	return rabbitmq.NewPublisher(conn.Channel(), a.Logger)
}

func (a *App) platformNotifier() domain.PlatformNotifier {
	if a.Config.TelegramToken == "" {
		return nil
	}

	notifier, err := telegram.Dial(a.Config.TelegramToken, a.Config.TelegramChatID)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("telegram unavailable, platform notifications disabled")
		return nil
	}
	return notifier
}

// Close ends the wizard sessions and releases connections in reverse order
func (a *App) Close() error {
	if a.Wizards != nil {
		a.Wizards.CloseAll()
	}
	if a.Center != nil {
		a.Center.Clear()
	}

	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
