// Package container wires the application together using Uber FX
package container

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
	gormLogger "gorm.io/gorm/logger"

	"github.com/fridgewise/core/internal/application/chef"
	inventoryapp "github.com/fridgewise/core/internal/application/inventory"
	"github.com/fridgewise/core/internal/application/library"
	"github.com/fridgewise/core/internal/application/settings"
	shoppingapp "github.com/fridgewise/core/internal/application/shopping"
	statsapp "github.com/fridgewise/core/internal/application/stats"
	"github.com/fridgewise/core/internal/infrastructure/config"
	"github.com/fridgewise/core/internal/infrastructure/generation"
	"github.com/fridgewise/core/internal/infrastructure/http/apiserver"
	"github.com/fridgewise/core/internal/infrastructure/persistence/memory"
	redisstore "github.com/fridgewise/core/internal/infrastructure/persistence/redis"
	"github.com/fridgewise/core/internal/infrastructure/persistence/sqlite"
	"github.com/fridgewise/core/internal/ports/inbound"
	"github.com/fridgewise/core/internal/ports/outbound"
	"github.com/fridgewise/core/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	GenerationModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration. FRIDGEWISE_CONFIG points at an
// explicit file; otherwise the standard search paths apply.
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load(os.Getenv("FRIDGEWISE_CONFIG"))
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			Development: cfg.Logging.Development,
			OutputPaths: cfg.Logging.OutputPaths,
		})
	},
)

// StoreModule provides the collection store selected by the storage driver
var StoreModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CollectionStore, error) {
		switch cfg.Storage.Driver {
		case "sqlite":
			logLevel := gormLogger.Silent
			if cfg.App.Debug {
				logLevel = gormLogger.Info
			}
			store, err := sqlite.NewStore(cfg.Storage.SQLite.Path, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to open SQLite store: %w", err)
			}
			log.Info("Using SQLite collection store",
				zap.String("path", cfg.Storage.SQLite.Path),
			)
			return store, nil

		case "redis":
			store, err := redisstore.NewStore(cfg.Storage.Redis, log)
			if err != nil {
				return nil, err
			}
			return store, nil

		default:
			log.Info("Using in-memory collection store")
			return memory.NewStore(), nil
		}
	},
)

// GenerationModule provides the external generation client
var GenerationModule = fx.Provide(
	fx.Annotate(
		func(cfg *config.Config, log *zap.Logger) *generation.Client {
			return generation.NewClient(generation.Config{
				APIKey:      cfg.Generation.APIKey,
				BaseURL:     cfg.Generation.BaseURL,
				Model:       cfg.Generation.Model,
				VisionModel: cfg.Generation.VisionModel,
				Temperature: cfg.Generation.Temperature,
				MaxTokens:   cfg.Generation.MaxTokens,
				Timeout:     cfg.Generation.Timeout,
			}, log)
		},
		fx.As(new(outbound.GenerationClient)),
	),
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(store outbound.CollectionStore, log *zap.Logger) inbound.StatsService {
		return statsapp.NewService(store, log)
	},

	func(store outbound.CollectionStore, statsSvc inbound.StatsService, cfg *config.Config, log *zap.Logger) inbound.InventoryService {
		return inventoryapp.NewService(store, statsSvc, inventoryapp.Config{
			SavingsPerItem:     cfg.Inventory.SavingsPerItem,
			ExpiringWindowDays: cfg.Inventory.ExpiringWindowDays,
		}, log)
	},

	func(store outbound.CollectionStore, cfg *config.Config, log *zap.Logger) inbound.LibraryService {
		return library.NewService(store, library.Config{
			HistoryLimit: cfg.Library.HistoryLimit,
		}, log)
	},

	func(store outbound.CollectionStore, log *zap.Logger) inbound.ShoppingService {
		return shoppingapp.NewService(store, log)
	},

	func(store outbound.CollectionStore, log *zap.Logger) inbound.SettingsService {
		return settings.NewService(store, log)
	},

	func(
		generator outbound.GenerationClient,
		inventorySvc inbound.InventoryService,
		librarySvc inbound.LibraryService,
		statsSvc inbound.StatsService,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.ChefService {
		return chef.NewService(generator, inventorySvc, librarySvc, statsSvc, chef.Config{
			SavingsPerItem:     cfg.Impact.SavingsPerItem,
			WastePerItemGrams:  cfg.Impact.WastePerItemGrams,
			TimeSavedPerRecipe: cfg.Impact.TimeSavedPerRecipe,
		}, log)
	},
)

// HTTPModule provides the API server
var HTTPModule = fx.Provide(
	apiserver.NewServer,
)

// LifecycleModule registers startup and shutdown hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks starts the HTTP server on application start and
// drains it, the store, and the log buffers on stop
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	store outbound.CollectionStore,
	server *apiserver.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting FridgeWise",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
				zap.String("storage_driver", cfg.Storage.Driver),
			)

			go func() {
				if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down FridgeWise")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if closer, ok := store.(io.Closer); ok {
				if err := closer.Close(); err != nil {
					log.Error("Failed to close collection store", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
