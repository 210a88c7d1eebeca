//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"github.com/rantstats/rantstats-extension/internal"
	"github.com/rantstats/rantstats-extension/internal/controllers"
	"github.com/rantstats/rantstats-extension/internal/providers"
	"github.com/rantstats/rantstats-extension/internal/services"
	"github.com/rantstats/rantstats-extension/internal/storage"
	"github.com/rantstats/rantstats-extension/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewClock,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewZstdCompressor,
		storage.NewFileAdapter,
		storage.NewScheduler,

		services.NewStreamService,
		services.NewOptionsService,
		services.NewDirectoryService,
		services.NewRetentionService,
		services.NewUsageService,
		services.NewSessionState,

		provideHistoryCleaner,
		provideStreamCounter,
		provideUsageSource,

		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
