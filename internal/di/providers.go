package di

import (
	"github.com/rantstats/rantstats-extension/internal/providers"
	"github.com/rantstats/rantstats-extension/internal/services"
	"github.com/rantstats/rantstats-extension/internal/storage"
	"github.com/rantstats/rantstats-extension/internal/storage/interfaces"
)

// Narrow interface adapters so wire can hand domain services to the
// components that only need a slice of them.

func provideHistoryCleaner(rs services.RetentionServiceInterface) interfaces.HistoryCleaner {
	return rs
}

func provideStreamCounter(ss services.StreamServiceInterface) providers.StreamCounterInterface {
	return ss
}

func provideUsageSource(a storage.AdapterInterface) providers.UsageSourceInterface {
	return a
}
