package storage

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"github.com/rantstats/rantstats-extension/internal/providers"
	"github.com/rantstats/rantstats-extension/internal/storage/interfaces"
	"github.com/rantstats/rantstats-extension/internal/structures"
)

// Scheduler drives the periodic retention sweep and, when write-through is
// disabled, the periodic snapshot flush.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	adapter AdapterInterface
	cleaner interfaces.HistoryCleaner
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func NewScheduler(conf *structures.Config, adapter AdapterInterface, cleaner interfaces.HistoryCleaner, metrics providers.MetricsProviderInterface, logger providers.Logger) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  conf,
		logger:  logger,
		metrics: metrics,
		adapter: adapter,
		cleaner: cleaner,
	}
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Retention.SweepInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		s.logger.Infof(providers.TypeApp, "Running retention sweep...")
		start := time.Now()
		removed, err := s.cleaner.CleanHistory()
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Retention sweep failed: %s", err)
			return
		}
		s.metrics.ObserveSweepDuration(time.Since(start))
		s.metrics.IncStreamsRemoved(removed)
		s.logger.Infof(providers.TypeApp, "Retention sweep removed %d stream(s)", removed)
	})

	if !s.config.Storage.SyncWrites && s.config.Storage.FlushInterval > 0 {
		s.cron.AddFunc(gron.Every(s.config.Storage.FlushInterval), func() {
			s.opsMu.Lock()
			defer s.opsMu.Unlock()

			start := time.Now()
			if err := s.adapter.Flush(); err != nil {
				s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
				return
			}
			s.metrics.ObservePersistenceDuration(time.Since(start))
		})
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	return s.adapter.Load()
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()
	return s.adapter.Flush()
}
