package interfaces

type SchedulerInterface interface {
	Init()
	Stop()
	Restore() error
	Persist() error
}

// HistoryCleaner is the retention sweep entry point the scheduler drives.
// CleanHistory reports how many stream records it removed.
type HistoryCleaner interface {
	CleanHistory() (int, error)
}
