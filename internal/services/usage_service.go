package services

import (
	"github.com/rantstats/rantstats-extension/internal/models"
	"github.com/rantstats/rantstats-extension/internal/storage"
)

type UsageServiceInterface interface {
	GetUsage() models.Usage
}

// UsageService derives the quota usage report. Pure read-compute, no state.
type UsageService struct {
	adapter storage.AdapterInterface
}

func NewUsageService(adapter storage.AdapterInterface) UsageServiceInterface {
	return &UsageService{adapter: adapter}
}

func (us *UsageService) GetUsage() models.Usage {
	inUse := us.adapter.BytesInUse()
	total := us.adapter.QuotaBytes()
	return models.Usage{
		InUse:      inUse,
		Total:      total,
		Percentage: float64(inUse) / float64(total) * 100,
	}
}
