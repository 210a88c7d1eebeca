package services

import (
	"sync"

	"github.com/rantstats/rantstats-extension/internal/models"
	"github.com/rantstats/rantstats-extension/internal/storage"
)

const defaultSidebarWidth = 400

type OptionsServiceInterface interface {
	GetOptions() (models.Options, error)
	UpdateOptions(update *models.OptionsUpdate) (models.Options, error)
	GetSortOrder() (models.SortOrder, error)
	GetTheme() (models.Theme, error)
	GetHistoryDays() (int, error)
	GetLastWidth() (int, error)
	SetLastWidth(width int) error
}

type OptionsService struct {
	mu      sync.Mutex
	adapter storage.AdapterInterface
}

func NewOptionsService(adapter storage.AdapterInterface) OptionsServiceInterface {
	return &OptionsService{adapter: adapter}
}

// GetOptions returns the stored options, or the typed defaults when nothing
// has been saved yet. Defaults are not written back; the record is only
// created by the first UpdateOptions.
func (os *OptionsService) GetOptions() (models.Options, error) {
	options := models.DefaultOptions()
	_, err := os.adapter.GetRecord(keyOptions, &options)
	if err != nil {
		return models.Options{}, err
	}
	return options, nil
}

// UpdateOptions merges the update into the current options: present keys
// overwrite, absent keys are retained. Returns the merged record.
func (os *OptionsService) UpdateOptions(update *models.OptionsUpdate) (models.Options, error) {
	os.mu.Lock()
	defer os.mu.Unlock()

	options, err := os.GetOptions()
	if err != nil {
		return models.Options{}, err
	}
	options.Apply(update)
	if err := os.adapter.Set(keyOptions, options); err != nil {
		return models.Options{}, err
	}
	return options, nil
}

func (os *OptionsService) GetSortOrder() (models.SortOrder, error) {
	options, err := os.GetOptions()
	if err != nil {
		return "", err
	}
	return options.SortOrder, nil
}

func (os *OptionsService) GetTheme() (models.Theme, error) {
	options, err := os.GetOptions()
	if err != nil {
		return "", err
	}
	return options.Theme, nil
}

func (os *OptionsService) GetHistoryDays() (int, error) {
	options, err := os.GetOptions()
	if err != nil {
		return 0, err
	}
	return options.HistoryDays, nil
}

func (os *OptionsService) GetLastWidth() (int, error) {
	width := defaultSidebarWidth
	_, err := os.adapter.GetRecord(keyWidth, &width)
	if err != nil {
		return 0, err
	}
	return width, nil
}

func (os *OptionsService) SetLastWidth(width int) error {
	return os.adapter.Set(keyWidth, width)
}
