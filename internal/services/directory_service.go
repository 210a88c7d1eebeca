package services

import (
	"sync"

	"github.com/rantstats/rantstats-extension/internal/models"
	"github.com/rantstats/rantstats-extension/internal/storage"
)

type DirectoryServiceInterface interface {
	GetUsers() ([]*models.CacheUser, error)
	GetUser(userID string) (*models.CacheUser, error)
	UpdateUser(userID string, update *models.UserUpdate) error
	ParseUsers(users []*models.ChatUser) (map[string][]string, error)
	GetBadges() (map[string]*models.CacheBadge, error)
	GetBadge(name string) (*models.CacheBadge, error)
	SaveBadges(badges []*models.CacheBadge) error
}

// DirectoryService owns the flat users and badges records. Both are stored
// as single lists, not one key per entry; linear scans are fine at the
// hundreds-of-users-per-session scale this sees.
type DirectoryService struct {
	mu      sync.Mutex
	adapter storage.AdapterInterface
}

func NewDirectoryService(adapter storage.AdapterInterface) DirectoryServiceInterface {
	return &DirectoryService{adapter: adapter}
}

func (ds *DirectoryService) GetUsers() ([]*models.CacheUser, error) {
	users := make([]*models.CacheUser, 0)
	_, err := ds.adapter.GetRecord(keyUsers, &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (ds *DirectoryService) GetUser(userID string) (*models.CacheUser, error) {
	users, err := ds.GetUsers()
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, nil
}

// UpdateUser merges the update into the stored user, or appends a new entry
// when the id is unknown. Only fields the update carries overwrite stored
// values (merge by the incoming partial's keys, not the stored record's).
func (ds *DirectoryService) UpdateUser(userID string, update *models.UserUpdate) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	users, err := ds.GetUsers()
	if err != nil {
		return err
	}
	var matching *models.CacheUser
	for _, user := range users {
		if user.ID == userID {
			matching = user
			break
		}
	}
	if matching == nil {
		user := &models.CacheUser{ID: userID}
		user.Apply(update)
		users = append(users, user)
	} else {
		matching.Apply(update)
	}
	return ds.adapter.Set(keyUsers, users)
}

// ParseUsers ingests user events from the chat stream. Users are only
// persisted when they carry a profile image, since recalling the image
// across reloads is the only reason to cache them. Returns the id-to-badges
// map for the caller's rendering of the batch.
func (ds *DirectoryService) ParseUsers(users []*models.ChatUser) (map[string][]string, error) {
	badges := make(map[string][]string)
	for _, user := range users {
		if user.Image != "" {
			update := &models.UserUpdate{
				Username: &user.Username,
				Image:    &user.Image,
			}
			if err := ds.UpdateUser(user.ID, update); err != nil {
				return nil, err
			}
		}
		if user.Badges != nil {
			badges[user.ID] = user.Badges
		}
	}
	return badges, nil
}

// GetBadges indexes the stored badge list by name at read time.
func (ds *DirectoryService) GetBadges() (map[string]*models.CacheBadge, error) {
	badges := make([]*models.CacheBadge, 0)
	_, err := ds.adapter.GetRecord(keyBadges, &badges)
	if err != nil {
		return nil, err
	}
	badgeMap := make(map[string]*models.CacheBadge, len(badges))
	for _, badge := range badges {
		badgeMap[badge.Name] = badge
	}
	return badgeMap, nil
}

func (ds *DirectoryService) GetBadge(name string) (*models.CacheBadge, error) {
	badges, err := ds.GetBadges()
	if err != nil {
		return nil, err
	}
	return badges[name], nil
}

// SaveBadges replaces the entire stored badge list. Definitions come
// wholesale from the host config each session, there is nothing to merge.
func (ds *DirectoryService) SaveBadges(badges []*models.CacheBadge) error {
	return ds.adapter.Set(keyBadges, badges)
}
