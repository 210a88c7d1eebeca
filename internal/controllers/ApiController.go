package controllers

import (
	"net/http"
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/rantstats/rantstats-extension/internal/models"
	"github.com/rantstats/rantstats-extension/internal/providers"
	"github.com/rantstats/rantstats-extension/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
	cache     providers.CacheProviderInterface
	streams   services.StreamServiceInterface
	directory services.DirectoryServiceInterface
	options   services.OptionsServiceInterface
	retention services.RetentionServiceInterface
	usage     services.UsageServiceInterface
	session   *services.SessionState
}

func NewApiController(
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
	cache providers.CacheProviderInterface,
	streams services.StreamServiceInterface,
	directory services.DirectoryServiceInterface,
	options services.OptionsServiceInterface,
	retention services.RetentionServiceInterface,
	usage services.UsageServiceInterface,
	session *services.SessionState,
) *ApiController {
	return &ApiController{
		logger:    logger,
		metrics:   metrics,
		cache:     cache,
		streams:   streams,
		directory: directory,
		options:   options,
		retention: retention,
		usage:     usage,
		session:   session,
	}
}

func videoID(r *http.Request) string {
	return r.URL.Query().Get("v")
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) writeJSON(w http.ResponseWriter, result any) {
	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return false
	}
	return true
}

// region Streams

func (ac *ApiController) GetStreams(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "streams", func() (any, error) {
		return ac.streams.GetAllStreams()
	})
}

func (ac *ApiController) GetStream(w http.ResponseWriter, r *http.Request) {
	v := videoID(r)
	ac.serveFromCacheOrCompute(w, "stream:"+v, func() (any, error) {
		return ac.streams.GetStream(v)
	})
}

func (ac *ApiController) GetVideoIDs(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "video-ids", func() (any, error) {
		return ac.streams.GetAllVideoIDs()
	})
}

// GetMessages returns the rant list for a video. Storage order is
// insertion order; an explicit ?sort= falls back to the session's last
// sort order.
func (ac *ApiController) GetMessages(w http.ResponseWriter, r *http.Request) {
	v := videoID(r)
	order := models.SortOrder(r.URL.Query().Get("sort"))
	if order == "" {
		order = ac.session.LastSortOrder()
	} else {
		ac.session.SetLastSortOrder(order)
	}
	ac.serveFromCacheOrCompute(w, "messages:"+v+":"+string(order), func() (any, error) {
		rants, err := ac.streams.GetAllCachedMessages(v)
		if err != nil {
			return nil, err
		}
		less := models.RantLess(order)
		sort.SliceStable(rants, func(i, j int) bool { return less(rants[i], rants[j]) })
		return rants, nil
	})
}

func (ac *ApiController) GetMessageIDs(w http.ResponseWriter, r *http.Request) {
	v := videoID(r)
	ac.serveFromCacheOrCompute(w, "message-ids:"+v, func() (any, error) {
		return ac.streams.GetAllCachedMessageIDs(v)
	})
}

func (ac *ApiController) CacheStream(w http.ResponseWriter, r *http.Request) {
	var update models.StreamUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	if update.VideoID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := ac.streams.CacheStream(&update); err != nil {
		ac.logger.Errorf(providers.TypePost, "cache stream %s: %s", update.VideoID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.metrics.IncRantsMerged(len(update.Rants))
	w.WriteHeader(http.StatusCreated)
}

func (ac *ApiController) CacheMessage(w http.ResponseWriter, r *http.Request) {
	v := videoID(r)
	if v == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	var rant models.RantUpdate
	if !decodeBody(w, r, &rant) {
		return
	}
	if err := ac.streams.CacheMessage(v, &rant); err != nil {
		ac.logger.Errorf(providers.TypePost, "cache message for %s: %s", v, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.metrics.IncRantsMerged(1)
	w.WriteHeader(http.StatusCreated)
}

func (ac *ApiController) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	v := videoID(r)
	m := r.URL.Query().Get("m")
	if v == "" || m == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	var update models.RantUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	if err := ac.streams.UpdateCachedMessage(v, m, &update); err != nil {
		ac.logger.Errorf(providers.TypePost, "update message %s in %s: %s", m, v, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (ac *ApiController) RemoveStream(w http.ResponseWriter, r *http.Request) {
	v := videoID(r)
	if v == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := ac.streams.RemoveStream(v); err != nil {
		ac.logger.Errorf(providers.TypePost, "remove stream %s: %s", v, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// endregion Streams

// region Options

func (ac *ApiController) GetOptions(w http.ResponseWriter, r *http.Request) {
	options, err := ac.options.GetOptions()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.writeJSON(w, options)
}

func (ac *ApiController) UpdateOptions(w http.ResponseWriter, r *http.Request) {
	var update models.OptionsUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	options, err := ac.options.UpdateOptions(&update)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.applyOptionsToSession(options)
	ac.writeJSON(w, options)
}

// applyOptionsToSession pushes the merged options into the live session
// state so open views pick them up without re-reading storage.
func (ac *ApiController) applyOptionsToSession(options models.Options) {
	ac.session.SetLastSortOrder(options.SortOrder)
	words := strings.Split(options.CustomMutedWords, "\n")
	runCheck := options.MuteInChat || options.MuteInRantStats
	ac.session.SetMutedWords(runCheck, words, options.MuteInChat, options.MuteInRantStats)
}

func (ac *ApiController) GetWidth(w http.ResponseWriter, r *http.Request) {
	width, err := ac.options.GetLastWidth()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.writeJSON(w, width)
}

func (ac *ApiController) SetWidth(w http.ResponseWriter, r *http.Request) {
	var width int
	if !decodeBody(w, r, &width) {
		return
	}
	if err := ac.options.SetLastWidth(width); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// endregion Options

// region Directory

func (ac *ApiController) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := ac.directory.GetUsers()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.writeJSON(w, users)
}

func (ac *ApiController) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := ac.directory.GetUser(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.writeJSON(w, user)
}

func (ac *ApiController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	var update models.UserUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	if err := ac.directory.UpdateUser(id, &update); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (ac *ApiController) ParseUsers(w http.ResponseWriter, r *http.Request) {
	var users []*models.ChatUser
	if !decodeBody(w, r, &users) {
		return
	}
	badges, err := ac.directory.ParseUsers(users)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.writeJSON(w, badges)
}

func (ac *ApiController) GetBadges(w http.ResponseWriter, r *http.Request) {
	badges, err := ac.directory.GetBadges()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.writeJSON(w, badges)
}

func (ac *ApiController) GetBadge(w http.ResponseWriter, r *http.Request) {
	badge, err := ac.directory.GetBadge(r.URL.Query().Get("name"))
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.writeJSON(w, badge)
}

func (ac *ApiController) SaveBadges(w http.ResponseWriter, r *http.Request) {
	var badges []*models.CacheBadge
	if !decodeBody(w, r, &badges) {
		return
	}
	if err := ac.directory.SaveBadges(badges); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// endregion Directory

// region Levels

func (ac *ApiController) GetLevels(w http.ResponseWriter, r *http.Request) {
	ac.writeJSON(w, ac.session.RantLevels())
}

// SaveLevels installs the rant tier cutoffs delivered by the host chat
// config for this session.
func (ac *ApiController) SaveLevels(w http.ResponseWriter, r *http.Request) {
	var levels []*models.RantLevel
	if !decodeBody(w, r, &levels) {
		return
	}
	ac.session.SetRantLevels(levels)
	w.WriteHeader(http.StatusOK)
}

// endregion Levels

func (ac *ApiController) GetUsage(w http.ResponseWriter, r *http.Request) {
	ac.writeJSON(w, ac.usage.GetUsage())
}

func (ac *ApiController) CleanHistory(w http.ResponseWriter, r *http.Request) {
	removed, err := ac.retention.CleanHistory()
	if err != nil {
		ac.logger.Errorf(providers.TypePost, "clean history: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.metrics.IncStreamsRemoved(removed)
	ac.writeJSON(w, map[string]int{"removed": removed})
}
