package services

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/rantstats/rantstats-extension/internal/models"
)

// fallbackRantLevels is the hardcoded ladder of rant tiers in US dollars,
// used until the host config delivers real level data.
var fallbackRantLevels = []int{1, 2, 5, 10, 20, 50, 100, 200, 300, 400, 500}

// SessionState holds the per-session view state that used to live in
// ambient globals: the active sort order, the rant level cutoffs, the set
// of already-displayed message ids and the muted-word matcher. It is
// created at startup and Reset when the consuming view closes.
type SessionState struct {
	mu            sync.RWMutex
	lastSortOrder models.SortOrder
	rantLevels    []int
	displayed     map[string]struct{}

	mutedWordRe     *regexp.Regexp
	muteInChat      bool
	muteInRantStats bool
}

func NewSessionState() *SessionState {
	s := &SessionState{}
	s.Reset()
	return s
}

// Reset returns the session to its initial state.
func (s *SessionState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSortOrder = models.SortNewToOld
	s.rantLevels = fallbackRantLevels
	s.displayed = make(map[string]struct{})
	s.mutedWordRe = nil
	s.muteInChat = true
	s.muteInRantStats = true
}

func (s *SessionState) LastSortOrder() models.SortOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSortOrder
}

func (s *SessionState) SetLastSortOrder(order models.SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSortOrder = order
}

// SetRantLevels installs the level cutoffs from the host config. Empty
// input falls back to the hardcoded ladder.
func (s *SessionState) SetRantLevels(levels []*models.RantLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(levels) == 0 {
		s.rantLevels = fallbackRantLevels
		return
	}
	values := make([]int, 0, len(levels))
	for _, level := range levels {
		values = append(values, level.PriceDollars)
	}
	sort.Ints(values)
	s.rantLevels = values
}

func (s *SessionState) RantLevels() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rantLevels
}

// LevelFor returns the highest level cutoff the amount reaches, or 0 for
// amounts below every cutoff.
func (s *SessionState) LevelFor(priceCents int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dollars := priceCents / 100
	level := 0
	for _, cutoff := range s.rantLevels {
		if cutoff > dollars {
			break
		}
		level = cutoff
	}
	return level
}

// MarkDisplayed records a message id as rendered. Reports whether the id
// was new.
func (s *SessionState) MarkDisplayed(messageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.displayed[messageID]; seen {
		return false
	}
	s.displayed[messageID] = struct{}{}
	return true
}

// SetMutedWords compiles the muted word list into a single case-insensitive
// word-boundary matcher. Blank lines and '#' comments are dropped, text
// after an inline '#' is trimmed. With runCheck false or no usable words
// the matcher is disabled.
func (s *SessionState) SetMutedWords(runCheck bool, words []string, muteInChat, muteInRantStats bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mutedWordRe = nil
	s.muteInChat = muteInChat
	s.muteInRantStats = muteInRantStats
	if !runCheck {
		return
	}

	clean := make([]string, 0, len(words))
	seen := make(map[string]struct{})
	for _, word := range words {
		if strings.TrimSpace(word) == "" || strings.HasPrefix(strings.TrimLeft(word, " \t"), "#") {
			continue
		}
		if idx := strings.Index(word, "#"); idx >= 0 {
			word = strings.TrimSpace(word[:idx])
		}
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		clean = append(clean, regexp.QuoteMeta(word))
	}
	if len(clean) == 0 {
		return
	}

	re, err := regexp.Compile(`(?i)\b(` + strings.Join(clean, "|") + `)\b`)
	if err != nil {
		return
	}
	s.mutedWordRe = re
}

func (s *SessionState) matches(text string) bool {
	if s.mutedWordRe == nil {
		return false
	}
	return s.mutedWordRe.MatchString(text)
}

// MutedInChat reports whether the text hits a muted word and chat muting is
// active.
func (s *SessionState) MutedInChat(text string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.muteInChat && s.matches(text)
}

// MutedInRantStats reports whether the text hits a muted word and sidebar
// muting is active.
func (s *SessionState) MutedInRantStats(text string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.muteInRantStats && s.matches(text)
}
