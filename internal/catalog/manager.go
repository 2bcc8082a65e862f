package catalog

import (
	"fmt"
	"sync"
	"time"

	"github.com/example/vocabtrainer/internal/storage"
	"github.com/example/vocabtrainer/pkg/models"
)

// DuplicateStrategy chooses what happens when an imported word matches
// an existing user word by its term.
type DuplicateStrategy int

const (
	// DuplicateSkip keeps the existing entry and drops the incoming one.
	DuplicateSkip DuplicateStrategy = iota
	// DuplicateReplace overwrites the existing entry with the incoming one.
	DuplicateReplace
	// DuplicateMerge keeps the existing entry and records the incoming
	// translation as an alternate.
	DuplicateMerge
)

// userIDBase keeps generated ids clear of the builtin vocabulary range.
const userIDBase = 1000

// ImportSummary reports what an import actually did.
type ImportSummary struct {
	Added    int
	Replaced int
	Merged   int
	Skipped  int
}

// Manager maintains user-owned vocabulary on top of the builtin and
// downloaded word lists. User entries override builtin ones by id.
// The reminder goroutine reads the combined view while the console
// mutates it, so all access to the user maps goes through mu.
type Manager struct {
	kv     storage.Store
	loader *Loader

	mu    sync.RWMutex
	user  map[string][]models.Word
	files []models.FileRecord
}

// NewManager loads persisted user vocabulary and file records from kv.
func NewManager(kv storage.Store, loader *Loader) (*Manager, error) {
	m := &Manager{
		kv:     kv,
		loader: loader,
		user:   make(map[string][]models.Word),
	}
	if _, err := kv.Get(storage.KeyUserVocabulary, &m.user); err != nil {
		return nil, fmt.Errorf("failed to load user vocabulary: %v", err)
	}
	if m.user == nil {
		m.user = make(map[string][]models.Word)
	}
	if _, err := kv.Get(storage.KeyVocabularyFiles, &m.files); err != nil {
		return nil, fmt.Errorf("failed to load vocabulary file records: %v", err)
	}
	return m, nil
}

// Words returns the combined vocabulary for a language pair. Builtin
// words come from the loader (cache, network or fallback); user words
// are appended, and a user word whose id collides with a builtin one
// replaces it.
func (m *Manager) Words(pair string, now time.Time) []models.Word {
	builtin := m.loader.Load(pair, false, now)

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.combine(builtin, m.user[pair])
}

// Refresh bypasses the cache and re-downloads the builtin vocabulary,
// returning the refreshed combined view.
func (m *Manager) Refresh(pair string, now time.Time) []models.Word {
	builtin := m.loader.Load(pair, true, now)

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.combine(builtin, m.user[pair])
}

func (m *Manager) combine(builtin, user []models.Word) []models.Word {
	overridden := make(map[int]int, len(user))
	for _, w := range user {
		overridden[w.ID] = 1
	}
	out := make([]models.Word, 0, len(builtin)+len(user))
	for _, w := range builtin {
		if overridden[w.ID] == 0 {
			out = append(out, w)
		}
	}
	return append(out, user...)
}

// UserWords returns only the user-owned entries for a pair.
func (m *Manager) UserWords(pair string) []models.Word {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Word(nil), m.user[pair]...)
}

// AddWord appends a single user word, assigning it a fresh id.
func (m *Manager) AddWord(pair string, w models.Word, now time.Time) (models.Word, error) {
	builtin := m.loader.Load(pair, false, now)

	m.mu.Lock()
	defer m.mu.Unlock()
	w.ID = m.nextID(pair, builtin)
	m.user[pair] = append(m.user[pair], w)
	if err := m.save(); err != nil {
		return models.Word{}, err
	}
	return w, nil
}

// RemoveUserWord deletes a user word by id. Builtin words cannot be
// removed, only shadowed.
func (m *Manager) RemoveUserWord(pair string, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	words := m.user[pair]
	for i, w := range words {
		if w.ID == id {
			m.user[pair] = append(words[:i], words[i+1:]...)
			if err := m.save(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// ImportWords merges a batch of words into the user vocabulary for a
// pair, resolving duplicates (matched by term) per strategy.
func (m *Manager) ImportWords(pair string, words []models.Word, strategy DuplicateStrategy, now time.Time) (ImportSummary, error) {
	builtin := m.loader.Load(pair, false, now)

	m.mu.Lock()
	defer m.mu.Unlock()

	var summary ImportSummary
	existing := m.user[pair]
	byWord := make(map[string]int, len(existing))
	for i, w := range existing {
		byWord[w.Word] = i
	}

	for _, w := range words {
		idx, dup := byWord[w.Word]
		if !dup {
			w.ID = m.nextID(pair, builtin)
			existing = append(existing, w)
			m.user[pair] = existing
			byWord[w.Word] = len(existing) - 1
			summary.Added++
			continue
		}
		switch strategy {
		case DuplicateReplace:
			w.ID = existing[idx].ID
			existing[idx] = w
			summary.Replaced++
		case DuplicateMerge:
			cur := &existing[idx]
			if w.Translation != cur.Translation && !contains(cur.Alternates, w.Translation) {
				cur.Alternates = append(cur.Alternates, w.Translation)
				summary.Merged++
			} else {
				summary.Skipped++
			}
		default:
			summary.Skipped++
		}
	}

	m.user[pair] = existing
	if err := m.save(); err != nil {
		return ImportSummary{}, err
	}
	return summary, nil
}

// RecordFile remembers an imported file so the user can review what
// was loaded and when.
func (m *Manager) RecordFile(rec models.FileRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files = append(m.files, rec)
	if err := m.kv.Set(storage.KeyVocabularyFiles, m.files); err != nil {
		return fmt.Errorf("failed to save vocabulary file records: %v", err)
	}
	return nil
}

// Files lists the recorded imports, newest last.
func (m *Manager) Files() []models.FileRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.FileRecord(nil), m.files...)
}

// nextID picks an id above both the user range base and every id
// already visible for the pair, builtin words included.
// Callers hold mu.
func (m *Manager) nextID(pair string, builtin []models.Word) int {
	max := userIDBase
	for _, w := range builtin {
		if w.ID > max {
			max = w.ID
		}
	}
	for _, w := range m.user[pair] {
		if w.ID > max {
			max = w.ID
		}
	}
	return max + 1
}

// save persists the user vocabulary. Callers hold mu.
func (m *Manager) save() error {
	if err := m.kv.Set(storage.KeyUserVocabulary, m.user); err != nil {
		return fmt.Errorf("failed to save user vocabulary: %v", err)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
