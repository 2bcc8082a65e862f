// Package catalog manages the learnable vocabulary: the built-in library
// fetched from the remote index (with a bundled fallback), user-added
// words, and the combined per-pair view the scheduler studies from.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/example/vocabtrainer/internal/storage"
	"github.com/example/vocabtrainer/pkg/models"
)

// DefaultLibraryURL is the root of the published vocabulary library
const DefaultLibraryURL = "https://raw.githubusercontent.com/daniel-klesc/language-learning-app-vocabulary/main"

// cacheTTL is how long a fetched vocabulary file is reused
const cacheTTL = 24 * time.Hour

type cacheEntry struct {
	Timestamp time.Time     `json:"timestamp"`
	Words     []models.Word `json:"words"`
}

// Loader fetches vocabulary for a language pair, caching results in the
// key-value store and falling back to the bundled data on any failure
type Loader struct {
	client  *http.Client
	kv      storage.Store
	baseURL string
}

// NewLoader creates a loader. baseURL empty means the configured or
// default library URL.
func NewLoader(kv storage.Store, baseURL string) *Loader {
	if baseURL == "" {
		baseURL = os.Getenv("VOCABULARY_LIBRARY_URL")
	}
	if baseURL == "" {
		baseURL = DefaultLibraryURL
	}
	return &Loader{
		client:  &http.Client{},
		kv:      kv,
		baseURL: baseURL,
	}
}

// Load returns the built-in vocabulary for a language pair. A cached
// result younger than 24 hours is reused unless force is set. Fetch or
// parse failures silently fall back to the bundled dataset; loading
// never fails.
func (l *Loader) Load(languagePair string, force bool, now time.Time) []models.Word {
	cacheKey := storage.CachePrefix + languagePair

	if !force {
		var cached cacheEntry
		found, err := l.kv.Get(cacheKey, &cached)
		if err == nil && found && now.Sub(cached.Timestamp) < cacheTTL {
			return cached.Words
		}
	}

	words, err := l.fetch(languagePair)
	if err != nil {
		log.Printf("Failed to fetch vocabulary for %s, using bundled data: %v", languagePair, err)
		return append([]models.Word(nil), Fallback[languagePair]...)
	}

	if err := l.kv.Set(cacheKey, cacheEntry{Timestamp: now, Words: words}); err != nil {
		log.Printf("Failed to cache vocabulary for %s: %v", languagePair, err)
	}
	return words
}

func (l *Loader) fetch(languagePair string) ([]models.Word, error) {
	url := fmt.Sprintf("%s/%s/core.json", l.baseURL, languagePair)
	resp, err := l.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	// Accept either the file format or a bare word array
	var file models.VocabularyFile
	if err := json.Unmarshal(body, &file); err == nil && file.Words != nil {
		return file.Words, nil
	}
	var words []models.Word
	if err := json.Unmarshal(body, &words); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %v", err)
	}
	return words, nil
}
