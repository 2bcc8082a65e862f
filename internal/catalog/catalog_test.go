package catalog

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vocabtrainer/internal/storage"
	"github.com/example/vocabtrainer/pkg/models"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

const testPair = "cs-vi"

func libraryServer(t *testing.T, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		if r.URL.Path != "/cs-vi/core.json" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"words":[{"id":1,"word":"ahoj","translation":"xin chào","category":"greetings","difficulty":1}]}`)
	}))
}

func TestLoader_FetchesAndCaches(t *testing.T) {
	hits := 0
	server := libraryServer(t, &hits)
	defer server.Close()

	kv := storage.NewMemoryStore()
	loader := NewLoader(kv, server.URL)

	words := loader.Load(testPair, false, testNow)
	require.Len(t, words, 1)
	assert.Equal(t, "ahoj", words[0].Word)
	assert.Equal(t, 1, hits)

	// A second load within the cache window never hits the network
	words = loader.Load(testPair, false, testNow.Add(time.Hour))
	assert.Len(t, words, 1)
	assert.Equal(t, 1, hits)
}

func TestLoader_CacheExpires(t *testing.T) {
	hits := 0
	server := libraryServer(t, &hits)
	defer server.Close()

	loader := NewLoader(storage.NewMemoryStore(), server.URL)
	loader.Load(testPair, false, testNow)
	loader.Load(testPair, false, testNow.Add(25*time.Hour))

	assert.Equal(t, 2, hits)
}

func TestLoader_ForceBypassesCache(t *testing.T) {
	hits := 0
	server := libraryServer(t, &hits)
	defer server.Close()

	loader := NewLoader(storage.NewMemoryStore(), server.URL)
	loader.Load(testPair, false, testNow)
	loader.Load(testPair, true, testNow)

	assert.Equal(t, 2, hits)
}

func TestLoader_FallsBackOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	loader := NewLoader(storage.NewMemoryStore(), server.URL)
	words := loader.Load(testPair, false, testNow)

	assert.Equal(t, Fallback[testPair], words)
}

func TestLoader_FallsBackWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	loader := NewLoader(storage.NewMemoryStore(), server.URL)
	words := loader.Load("vi-en", false, testNow)

	assert.Equal(t, Fallback["vi-en"], words)
}

func TestParseVocabularyFile_Valid(t *testing.T) {
	data := []byte(`{"metadata":{"language_pair":"vi-en"},"words":[{"id":1,"word":"nhà","translation":"house"}]}`)

	file, err := ParseVocabularyFile(data)

	require.NoError(t, err)
	assert.Equal(t, "vi-en", file.Metadata.LanguagePair)
	assert.Len(t, file.Words, 1)
}

func TestParseVocabularyFile_Rejections(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", `{{`},
		{"no words array", `{"metadata":{}}`},
		{"missing translation", `{"words":[{"word":"nhà"}]}`},
		{"missing word", `{"words":[{"translation":"house"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseVocabularyFile([]byte(tc.data))
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func offlineManager(t *testing.T) (*Manager, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	// An unreachable library forces the bundled fallback throughout
	loader := NewLoader(kv, "http://127.0.0.1:0")
	m, err := NewManager(kv, loader)
	require.NoError(t, err)
	return m, kv
}

func TestManager_AddWordAssignsHighID(t *testing.T) {
	m, _ := offlineManager(t)

	added, err := m.AddWord(testPair, models.Word{Word: "voda", Translation: "nước"}, testNow)
	require.NoError(t, err)
	assert.Greater(t, added.ID, 1000)

	second, err := m.AddWord(testPair, models.Word{Word: "čaj", Translation: "trà"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, added.ID+1, second.ID)
}

func TestManager_WordsCombinesBuiltinAndUser(t *testing.T) {
	m, _ := offlineManager(t)
	builtin := len(Fallback[testPair])

	_, err := m.AddWord(testPair, models.Word{Word: "voda", Translation: "nước"}, testNow)
	require.NoError(t, err)

	assert.Len(t, m.Words(testPair, testNow), builtin+1)
}

func TestManager_UserWordShadowsBuiltin(t *testing.T) {
	kv := storage.NewMemoryStore()
	shadowID := Fallback[testPair][0].ID
	require.NoError(t, kv.Set(storage.KeyUserVocabulary, map[string][]models.Word{
		testPair: {{ID: shadowID, Word: "ahoj", Translation: "chào bạn"}},
	}))
	m, err := NewManager(kv, NewLoader(kv, "http://127.0.0.1:0"))
	require.NoError(t, err)

	words := m.Words(testPair, testNow)

	assert.Len(t, words, len(Fallback[testPair]))
	var found int
	for _, w := range words {
		if w.ID == shadowID {
			found++
			assert.Equal(t, "chào bạn", w.Translation)
		}
	}
	assert.Equal(t, 1, found)
}

func TestManager_ImportSkipsDuplicates(t *testing.T) {
	m, _ := offlineManager(t)
	_, err := m.AddWord(testPair, models.Word{Word: "voda", Translation: "nước"}, testNow)
	require.NoError(t, err)

	summary, err := m.ImportWords(testPair, []models.Word{
		{Word: "voda", Translation: "nước uống"},
		{Word: "čaj", Translation: "trà"},
	}, DuplicateSkip, testNow)

	require.NoError(t, err)
	assert.Equal(t, ImportSummary{Added: 1, Skipped: 1}, summary)
	assert.Equal(t, "nước", m.UserWords(testPair)[0].Translation)
}

func TestManager_ImportReplacesDuplicates(t *testing.T) {
	m, _ := offlineManager(t)
	original, err := m.AddWord(testPair, models.Word{Word: "voda", Translation: "nước"}, testNow)
	require.NoError(t, err)

	summary, err := m.ImportWords(testPair, []models.Word{
		{Word: "voda", Translation: "nước uống"},
	}, DuplicateReplace, testNow)

	require.NoError(t, err)
	assert.Equal(t, ImportSummary{Replaced: 1}, summary)
	replaced := m.UserWords(testPair)[0]
	assert.Equal(t, "nước uống", replaced.Translation)
	// Replacement keeps the id so learning progress carries over
	assert.Equal(t, original.ID, replaced.ID)
}

func TestManager_ImportMergesAsAlternate(t *testing.T) {
	m, _ := offlineManager(t)
	_, err := m.AddWord(testPair, models.Word{Word: "voda", Translation: "nước"}, testNow)
	require.NoError(t, err)

	summary, err := m.ImportWords(testPair, []models.Word{
		{Word: "voda", Translation: "nước uống"},
	}, DuplicateMerge, testNow)

	require.NoError(t, err)
	assert.Equal(t, ImportSummary{Merged: 1}, summary)
	merged := m.UserWords(testPair)[0]
	assert.Equal(t, "nước", merged.Translation)
	assert.Equal(t, []string{"nước uống"}, merged.Alternates)

	// Merging the same translation again is a no-op
	summary, err = m.ImportWords(testPair, []models.Word{
		{Word: "voda", Translation: "nước uống"},
	}, DuplicateMerge, testNow)
	require.NoError(t, err)
	assert.Equal(t, ImportSummary{Skipped: 1}, summary)
	assert.Len(t, m.UserWords(testPair)[0].Alternates, 1)
}

func TestManager_RemoveUserWord(t *testing.T) {
	m, _ := offlineManager(t)
	added, err := m.AddWord(testPair, models.Word{Word: "voda", Translation: "nước"}, testNow)
	require.NoError(t, err)

	removed, err := m.RemoveUserWord(testPair, added.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, m.UserWords(testPair))

	removed, err = m.RemoveUserWord(testPair, added.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestManager_PersistsAcrossRestart(t *testing.T) {
	m, kv := offlineManager(t)
	_, err := m.AddWord(testPair, models.Word{Word: "voda", Translation: "nước"}, testNow)
	require.NoError(t, err)
	require.NoError(t, m.RecordFile(models.FileRecord{Name: "list.json", LanguagePair: testPair, WordCount: 1, ImportedAt: "2025-03-10 12:00"}))

	reloaded, err := NewManager(kv, NewLoader(kv, "http://127.0.0.1:0"))
	require.NoError(t, err)

	assert.Len(t, reloaded.UserWords(testPair), 1)
	require.Len(t, reloaded.Files(), 1)
	assert.Equal(t, "list.json", reloaded.Files()[0].Name)
}

func TestManager_ConcurrentReadersAndWriter(t *testing.T) {
	m, _ := offlineManager(t)

	// The reminder goroutine reads the combined view while the console
	// goroutine mutates the user vocabulary
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			m.Words(testPair, testNow)
			m.UserWords(testPair)
			m.Files()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, err := m.AddWord(testPair, models.Word{
				Word:        fmt.Sprintf("slovo%d", i),
				Translation: "từ",
			}, testNow)
			assert.NoError(t, err)
		}
		_, err := m.ImportWords(testPair, []models.Word{
			{Word: "slovo0", Translation: "chữ"},
		}, DuplicateMerge, testNow)
		assert.NoError(t, err)
		assert.NoError(t, m.RecordFile(models.FileRecord{Name: "list.json", LanguagePair: testPair}))
	}()
	wg.Wait()

	assert.Len(t, m.UserWords(testPair), 50)
}

func TestValidPair(t *testing.T) {
	assert.True(t, ValidPair("cs-vi"))
	assert.True(t, ValidPair("vi-zh"))
	assert.False(t, ValidPair("en-fr"))
}
