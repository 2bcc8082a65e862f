package session

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vocabtrainer/internal/progress"
	"github.com/example/vocabtrainer/internal/scheduler"
	"github.com/example/vocabtrainer/internal/skill"
	"github.com/example/vocabtrainer/internal/storage"
	"github.com/example/vocabtrainer/pkg/models"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

const testPair = "cs-vi"

func testCatalog(n int) []models.Word {
	words := make([]models.Word, n)
	for i := range words {
		words[i] = models.Word{ID: i + 1, Word: "slovo", Translation: "từ", Difficulty: 1}
	}
	return words
}

func testManager(t *testing.T) (*Manager, *progress.Store) {
	t.Helper()
	store, err := progress.Open(storage.NewMemoryStore(), testNow)
	require.NoError(t, err)
	builder := scheduler.NewBuilderWithRand(rand.New(rand.NewSource(1)))
	return NewManager(store, builder), store
}

func TestStart_EmptyCatalog(t *testing.T) {
	m, _ := testManager(t)

	err := m.Start(nil, testPair, 3, testNow)

	assert.ErrorIs(t, err, ErrNoCards)
	assert.False(t, m.Active())
}

func TestStart_BuildsRequestedSize(t *testing.T) {
	m, _ := testManager(t)

	require.NoError(t, m.Start(testCatalog(10), testPair, 3, testNow))

	_, total := m.Position()
	assert.Equal(t, 3, total)
	assert.True(t, m.Active())
}

func TestSubmitAndComplete(t *testing.T) {
	m, store := testManager(t)
	require.NoError(t, m.Start(testCatalog(10), testPair, 3, testNow))

	for m.Active() {
		_, err := m.Submit(true, testNow)
		require.NoError(t, err)
		if !m.Advance() {
			break
		}
	}
	summary := m.Complete(testNow.Add(5 * time.Minute))

	assert.Equal(t, 3, summary.Words)
	assert.Equal(t, 100.0, summary.Accuracy)
	assert.Equal(t, "12:05", summary.Time)
	assert.False(t, m.Active())
	assert.Len(t, store.Data().DailyProgress.Sessions, 1)
	assert.InDelta(t, 5.0, store.Data().DailyProgress.TimeSpent, 1e-9)
	assert.Equal(t, 3, store.Data().DailyProgress.New)
}

func TestSubmit_PastEnd(t *testing.T) {
	m, _ := testManager(t)
	require.NoError(t, m.Start(testCatalog(3), testPair, 1, testNow))

	_, err := m.Submit(true, testNow)
	require.NoError(t, err)
	m.Advance()

	_, err = m.Submit(true, testNow)
	assert.ErrorIs(t, err, ErrSessionDone)
}

func TestTier_DefaultsToBeginnerForNewCards(t *testing.T) {
	m, _ := testManager(t)
	require.NoError(t, m.Start(testCatalog(3), testPair, 1, testNow))

	assert.Equal(t, skill.Beginner, m.Tier())
}

func TestOverrideTier_ClearedOnAdvance(t *testing.T) {
	m, _ := testManager(t)
	require.NoError(t, m.Start(testCatalog(5), testPair, 3, testNow))

	m.OverrideTier(skill.Advanced)
	assert.Equal(t, skill.Advanced, m.Tier())

	_, err := m.Submit(true, testNow)
	require.NoError(t, err)
	require.True(t, m.Advance())

	assert.Equal(t, skill.Beginner, m.Tier())
}

func TestPauseAndResume(t *testing.T) {
	m, store := testManager(t)
	require.NoError(t, m.Start(testCatalog(5), testPair, 3, testNow))

	_, err := m.Submit(true, testNow)
	require.NoError(t, err)
	require.True(t, m.Advance())

	snapshot := m.Pause(testNow.Add(2 * time.Minute))
	require.NotNil(t, snapshot)
	assert.Equal(t, 1, snapshot.CurrentIndex)
	assert.Equal(t, 1, snapshot.Stats.Total)
	assert.Equal(t, testPair, snapshot.LanguagePair)
	assert.False(t, m.Active())
	assert.InDelta(t, 2.0, store.Data().DailyProgress.TimeSpent, 1e-9)

	later := testNow.Add(3 * time.Hour)
	require.NoError(t, m.Resume(snapshot, later))
	assert.True(t, m.Active())
	pos, total := m.Position()
	assert.Equal(t, 1, pos)
	assert.Equal(t, 3, total)
	assert.Equal(t, later, m.Stats().StartTime)
	assert.Equal(t, 1, m.Stats().Total)
}

func TestResume_NilSnapshot(t *testing.T) {
	m, _ := testManager(t)

	assert.ErrorIs(t, m.Resume(nil, testNow), ErrNoCards)
}

func TestComplete_AdjustsGoalsAfterTwoStrongSessions(t *testing.T) {
	m, store := testManager(t)
	before := store.Goal()

	// Enough due reviews and fresh cards to meet both goals
	catalog := testCatalog(before.New + before.Review + 5)
	past := testNow.AddDate(0, 0, -5)
	for id := 1; id <= before.Review; id++ {
		p := models.NewCardProgress(id, int(skill.Beginner), past)
		p.NextReview = past
		store.Data().SetCard(testPair, p)
	}

	runPerfectSession := func(size int, start time.Time) {
		require.NoError(t, m.Start(catalog, testPair, size, start))
		for m.Active() {
			_, err := m.Submit(true, start)
			require.NoError(t, err)
			if !m.Advance() {
				break
			}
		}
		m.Complete(start.Add(4 * time.Minute))
	}

	runPerfectSession(before.New+before.Review, testNow)
	require.Equal(t, before.New, store.Data().DailyProgress.New)
	require.Equal(t, before.Review, store.Data().DailyProgress.Review)

	runPerfectSession(2, testNow.Add(10*time.Minute))

	after := store.Goal()
	assert.Equal(t, before.New+1, after.New)
	assert.Equal(t, before.Review+1, after.Review)
}
