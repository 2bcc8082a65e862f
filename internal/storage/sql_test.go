package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DocumentStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestDocumentStore_GetMissingKey(t *testing.T) {
	s := openTestDB(t)

	var doc testDoc
	found, err := s.Get("absent", &doc)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestDocumentStore_SetGetRoundTrip(t *testing.T) {
	s := openTestDB(t)

	require.NoError(t, s.Set("doc", testDoc{Name: "streak", Count: 7}))

	var doc testDoc
	found, err := s.Get("doc", &doc)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, testDoc{Name: "streak", Count: 7}, doc)
}

func TestDocumentStore_SetOverwrites(t *testing.T) {
	s := openTestDB(t)

	require.NoError(t, s.Set("doc", testDoc{Count: 1}))
	require.NoError(t, s.Set("doc", testDoc{Count: 2}))

	var doc testDoc
	_, err := s.Get("doc", &doc)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Count)
}

func TestDocumentStore_Delete(t *testing.T) {
	s := openTestDB(t)

	require.NoError(t, s.Set("doc", testDoc{Count: 1}))
	require.NoError(t, s.Delete("doc"))

	var doc testDoc
	found, err := s.Get("doc", &doc)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is not an error
	assert.NoError(t, s.Delete("doc"))
}

func TestIsQuotaError(t *testing.T) {
	assert.True(t, IsQuotaError(errors.New("database or disk is full")))
	assert.True(t, IsQuotaError(errors.New("sqlite: disk full")))
	assert.False(t, IsQuotaError(errors.New("syntax error")))
	assert.False(t, IsQuotaError(nil))
}
