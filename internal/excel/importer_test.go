package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportWords_CSV(t *testing.T) {
	path := writeCSV(t, "word,translation,romanization,category,difficulty\n"+
		"ahoj,xin chào,sin chào,greetings,1\n"+
		"škola,trường học,,basics,2\n")

	config := DefaultImportConfig()
	config.FilePath = path
	result, err := ImportWords(config)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalProcessed)
	require.Len(t, result.Words, 2)
	assert.Equal(t, "ahoj", result.Words[0].Word)
	assert.Equal(t, "xin chào", result.Words[0].Translation)
	assert.Equal(t, "sin chào", result.Words[0].Romanization)
	assert.Equal(t, 1, result.Words[0].Difficulty)
	assert.Equal(t, 2, result.Words[1].Difficulty)
	assert.Empty(t, result.Errors)
}

func TestImportWords_SkipsIncompleteRows(t *testing.T) {
	path := writeCSV(t, "word,translation\n"+
		"ahoj,xin chào\n"+
		"osamocené,\n"+
		",không\n")

	config := DefaultImportConfig()
	config.FilePath = path
	result, err := ImportWords(config)

	require.NoError(t, err)
	assert.Len(t, result.Words, 1)
	assert.Equal(t, 2, result.Skipped)
}

func TestImportWords_DifficultyDefaultsAndClamps(t *testing.T) {
	path := writeCSV(t, "word,translation,rom,cat,diff\n"+
		"jedna,một,,numbers,\n"+
		"dva,hai,,numbers,9\n"+
		"tři,ba,,numbers,abc\n")

	config := DefaultImportConfig()
	config.FilePath = path
	result, err := ImportWords(config)

	require.NoError(t, err)
	require.Len(t, result.Words, 3)
	assert.Equal(t, 1, result.Words[0].Difficulty)
	assert.Equal(t, 3, result.Words[1].Difficulty)
	assert.Equal(t, 1, result.Words[2].Difficulty)
}

func TestImportWords_MissingFile(t *testing.T) {
	config := DefaultImportConfig()
	config.FilePath = filepath.Join(t.TempDir(), "absent.csv")

	_, err := ImportWords(config)
	assert.Error(t, err)
}
