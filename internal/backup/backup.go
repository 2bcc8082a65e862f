package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/vocabtrainer/internal/storage"
	"github.com/example/vocabtrainer/pkg/models"
)

// ExportVersion identifies the archive format
const ExportVersion = "2.1.0"

// Archive is the portable snapshot of all persisted user data
type Archive struct {
	Version         string                   `json:"version"`
	ExportDate      time.Time                `json:"export_date"`
	Progress        *models.ProgressData     `json:"progress"`
	UserVocabulary  map[string][]models.Word `json:"user_vocabulary,omitempty"`
	VocabularyFiles []models.FileRecord      `json:"vocabulary_files,omitempty"`
}

// Export gathers progress, user vocabulary and file records into a
// single JSON document.
func Export(kv storage.Store, now time.Time) ([]byte, error) {
	archive := Archive{
		Version:    ExportVersion,
		ExportDate: now,
	}

	var progress models.ProgressData
	found, err := kv.Get(storage.KeyProgress, &progress)
	if err != nil {
		return nil, fmt.Errorf("failed to read progress: %v", err)
	}
	if found {
		archive.Progress = &progress
	}

	if _, err := kv.Get(storage.KeyUserVocabulary, &archive.UserVocabulary); err != nil {
		return nil, fmt.Errorf("failed to read user vocabulary: %v", err)
	}
	if _, err := kv.Get(storage.KeyVocabularyFiles, &archive.VocabularyFiles); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file records: %v", err)
	}

	data, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %v", err)
	}
	return data, nil
}

// Import validates an archive and restores its contents, replacing
// what is currently stored.
func Import(kv storage.Store, data []byte) (*Archive, error) {
	var archive Archive
	if err := json.Unmarshal(data, &archive); err != nil {
		return nil, fmt.Errorf("invalid backup file: %v", err)
	}
	if archive.Version == "" || archive.Progress == nil {
		return nil, fmt.Errorf("invalid backup file: missing version or progress data")
	}

	if err := kv.Set(storage.KeyProgress, archive.Progress); err != nil {
		return nil, fmt.Errorf("failed to restore progress: %v", err)
	}
	if archive.UserVocabulary != nil {
		if err := kv.Set(storage.KeyUserVocabulary, archive.UserVocabulary); err != nil {
			return nil, fmt.Errorf("failed to restore user vocabulary: %v", err)
		}
	}
	if archive.VocabularyFiles != nil {
		if err := kv.Set(storage.KeyVocabularyFiles, archive.VocabularyFiles); err != nil {
			return nil, fmt.Errorf("failed to restore vocabulary file records: %v", err)
		}
	}
	return &archive, nil
}

// Filename builds a dated name for an exported archive
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s.json", prefix, now.Format("2006-01-02"))
}
