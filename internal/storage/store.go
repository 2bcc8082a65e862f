// Package storage provides the persisted key-value document contract the
// trainer core depends on. Documents are JSON-serialized and written whole;
// there are no partial or field-level updates.
package storage

// Store is the abstract key-value document store
type Store interface {
	// Get unmarshals the document stored under key into out and reports
	// whether the key existed
	Get(key string, out interface{}) (bool, error)
	// Set marshals doc and stores it under key, replacing any previous value
	Set(key string, doc interface{}) error
	// Delete removes the document stored under key, if any
	Delete(key string) error
}

// Document keys used by the trainer
const (
	KeyProgress        = "languageApp"
	KeyAppState        = "appState"
	KeyUserVocabulary  = "userVocabulary"
	KeyVocabularyFiles = "vocabularyFiles"
	CachePrefix        = "vocabularyCache_"
)
