package models

// Word represents a single vocabulary item within a language pair
type Word struct {
	ID           int      `json:"id" db:"id"`
	Word         string   `json:"word" db:"word"`
	Translation  string   `json:"translation" db:"translation"`
	Romanization string   `json:"romanization,omitempty" db:"romanization"`
	Category     string   `json:"category" db:"category"`
	Difficulty   int      `json:"difficulty" db:"difficulty"` // 1-3 scale
	Alternates   []string `json:"alternates,omitempty"`       // alternate accepted translations
}

// VocabularyMetadata describes an uploaded vocabulary file
type VocabularyMetadata struct {
	LanguagePair string `json:"language_pair"`
}

// VocabularyFile is the exchange format for vocabulary uploads
type VocabularyFile struct {
	Metadata *VocabularyMetadata `json:"metadata,omitempty"`
	Words    []Word              `json:"words"`
}

// FileRecord tracks an imported vocabulary file
type FileRecord struct {
	Name         string `json:"name"`
	LanguagePair string `json:"languagePair"`
	WordCount    int    `json:"wordCount"`
	ImportedAt   string `json:"importedAt"`
}
