package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/example/vocabtrainer/pkg/models"
)

// ErrInvalidFormat marks a vocabulary document that failed validation
var ErrInvalidFormat = errors.New("invalid vocabulary file format")

// ParseVocabularyFile decodes and validates an uploaded vocabulary
// document. A document lacking a words array, or containing any word
// missing its term or translation, is rejected with a specific reason.
func ParseVocabularyFile(data []byte) (*models.VocabularyFile, error) {
	var file models.VocabularyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: not valid JSON: %v", ErrInvalidFormat, err)
	}
	if file.Words == nil {
		return nil, fmt.Errorf("%w: missing or invalid words array", ErrInvalidFormat)
	}
	for i, w := range file.Words {
		if w.Word == "" || w.Translation == "" {
			return nil, fmt.Errorf("%w: word %d missing required fields", ErrInvalidFormat, i+1)
		}
	}
	return &file, nil
}
