package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/vocabtrainer/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath           string // Path to the Excel or CSV file
	WordColumn         string // Column with the word
	TranslationColumn  string // Column with the translation
	RomanizationColumn string // Column with the romanization
	CategoryColumn     string // Column with the category
	DifficultyColumn   string // Column with the difficulty (1-3)
	SheetName          string // Name of the sheet to import
	StartRow           int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		WordColumn:         "A",
		TranslationColumn:  "B",
		RomanizationColumn: "C",
		CategoryColumn:     "D",
		DifficultyColumn:   "E",
		SheetName:          "Sheet1",
		StartRow:           2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	Words          []models.Word
	TotalProcessed int
	Skipped        int
	Errors         []string
}

// ImportWords reads words from an Excel or CSV file. The returned
// words carry no ids; the catalog assigns them on import.
func ImportWords(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))

	if ext == ".csv" {
		return importFromCSV(config)
	}

	return importFromExcel(config)
}

// importFromExcel imports words from an Excel file
func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	result := &ImportResult{
		Errors: make([]string, 0),
	}

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}

		result.TotalProcessed++

		if err := processRow(row, config, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// importFromCSV imports words from a CSV file
func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &ImportResult{
		Errors: make([]string, 0),
	}

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++

		// Skip header rows
		if rowNum < config.StartRow {
			continue
		}

		result.TotalProcessed++

		if err := processRow(row, config, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

// processRow extracts one word from a row using the configured columns
func processRow(row []string, config ImportConfig, result *ImportResult) error {
	var word, translation, romanization, category, difficulty string

	if colIdx := columnToIndex(config.WordColumn); colIdx >= 0 && colIdx < len(row) {
		word = strings.TrimSpace(row[colIdx])
	}
	if colIdx := columnToIndex(config.TranslationColumn); colIdx >= 0 && colIdx < len(row) {
		translation = strings.TrimSpace(row[colIdx])
	}
	if config.RomanizationColumn != "" {
		if colIdx := columnToIndex(config.RomanizationColumn); colIdx >= 0 && colIdx < len(row) {
			romanization = strings.TrimSpace(row[colIdx])
		}
	}
	if config.CategoryColumn != "" {
		if colIdx := columnToIndex(config.CategoryColumn); colIdx >= 0 && colIdx < len(row) {
			category = strings.TrimSpace(row[colIdx])
		}
	}
	if config.DifficultyColumn != "" {
		if colIdx := columnToIndex(config.DifficultyColumn); colIdx >= 0 && colIdx < len(row) {
			difficulty = strings.TrimSpace(row[colIdx])
		}
	}

	if word == "" || translation == "" {
		result.Skipped++
		return nil
	}

	result.Words = append(result.Words, models.Word{
		Word:         word,
		Translation:  translation,
		Romanization: romanization,
		Category:     category,
		Difficulty:   parseDifficulty(difficulty),
	})
	return nil
}

// parseDifficulty converts a cell value to a difficulty in 1..3,
// defaulting to 1 when the cell is empty or unparseable
func parseDifficulty(s string) int {
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	if n < 1 {
		return 1
	}
	if n > 3 {
		return 3
	}
	return n
}

// columnToIndex converts a column letter to a zero-based index
func columnToIndex(column string) int {
	n, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return -1
	}
	return n - 1
}
