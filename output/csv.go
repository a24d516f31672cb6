// Package output renders resolved NDC records as CSV files or console tables.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pharmanav/ndcfinder/logging"
	"github.com/pharmanav/ndcfinder/resolver/entities"
)

// csvHeader is the column order shared by CSV and table output.
var csvHeader = []string{
	"name", "rxcui", "term_type", "ndc", "ndc9", "ndc10",
	"spl_id", "description", "manufacturer", "route", "strength",
}

// WriteCSV writes all records to path with a header row, overwriting any
// existing file.
func WriteCSV(path string, records []entities.NDCRecord) error {
	cleanPath := filepath.Clean(path)

	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", cleanPath, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("Failed to close output file", "error", err)
		}
	}()

	writer := csv.NewWriter(file)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Name, rec.ConceptID, rec.TermType, rec.NDC, rec.NDC9, rec.NDC10,
			rec.SplID, rec.Description, rec.Manufacturer, rec.Route, rec.Strength,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}
