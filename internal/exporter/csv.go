package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cinepulse/pkg/contracts/domain"
)

// utf8BOM helps Excel recognize UTF-8 encoded CSV files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV streams the movie table as CSV to w, BOM first.
func WriteCSV(w io.Writer, movies []domain.Movie) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(movieHeaders); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i := range movies {
		if err := writer.Write(movieRow(&movies[i])); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportCSVFile writes the movie table to a CSV file, creating parent
// directories as needed.
func ExportCSVFile(path string, movies []domain.Movie) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := WriteCSV(file, movies); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
