package exporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"cinepulse/pkg/contracts/domain"
)

// movieSheet is the name of the single worksheet in XLSX exports.
const movieSheet = "Movies"

// buildWorkbook renders the movie table into a one-sheet workbook.
func buildWorkbook(movies []domain.Movie) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(movieSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for col, header := range movieHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(movieSheet, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header %s: %w", header, err)
		}
	}

	for i := range movies {
		row := movieRow(&movies[i])
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(movieSheet, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to write row %d: %w", i, err)
			}
		}
	}

	return f, nil
}

// WriteXLSX streams the movie table as an XLSX workbook to w.
func WriteXLSX(w io.Writer, movies []domain.Movie) error {
	f, err := buildWorkbook(movies)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// ExportXLSXFile writes the movie table to an XLSX file, creating parent
// directories as needed.
func ExportXLSXFile(path string, movies []domain.Movie) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := buildWorkbook(movies)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
