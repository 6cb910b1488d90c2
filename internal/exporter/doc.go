// Package exporter turns a filtered movie table into downloadable files.
//
// Two formats are supported:
//
// CSV: streamed with a UTF-8 BOM so Excel opens the file with correct
// encoding. The same writer serves HTTP downloads and on-disk exports.
//
// XLSX: a single-sheet workbook built with excelize, one row per movie,
// using the same column set as the CSV export.
package exporter
