// Package dataset serializes question rows to CSV tables.
package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"shipvqa/internal/question"
)

// Columns is the fixed header of every table, in order.
var Columns = []string{
	"image_name", "question", "answer_type", "category",
	"country", "notes", "author", "course", "semester",
}

// Record returns the row's fields in column order.
func Record(row question.Row) []string {
	return []string{
		row.ImageName,
		row.Question,
		string(row.AnswerType),
		string(row.Category),
		row.Country,
		row.Notes,
		row.Author,
		row.Course,
		row.Semester,
	}
}

// Encode writes the header and one record per row to w. Records end in
// CRLF; line breaks inside quoted fields, bare carriage returns included,
// are written unchanged.
func Encode(w io.Writer, rows []question.Row) error {
	var line bytes.Buffer
	writer := csv.NewWriter(&line)
	emit := func(record []string) error {
		line.Reset()
		if err := writer.Write(record); err != nil {
			return err
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return err
		}
		out := append(bytes.TrimSuffix(line.Bytes(), []byte("\n")), '\r', '\n')
		_, err := w.Write(out)
		return err
	}
	if err := emit(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		if err := emit(Record(row)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	return nil
}

// Write replaces the file at path with the encoded rows. The table is
// written to a sibling temp file first and renamed into place, so a failed
// write leaves any previous file untouched and no partial table behind.
func Write(path string, rows []question.Row) error {
	if path == "" {
		return fmt.Errorf("output path is required")
	}
	tmpPath := path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	encodeErr := Encode(file, rows)
	syncErr := file.Sync()
	closeErr := file.Close()
	if encodeErr != nil {
		_ = os.Remove(tmpPath)
		return encodeErr
	}
	if syncErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync: %w", syncErr)
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close: %w", closeErr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
