package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"shipvqa/internal/question"
)

// ErrHeaderMismatch indicates a table whose header is not Columns.
var ErrHeaderMismatch = errors.New("unexpected table header")

// Read parses a table written by Write back into rows. A CRLF pair inside a
// quoted field comes back as a single newline; a bare carriage return is
// kept as written.
func Read(path string) ([]question.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer file.Close()
	return Decode(file)
}

// Decode parses a header line followed by one record per row.
func Decode(r io.Reader) ([]question.Row, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty table", ErrHeaderMismatch)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if strings.Join(header, ",") != strings.Join(Columns, ",") {
		return nil, fmt.Errorf("%w: %q", ErrHeaderMismatch, header)
	}

	var rows []question.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows), err)
		}
		rows = append(rows, question.Row{
			ImageName:  record[0],
			Question:   record[1],
			AnswerType: question.AnswerType(record[2]),
			Category:   question.Category(record[3]),
			Country:    record[4],
			Notes:      record[5],
			Author:     record[6],
			Course:     record[7],
			Semester:   record[8],
		})
	}
	return rows, nil
}
