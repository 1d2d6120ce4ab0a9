package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"shipvqa/internal/question"
)

func sampleRows() []question.Row {
	attr := question.Attribution{Author: "Kyle Pierre", Course: "CSCI 370", Semester: "Fall 2025"}
	rows := question.BuildAll([]string{"DDG-51_Arleigh_Burke.png", "kirov.jpg"}, []string{"United States", "Russia"}, attr, question.DefaultTemplates())
	rows = append(rows, question.Row{
		ImageName:  `odd, "name".png`,
		Question:   "Line one\nline two",
		AnswerType: question.AnswerOpenEnded,
		Category:   question.CategoryType,
		Country:    " leading space",
		Notes:      "tab\there",
		Author:     "Zoë Ångström",
	}, question.Row{
		ImageName:  "cr.png",
		Question:   "Is this ship\rdocked?",
		AnswerType: question.AnswerYesNo,
		Category:   question.CategoryGeneral,
		Author:     "Kyle\rPierre",
		Course:     "trailing\r",
	})
	return rows
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vqa_questions.csv")
	rows := sampleRows()

	require.NoError(t, Write(path, rows))

	got, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, rows, got)

	_, err = os.Stat(path + ".tmp")
	require.True(t, errors.Is(err, os.ErrNotExist), "temp file should be gone")
}

func TestWriteHeaderAndQuoting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := []question.Row{{
		ImageName:  "a.png",
		Question:   `Is this "the" ship, really?`,
		AnswerType: question.AnswerYesNo,
		Category:   question.CategoryGeneral,
	}}
	require.NoError(t, Write(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "image_name,question,answer_type,category,country,notes,author,course,semester\r\n" +
		`a.png,"Is this ""the"" ship, really?",yes/no,general,,,,,` + "\r\n"
	require.Equal(t, want, string(data))
}

func TestWriteKeepsCarriageReturns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := []question.Row{{
		ImageName: "a.png",
		Author:    "Kyle\rPierre",
		Course:    "CSCI\r\n370",
	}}
	require.NoError(t, Write(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := strings.Join(Columns, ",") + "\r\n" +
		"a.png,,,,,,\"Kyle\rPierre\",\"CSCI\r\n370\",\r\n"
	require.Equal(t, want, string(data))

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Kyle\rPierre", got[0].Author)
	require.Equal(t, "CSCI\n370", got[0].Course)
}

func TestWriteTSVPathStillUsesCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tsv")
	rows := sampleRows()
	require.NoError(t, Write(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	firstLine := strings.SplitN(string(data), "\r\n", 2)[0]
	require.Equal(t, strings.Join(Columns, ","), firstLine)

	got, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, rows, got)
}

func TestWriteOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the new table will be\n"+strings.Repeat("x", 4096)), 0o644))

	rows := sampleRows()[:1]
	require.NoError(t, Write(path, rows))

	got, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, rows, got)
}

func TestWriteFailureLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	require.Error(t, Write(path, sampleRows()))

	_, err := os.Stat(path)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteRenameFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taken.csv")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "child"), 0o755))

	require.Error(t, Write(path, sampleRows()))

	_, err := os.Stat(path + ".tmp")
	require.True(t, errors.Is(err, os.ErrNotExist), "temp file should be removed")
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeReportsWriterErrors(t *testing.T) {
	err := Encode(failingWriter{}, sampleRows())
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}

func TestDecodeRejectsWrongHeader(t *testing.T) {
	_, err := Decode(bytes.NewBufferString("image,question\r\na,b\r\n"))
	require.ErrorIs(t, err, ErrHeaderMismatch)

	_, err = Decode(bytes.NewBufferString(""))
	require.ErrorIs(t, err, ErrHeaderMismatch)
}
