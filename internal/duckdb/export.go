package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	duckdbdriver "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"shipvqa/internal/question"
)

// RunInfo describes the run recorded next to its rows.
type RunInfo struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	InputDir    string
	OutputPath  string
	ImageCount  int
	Attribution question.Attribution
}

// Export writes run and rows into the DuckDB database at path, replacing
// any earlier snapshot. The whole export runs in one transaction.
func Export(ctx context.Context, path string, run RunInfo, rows []question.Row) (err error) {
	if ctx == nil {
		return errors.New("duckdb: context is nil")
	}
	if path == "" {
		return errors.New("duckdb: path is required")
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("connect duckdb: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "BEGIN TRANSACTION"); err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_, _ = conn.ExecContext(context.Background(), "ROLLBACK")
		}
	}()

	if err := EnsureSchema(ctx, conn); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if err := appendRun(conn, run, len(rows)); err != nil {
		return err
	}
	if err := appendQuestions(conn, run.ID, rows); err != nil {
		return err
	}
	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func appendRun(conn *sql.Conn, run RunInfo, rowCount int) error {
	appender, err := newAppender(conn, "vqa_runs")
	if err != nil {
		return err
	}
	appendErr := appender.AppendRow(
		duckdbdriver.UUID(run.ID),
		run.CreatedAt.UTC(),
		run.InputDir,
		run.OutputPath,
		int64(run.ImageCount),
		int64(rowCount),
		run.Attribution.Author,
		run.Attribution.Course,
		run.Attribution.Semester,
	)
	closeErr := appender.Close()
	if appendErr != nil {
		return fmt.Errorf("append run: %w", appendErr)
	}
	if closeErr != nil {
		return fmt.Errorf("flush run: %w", closeErr)
	}
	return nil
}

func appendQuestions(conn *sql.Conn, runID uuid.UUID, rows []question.Row) error {
	appender, err := newAppender(conn, "vqa_questions")
	if err != nil {
		return err
	}
	id := duckdbdriver.UUID(runID)
	var appendErr error
	for i, row := range rows {
		appendErr = appender.AppendRow(
			id,
			int64(i),
			row.ImageName,
			row.Question,
			string(row.AnswerType),
			string(row.Category),
			row.Country,
			row.Notes,
			row.Author,
			row.Course,
			row.Semester,
		)
		if appendErr != nil {
			appendErr = fmt.Errorf("append question %d: %w", i, appendErr)
			break
		}
	}
	closeErr := appender.Close()
	if appendErr != nil {
		return appendErr
	}
	if closeErr != nil {
		return fmt.Errorf("flush questions: %w", closeErr)
	}
	return nil
}

// newAppender creates a DuckDB appender for bulk inserts into table.
func newAppender(conn *sql.Conn, table string) (*duckdbdriver.Appender, error) {
	var appender *duckdbdriver.Appender
	if err := conn.Raw(func(driverConn any) error {
		rawConn, ok := driverConn.(driver.Conn)
		if !ok {
			return fmt.Errorf("duckdb driver connection unavailable (got %T)", driverConn)
		}
		var err error
		appender, err = duckdbdriver.NewAppenderFromConn(rawConn, "", table)
		return err
	}); err != nil {
		return nil, fmt.Errorf("create %s appender: %w", table, err)
	}
	if appender == nil {
		return nil, fmt.Errorf("duckdb appender initialization failed")
	}
	return appender, nil
}
