package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shipvqa/internal/collect"
	"shipvqa/internal/config"
	"shipvqa/internal/dataset"
	"shipvqa/internal/duckdb"
	"shipvqa/internal/question"
)

var (
	newRunID     = uuid.New
	now          = time.Now
	exportDuckDB = duckdb.Export
)

// Result summarizes a completed generation run.
type Result struct {
	RunID      uuid.UUID
	Images     int
	Rows       int
	OutputPath string
	DuckDBPath string
}

// Generate collects the images of run, builds their question rows, and
// writes the table. Failures are returned as *UserError.
func Generate(ctx context.Context, run config.Run, logger *zap.Logger) (Result, error) {
	runID := newRunID()
	logger = logger.With(zap.String("run_id", runID.String()))
	logger.Debug("starting run",
		zap.String("input_dir", run.InputDir),
		zap.Strings("extensions", run.Extensions),
		zap.Bool("recursive", run.Recursive),
		zap.Strings("countries", run.Countries),
	)

	images, err := collect.Images(run.InputDir, run.Extensions, run.Recursive)
	if err != nil {
		return Result{}, failf(ExitError, err, "Failed to scan %s: %v", run.InputDir, err)
	}
	if len(images) == 0 {
		return Result{}, failf(ExitError, collect.ErrNoImages, "No images found in %s", run.InputDir)
	}
	logger.Debug("collected images", zap.Int("images", len(images)))

	names := make([]string, 0, len(images))
	for _, image := range images {
		names = append(names, filepath.Base(image))
	}
	rows := question.BuildAll(names, run.Countries, run.Attribution(), run.Templates)
	logger.Debug("built questions",
		zap.Int("rows", len(rows)),
		zap.Int("rows_per_image", question.RowsPerImage(run.Templates, len(run.Countries))),
	)

	if err := dataset.Write(run.OutputPath, rows); err != nil {
		logger.Debug("write failed", zap.String("path", run.OutputPath), zap.Error(err))
		return Result{}, failf(ExitError, err, "Write %s: %v", run.OutputPath, err)
	}
	outputPath, err := filepath.Abs(run.OutputPath)
	if err != nil {
		outputPath = run.OutputPath
	}
	logger.Info("wrote dataset", zap.String("path", outputPath), zap.Int("rows", len(rows)))

	result := Result{
		RunID:      runID,
		Images:     len(images),
		Rows:       len(rows),
		OutputPath: outputPath,
	}
	if run.DuckDBPath == "" {
		return result, nil
	}

	info := duckdb.RunInfo{
		ID:          runID,
		CreatedAt:   now(),
		InputDir:    run.InputDir,
		OutputPath:  outputPath,
		ImageCount:  len(images),
		Attribution: run.Attribution(),
	}
	if err := exportDuckDB(ctx, run.DuckDBPath, info, rows); err != nil {
		logger.Debug("duckdb export failed", zap.String("path", run.DuckDBPath), zap.Error(err))
		return Result{}, failf(ExitError, err, "Export duckdb %s: %v", run.DuckDBPath, err)
	}
	logger.Info("exported duckdb", zap.String("path", run.DuckDBPath))
	result.DuckDBPath = run.DuckDBPath
	return result, nil
}
