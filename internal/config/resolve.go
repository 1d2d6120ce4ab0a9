package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"shipvqa/internal/question"
)

var (
	// ErrInputNotFound indicates the input directory does not exist.
	ErrInputNotFound = errors.New("input directory not found")
	// ErrInputNotDirectory indicates the input path exists but is a file.
	ErrInputNotDirectory = errors.New("input path is not a directory")
	// ErrNoValidExtensions indicates no extension survived normalization.
	ErrNoValidExtensions = errors.New("no valid file extensions provided")
)

// Run is the resolved, normalized configuration of one invocation. It is
// built once and passed explicitly through the pipeline.
type Run struct {
	InputDir   string
	OutputPath string
	Extensions []string
	Countries  []string
	Recursive  bool
	Author     string
	Course     string
	Semester   string
	Templates  question.Templates
	DuckDBPath string
}

// Attribution returns the per-row author, course, and semester.
func (r Run) Attribution() question.Attribution {
	return question.Attribution{Author: r.Author, Course: r.Course, Semester: r.Semester}
}

// CheckInputDir verifies that path names an existing directory.
func CheckInputDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("stat input directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInputNotDirectory, path)
	}
	return nil
}

// Resolve normalizes opts into a Run. It does not touch the filesystem.
func Resolve(opts Options) (Run, error) {
	if strings.TrimSpace(opts.InputDir) == "" {
		return Run{}, &ValidationError{Issues: []Issue{{Field: "input_dir", Message: "is required"}}}
	}
	exts := ParseExtensions(opts.Extensions)
	if len(exts) == 0 {
		return Run{}, ErrNoValidExtensions
	}
	if strings.TrimSpace(opts.OutputCSV) == "" {
		return Run{}, &ValidationError{Issues: []Issue{{Field: "output_csv", Message: "must not be empty"}}}
	}
	templates, err := question.NormalizeTemplates(opts.Templates)
	if err != nil {
		return Run{}, err
	}
	return Run{
		InputDir:   opts.InputDir,
		OutputPath: opts.OutputCSV,
		Extensions: exts,
		Countries:  ParseCountries(opts.Countries),
		Recursive:  opts.Recursive,
		Author:     opts.Author,
		Course:     opts.Course,
		Semester:   opts.Semester,
		Templates:  templates,
		DuckDBPath: strings.TrimSpace(opts.DuckDB),
	}, nil
}
