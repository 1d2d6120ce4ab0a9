package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"shipvqa/internal/question"
)

// File is the on-disk config schema. Unset fields keep their defaults.
type File struct {
	Version    int                 `json:"version" yaml:"version"`
	OutputCSV  *string             `json:"output_csv,omitempty" yaml:"output_csv,omitempty"`
	Extensions []string            `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	Countries  []string            `json:"countries,omitempty" yaml:"countries,omitempty"`
	Recursive  *bool               `json:"recursive,omitempty" yaml:"recursive,omitempty"`
	Author     *string             `json:"author,omitempty" yaml:"author,omitempty"`
	Course     *string             `json:"course,omitempty" yaml:"course,omitempty"`
	Semester   *string             `json:"semester,omitempty" yaml:"semester,omitempty"`
	DuckDB     *string             `json:"duckdb,omitempty" yaml:"duckdb,omitempty"`
	Questions  *question.Templates `json:"questions,omitempty" yaml:"questions,omitempty"`
}

// LoadFile reads, parses, and validates a config file. Files ending in
// .json are decoded as JSON, everything else as YAML.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	file, err := parseFile(data, path)
	if err != nil {
		return File{}, err
	}
	if err := validateFile(file); err != nil {
		return File{}, err
	}
	return file, nil
}

// Apply overlays the values set in the file onto opts.
func (f File) Apply(opts Options) Options {
	if f.OutputCSV != nil {
		opts.OutputCSV = *f.OutputCSV
	}
	if f.Extensions != nil {
		opts.Extensions = strings.Join(f.Extensions, ",")
	}
	if f.Countries != nil {
		opts.Countries = strings.Join(f.Countries, ",")
	}
	if f.Recursive != nil {
		opts.Recursive = *f.Recursive
	}
	if f.Author != nil {
		opts.Author = *f.Author
	}
	if f.Course != nil {
		opts.Course = *f.Course
	}
	if f.Semester != nil {
		opts.Semester = *f.Semester
	}
	if f.DuckDB != nil {
		opts.DuckDB = *f.DuckDB
	}
	if f.Questions != nil {
		if f.Questions.General != nil {
			opts.Templates.General = f.Questions.General
		}
		if f.Questions.Type != nil {
			opts.Templates.Type = f.Questions.Type
		}
	}
	return opts
}

func parseFile(data []byte, path string) (File, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return parseJSONFile(data)
	}
	return parseYAMLFile(data)
}

func parseJSONFile(data []byte) (File, error) {
	var file File
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return File{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse json: %w", err)
	}
	return file, nil
}

func parseYAMLFile(data []byte) (File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if err == io.EOF {
			return File{}, fmt.Errorf("parse yaml: empty document")
		}
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return File{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	return file, nil
}
