// Package config resolves the options of a dataset generation run from
// built-in defaults, an optional config file, and command-line flags.
package config

import (
	"strings"

	"shipvqa/internal/question"
)

// Built-in option defaults.
const (
	DefaultOutputCSV  = "vqa_questions.csv"
	DefaultExtensions = ".png,.jpg,.jpeg"
	DefaultAuthor     = "Kyle Pierre"
	DefaultCourse     = "CSCI 370"
	DefaultSemester   = "Fall 2025"
)

var defaultCountries = []string{
	"United States", "China", "Russia", "Japan",
	"South Korea", "United Kingdom", "France", "Germany",
}

// DefaultCountries returns a fresh copy of the default country list.
func DefaultCountries() []string {
	return append([]string(nil), defaultCountries...)
}

// Options holds option values as the user supplied them, before any
// normalization. List-valued options are comma-separated strings.
type Options struct {
	InputDir   string
	OutputCSV  string
	Extensions string
	Countries  string
	Recursive  bool
	Author     string
	Course     string
	Semester   string
	DuckDB     string
	Templates  question.Templates
}

// DefaultOptions returns the options used when nothing is overridden.
func DefaultOptions() Options {
	return Options{
		OutputCSV:  DefaultOutputCSV,
		Extensions: DefaultExtensions,
		Countries:  strings.Join(defaultCountries, ","),
		Author:     DefaultAuthor,
		Course:     DefaultCourse,
		Semester:   DefaultSemester,
		Templates:  question.DefaultTemplates(),
	}
}
