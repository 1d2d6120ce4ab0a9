package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

// add records a new validation issue.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// validateFile checks fields that cannot be fixed up by normalization.
func validateFile(file File) error {
	collector := &issueCollector{}
	if file.Version == 0 {
		collector.add("version", "is required")
	} else if file.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", file.Version))
	}
	requireNonBlank := func(field string, value *string) {
		if value != nil && strings.TrimSpace(*value) == "" {
			collector.add(field, "must not be empty")
		}
	}
	requireNonBlank("output_csv", file.OutputCSV)
	requireNonBlank("duckdb", file.DuckDB)
	if file.Extensions != nil && len(ParseExtensions(strings.Join(file.Extensions, ","))) == 0 {
		collector.add("extensions", "must include at least one entry starting with '.'")
	}
	return collector.result()
}
