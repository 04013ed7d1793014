package domain

import (
	"fmt"
	"strings"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

const expectedLayouts = "expected either:\n" +
	"  - allure-report (with data/suites.json)\n" +
	"  - allure-results (with *-result.json files)"

// NotFoundError reports that the supplied directory does not exist.
type NotFoundError struct {
	Path m.Path
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("directory not found: %s", e.Path)
}

// InvalidFormatError reports a directory that matches neither Allure layout,
// or a layout that turned out to hold nothing parseable.
type InvalidFormatError struct {
	Path   m.Path
	Reason string
	Cause  error
}

func (e *InvalidFormatError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "invalid directory: %s", e.Path)

	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}

	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}

	b.WriteString("\n")
	b.WriteString(expectedLayouts)

	return b.String()
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Cause
}

// MissingTestCaseError reports a suite index entry whose test-case file is absent.
// Parsers recover from it by skipping the one test case.
type MissingTestCaseError struct {
	UID  string
	Path m.Path
}

func (e *MissingTestCaseError) Error() string {
	if e.UID == "" {
		return "test case reference without uid"
	}

	if e.Path == "" {
		return fmt.Sprintf("test case uid %q is not a file name", e.UID)
	}

	return fmt.Sprintf("test case %s not found: %s", e.UID, e.Path)
}

// InvalidArgumentError reports an unrecognized option value such as a status filter.
type InvalidArgumentError struct {
	Name    string
	Value   string
	Allowed []string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of %s", e.Name, e.Value, strings.Join(e.Allowed, ", "))
}

func statusNames(statuses []m.Status) []string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, string(s))
	}

	return names
}
