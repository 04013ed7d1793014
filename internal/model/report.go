// Package model defines the canonical Allure result tree and its projections.
package model

// Label is a name/value pair attached to a test case.
type Label struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Parameter is a name/value pair describing a test case or step input.
type Parameter struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Attachment references a file written next to the results. Content is never loaded.
type Attachment struct {
	Name   string `json:"name" yaml:"name"`
	Source string `json:"source" yaml:"source"`
	Type   string `json:"type" yaml:"type"`
}

// Step is a recorded sub-action of a test case. Steps own their children.
type Step struct {
	Name        string       `json:"name" yaml:"name"`
	Title       string       `json:"title" yaml:"title"`
	Status      Status       `json:"status" yaml:"status"`
	Start       string       `json:"start,omitempty" yaml:"start,omitempty"`
	Stop        string       `json:"stop,omitempty" yaml:"stop,omitempty"`
	Attachments []Attachment `json:"attachments" yaml:"attachments"`
	Steps       []Step       `json:"steps" yaml:"steps"`
}

// TestCase is one executed test.
type TestCase struct {
	Name        string      `json:"name" yaml:"name"` // fully-qualified name
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Severity    Severity    `json:"severity,omitempty" yaml:"severity,omitempty"`
	Status      Status      `json:"status" yaml:"status"`
	Start       string      `json:"start,omitempty" yaml:"start,omitempty"`
	Stop        string      `json:"stop,omitempty" yaml:"stop,omitempty"`
	Labels      []Label     `json:"labels" yaml:"labels"`
	Parameters  []Parameter `json:"parameters" yaml:"parameters"`
	Steps       []Step      `json:"steps" yaml:"steps"`
}

// DisplayName returns the title, or the fully-qualified name when the title is empty.
func (tc TestCase) DisplayName() string {
	if tc.Title != "" {
		return tc.Title
	}

	return tc.Name
}

// Suite groups test cases under an aggregated status and time span.
type Suite struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Status      Status     `json:"status" yaml:"status"`
	Start       string     `json:"start,omitempty" yaml:"start,omitempty"`
	Stop        string     `json:"stop,omitempty" yaml:"stop,omitempty"`
	TestCases   []TestCase `json:"test-cases" yaml:"test-cases"`
}

// Metadata records where a tree came from.
type Metadata struct {
	SourceType SourceType `json:"source_type" yaml:"source_type"`
	SourcePath string     `json:"source_path" yaml:"source_path"`
}

// Tree is the canonical, format-independent result tree.
type Tree struct {
	Metadata Metadata `json:"_metadata" yaml:"_metadata"`
	Suites   []Suite  `json:"test-suites" yaml:"test-suites"`
}

// TestCaseCount returns the number of test cases across all suites.
func (t *Tree) TestCaseCount() int {
	total := 0
	for _, suite := range t.Suites {
		total += len(suite.TestCases)
	}

	return total
}
