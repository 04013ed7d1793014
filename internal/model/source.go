package model

// Path represents a file system path.
type Path string

// SourceType identifies which Allure directory layout a tree was built from.
type SourceType string

const (
	// SourceReport is a generated allure-report directory (data/suites.json).
	SourceReport SourceType = "report"
	// SourceResults is a raw allure-results directory (*-result.json files).
	SourceResults SourceType = "results"
)

// Format selects how command output is rendered.
type Format string

// Available output formats.
const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
	FormatTUI   Format = "tui"
)

// Formats lists every recognized output format.
var Formats = []Format{FormatJSON, FormatYAML, FormatTable, FormatTUI}

// ParseFormat returns the Format named by value and whether it is recognized.
func ParseFormat(value string) (Format, bool) {
	for _, f := range Formats {
		if string(f) == value {
			return f, true
		}
	}

	return "", false
}
