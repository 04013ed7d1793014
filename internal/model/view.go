package model

// Mode selects how much of a tree a view keeps.
type Mode string

// Available view modes, from most to least compact.
const (
	ModeSummary  Mode = "summary"
	ModeCompact  Mode = "compact"
	ModeDetailed Mode = "detailed"
	ModeFull     Mode = "full"
)

// Modes lists every recognized view mode.
var Modes = []Mode{ModeSummary, ModeCompact, ModeDetailed, ModeFull}

// ParseMode returns the Mode named by value and whether it is recognized.
func ParseMode(value string) (Mode, bool) {
	for _, mode := range Modes {
		if string(mode) == value {
			return mode, true
		}
	}

	return "", false
}

// StatusTruncated marks the placeholder step that stands in for steps cut from a detailed view.
const StatusTruncated Status = "truncated"

// ViewMetadata describes the tree a view was projected from.
type ViewMetadata struct {
	SourceType   SourceType `json:"source_type" yaml:"source_type"`
	SourcePath   string     `json:"source_path" yaml:"source_path"`
	Mode         Mode       `json:"mode" yaml:"mode"`
	StatusFilter Status     `json:"status_filter,omitempty" yaml:"status_filter,omitempty"`
}

// View is a mode-specific projection of a Tree.
type View interface {
	ViewMode() Mode
	ViewMetadata() ViewMetadata
}

// SummaryCounts holds run-wide counters.
type SummaryCounts struct {
	TotalSuites int    `json:"total_suites" yaml:"total_suites"`
	TotalTests  int    `json:"total_tests" yaml:"total_tests"`
	Passed      int    `json:"passed" yaml:"passed"`
	Failed      int    `json:"failed" yaml:"failed"`
	Broken      int    `json:"broken" yaml:"broken"`
	Skipped     int    `json:"skipped" yaml:"skipped"`
	PassRate    string `json:"pass_rate" yaml:"pass_rate"`
}

// FailedTestRef points at a failed or broken test case.
type FailedTestRef struct {
	Suite  string `json:"suite" yaml:"suite"`
	Name   string `json:"name" yaml:"name"`
	Status Status `json:"status" yaml:"status"`
}

// SuiteOverview is a one-line description of a suite.
type SuiteOverview struct {
	Name      string `json:"name" yaml:"name"`
	Status    Status `json:"status" yaml:"status"`
	TestCount int    `json:"test_count" yaml:"test_count"`
}

// SummaryView holds statistics only.
type SummaryView struct {
	Summary     SummaryCounts   `json:"summary" yaml:"summary"`
	FailedTests []FailedTestRef `json:"failed_tests" yaml:"failed_tests"`
	Suites      []SuiteOverview `json:"suites" yaml:"suites"`
	Metadata    ViewMetadata    `json:"_metadata" yaml:"_metadata"`
}

// ViewMode implements View.
func (v *SummaryView) ViewMode() Mode { return ModeSummary }

// ViewMetadata implements View.
func (v *SummaryView) ViewMetadata() ViewMetadata { return v.Metadata }

// CompactOverview holds pass/fail counters for a compact view.
type CompactOverview struct {
	TotalPassed int    `json:"total_passed" yaml:"total_passed"`
	TotalFailed int    `json:"total_failed" yaml:"total_failed"`
	Showing     string `json:"showing" yaml:"showing"`
}

// CompactCase is a test case reduced to its name, status and failing steps.
type CompactCase struct {
	Name        string   `json:"name" yaml:"name"`
	Status      Status   `json:"status" yaml:"status"`
	FailedSteps []string `json:"failed_steps,omitempty" yaml:"failed_steps,omitempty"`
}

// CompactSuite is a suite holding compact cases.
type CompactSuite struct {
	Name      string        `json:"name" yaml:"name"`
	Status    Status        `json:"status" yaml:"status"`
	TestCases []CompactCase `json:"test-cases" yaml:"test-cases"`
}

// CompactView focuses on failures.
type CompactView struct {
	Overview CompactOverview `json:"overview" yaml:"overview"`
	Suites   []CompactSuite  `json:"test-suites" yaml:"test-suites"`
	Metadata ViewMetadata    `json:"_metadata" yaml:"_metadata"`
}

// ViewMode implements View.
func (v *CompactView) ViewMode() Mode { return ModeCompact }

// ViewMetadata implements View.
func (v *CompactView) ViewMetadata() ViewMetadata { return v.Metadata }

// DetailedStep is a step cut down to name and status.
type DetailedStep struct {
	Name   string         `json:"name" yaml:"name"`
	Status Status         `json:"status" yaml:"status"`
	Steps  []DetailedStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// DetailedCase is a test case with depth-limited steps.
type DetailedCase struct {
	Name     string         `json:"name" yaml:"name"`
	Title    string         `json:"title" yaml:"title"`
	Status   Status         `json:"status" yaml:"status"`
	Severity Severity       `json:"severity,omitempty" yaml:"severity,omitempty"`
	Steps    []DetailedStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// DetailedSuite is a suite holding detailed cases.
type DetailedSuite struct {
	Name      string         `json:"name" yaml:"name"`
	Status    Status         `json:"status" yaml:"status"`
	TestCases []DetailedCase `json:"test-cases" yaml:"test-cases"`
}

// DetailedView keeps steps, bounded by test count and step depth.
type DetailedView struct {
	Note     string          `json:"note" yaml:"note"`
	Warning  string          `json:"warning,omitempty" yaml:"warning,omitempty"`
	Suites   []DetailedSuite `json:"test-suites" yaml:"test-suites"`
	Metadata ViewMetadata    `json:"_metadata" yaml:"_metadata"`
}

// ViewMode implements View.
func (v *DetailedView) ViewMode() Mode { return ModeDetailed }

// ViewMetadata implements View.
func (v *DetailedView) ViewMetadata() ViewMetadata { return v.Metadata }

// FullView is the whole canonical tree with view metadata.
type FullView struct {
	Suites   []Suite      `json:"test-suites" yaml:"test-suites"`
	Metadata ViewMetadata `json:"_metadata" yaml:"_metadata"`
}

// ViewMode implements View.
func (v *FullView) ViewMode() Mode { return ModeFull }

// ViewMetadata implements View.
func (v *FullView) ViewMetadata() ViewMetadata { return v.Metadata }
