package domain

import (
	"encoding/json"
	"fmt"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

const fullTruncatedWarning = "Response truncated due to size. Use --mode compact or --mode summary for large test suites."

// Project builds the view of tree for mode. statusFilter is only recorded in
// the metadata and used by compact mode to decide whether passed cases are
// shown; the tree is expected to be filtered already.
func Project(tree *m.Tree, mode m.Mode, statusFilter m.Status, config ViewConfig) (m.View, error) {
	meta := m.ViewMetadata{
		SourceType:   tree.Metadata.SourceType,
		SourcePath:   tree.Metadata.SourcePath,
		Mode:         mode,
		StatusFilter: statusFilter,
	}

	switch mode {
	case m.ModeSummary:
		return summarize(tree, meta, config), nil
	case m.ModeCompact:
		return compact(tree, meta, statusFilter == m.StatusPassed, config), nil
	case m.ModeDetailed:
		return detail(tree, meta, config.MaxTests, config.MaxStepDepth, config.MaxStepsPerLevel), nil
	case m.ModeFull:
		return full(tree, meta, config)
	}

	return nil, ValidateMode(mode)
}

// ValidateMode accepts any recognized view mode.
func ValidateMode(mode m.Mode) error {
	if _, ok := m.ParseMode(string(mode)); ok {
		return nil
	}

	allowed := make([]string, 0, len(m.Modes))
	for _, known := range m.Modes {
		allowed = append(allowed, string(known))
	}

	return &InvalidArgumentError{Name: "mode", Value: string(mode), Allowed: allowed}
}

func summarize(tree *m.Tree, meta m.ViewMetadata, config ViewConfig) *m.SummaryView {
	view := &m.SummaryView{
		FailedTests: make([]m.FailedTestRef, 0),
		Suites:      make([]m.SuiteOverview, 0, len(tree.Suites)),
		Metadata:    meta,
	}

	counts := &view.Summary
	counts.TotalSuites = len(tree.Suites)

	for _, suite := range tree.Suites {
		for _, tc := range suite.TestCases {
			counts.TotalTests++

			switch tc.Status {
			case m.StatusPassed:
				counts.Passed++
			case m.StatusFailed:
				counts.Failed++
			case m.StatusBroken:
				counts.Broken++
			case m.StatusSkipped:
				counts.Skipped++
			case m.StatusUnknown:
			}

			if (tc.Status == m.StatusFailed || tc.Status == m.StatusBroken) && len(view.FailedTests) < config.MaxFailedTests {
				view.FailedTests = append(view.FailedTests, m.FailedTestRef{
					Suite:  suite.Name,
					Name:   tc.DisplayName(),
					Status: tc.Status,
				})
			}
		}

		view.Suites = append(view.Suites, m.SuiteOverview{
			Name:      suite.Name,
			Status:    suite.Status,
			TestCount: len(suite.TestCases),
		})
	}

	passRate := 0.0
	if counts.TotalTests > 0 {
		passRate = float64(counts.Passed) / float64(counts.TotalTests) * 100
	}

	counts.PassRate = fmt.Sprintf("%.1f%%", passRate)

	return view
}

func compact(tree *m.Tree, meta m.ViewMetadata, includePassed bool, config ViewConfig) *m.CompactView {
	view := &m.CompactView{
		Suites:   make([]m.CompactSuite, 0, len(tree.Suites)),
		Metadata: meta,
	}

	view.Overview.Showing = "failed_only"
	if includePassed {
		view.Overview.Showing = "all"
	}

	for _, suite := range tree.Suites {
		cases := make([]m.CompactCase, 0, len(suite.TestCases))

		for _, tc := range suite.TestCases {
			if tc.Status == m.StatusPassed {
				view.Overview.TotalPassed++

				if !includePassed {
					continue
				}
			} else {
				view.Overview.TotalFailed++
			}

			cc := m.CompactCase{Name: tc.DisplayName(), Status: tc.Status}
			if tc.Status != m.StatusPassed {
				cc.FailedSteps = failedStepNames(tc.Steps, config.MaxFailedSteps)
			}

			cases = append(cases, cc)
		}

		if len(cases) > 0 {
			view.Suites = append(view.Suites, m.CompactSuite{
				Name:      suite.Name,
				Status:    suite.Status,
				TestCases: cases,
			})
		}
	}

	return view
}

// failedStepNames lists up to limit top-level steps that did not pass.
func failedStepNames(steps []m.Step, limit int) []string {
	var names []string

	for _, step := range steps {
		if len(names) >= limit {
			break
		}

		if step.Status != m.StatusPassed {
			names = append(names, step.Name)
		}
	}

	return names
}

func detail(tree *m.Tree, meta m.ViewMetadata, maxTests, maxDepth, perLevel int) *m.DetailedView {
	view := &m.DetailedView{
		Suites:   make([]m.DetailedSuite, 0, len(tree.Suites)),
		Metadata: meta,
	}

	count := 0

	for _, suite := range tree.Suites {
		if count >= maxTests {
			break
		}

		cases := make([]m.DetailedCase, 0, len(suite.TestCases))

		for _, tc := range suite.TestCases {
			if count >= maxTests {
				break
			}

			cases = append(cases, m.DetailedCase{
				Name:     tc.Name,
				Title:    tc.Title,
				Status:   tc.Status,
				Severity: tc.Severity,
				Steps:    truncateSteps(tc.Steps, 0, maxDepth, perLevel),
			})
			count++
		}

		if len(cases) > 0 {
			view.Suites = append(view.Suites, m.DetailedSuite{
				Name:      suite.Name,
				Status:    suite.Status,
				TestCases: cases,
			})
		}
	}

	view.Note = fmt.Sprintf("Showing %d tests (max %d), step depth limited to %d", count, maxTests, maxDepth)

	return view
}

func truncateSteps(steps []m.Step, depth, maxDepth, perLevel int) []m.DetailedStep {
	if depth >= maxDepth || len(steps) == 0 {
		return nil
	}

	kept := steps
	if len(kept) > perLevel {
		kept = kept[:perLevel]
	}

	out := make([]m.DetailedStep, 0, len(kept)+1)
	for _, step := range kept {
		out = append(out, m.DetailedStep{
			Name:   step.Name,
			Status: step.Status,
			Steps:  truncateSteps(step.Steps, depth+1, maxDepth, perLevel),
		})
	}

	if len(steps) > perLevel {
		out = append(out, m.DetailedStep{
			Name:   fmt.Sprintf("... and %d more steps", len(steps)-perLevel),
			Status: m.StatusTruncated,
		})
	}

	return out
}

func full(tree *m.Tree, meta m.ViewMetadata, config ViewConfig) (m.View, error) {
	view := &m.FullView{Suites: tree.Suites, Metadata: meta}

	data, err := json.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("measure full view: %w", err)
	}

	if len(data) <= config.FullSizeLimit {
		return view, nil
	}

	detailed := detail(tree, meta, config.FullMaxTests, config.FullMaxStepDepth, config.MaxStepsPerLevel)
	detailed.Warning = fullTruncatedWarning

	return detailed, nil
}
