package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// renderer turns results into terminal text. statusLabel decides how a
// status is shown so the same layout serves plain and styled output.
type renderer struct {
	statusLabel func(m.Status) string
}

func newPlainRenderer() renderer {
	return renderer{statusLabel: titleStatus}
}

// titleStatus returns the status in title case, e.g. "Failed".
func titleStatus(status m.Status) string {
	return cases.Title(language.English).String(string(status))
}

func (r renderer) detection(path m.Path, sourceType m.SourceType) string {
	return fmt.Sprintf("%s: %s\n", path, sourceType)
}

func (r renderer) tree(tree *m.Tree) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Source: %s (%s)\n\n", tree.Metadata.SourceType, tree.Metadata.SourcePath)
	b.WriteString(r.suiteTable(tree.Suites))

	return b.String()
}

// suiteTable renders one row per suite with per-status case counts.
func (r renderer) suiteTable(suites []m.Suite) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Suite", "Status", "Tests", "Passed", "Failed", "Broken", "Skipped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	var total statusCounts

	for _, suite := range suites {
		counts := countStatuses(suite.TestCases)
		total.add(counts)

		table.Append([]string{
			suite.Name,
			r.statusLabel(suite.Status),
			strconv.Itoa(counts.tests),
			strconv.Itoa(counts.passed),
			strconv.Itoa(counts.failed),
			strconv.Itoa(counts.broken),
			strconv.Itoa(counts.skipped),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Suites %d", len(suites)),
		"",
		strconv.Itoa(total.tests),
		strconv.Itoa(total.passed),
		strconv.Itoa(total.failed),
		strconv.Itoa(total.broken),
		strconv.Itoa(total.skipped),
	})

	table.Render()

	return tableBuffer.String()
}

type statusCounts struct {
	tests, passed, failed, broken, skipped int
}

func (c *statusCounts) add(other statusCounts) {
	c.tests += other.tests
	c.passed += other.passed
	c.failed += other.failed
	c.broken += other.broken
	c.skipped += other.skipped
}

func countStatuses(cases []m.TestCase) statusCounts {
	counts := statusCounts{tests: len(cases)}

	for _, tc := range cases {
		switch tc.Status {
		case m.StatusPassed:
			counts.passed++
		case m.StatusFailed:
			counts.failed++
		case m.StatusBroken:
			counts.broken++
		case m.StatusSkipped:
			counts.skipped++
		case m.StatusUnknown:
		}
	}

	return counts
}

func (r renderer) view(view m.View) string {
	switch v := view.(type) {
	case *m.SummaryView:
		return r.summary(v)
	case *m.CompactView:
		return r.compact(v)
	case *m.DetailedView:
		return r.detailed(v)
	case *m.FullView:
		return r.tree(&m.Tree{
			Metadata: m.Metadata{SourceType: v.Metadata.SourceType, SourcePath: v.Metadata.SourcePath},
			Suites:   v.Suites,
		})
	}

	return fmt.Sprintf("unsupported view %T\n", view)
}

func (r renderer) summary(v *m.SummaryView) string {
	var b strings.Builder

	s := v.Summary
	fmt.Fprintf(&b, "%d tests in %d suites, pass rate %s\n", s.TotalTests, s.TotalSuites, s.PassRate)
	fmt.Fprintf(&b, "%s %d | %s %d | %s %d | %s %d\n\n",
		r.statusLabel(m.StatusPassed), s.Passed,
		r.statusLabel(m.StatusFailed), s.Failed,
		r.statusLabel(m.StatusBroken), s.Broken,
		r.statusLabel(m.StatusSkipped), s.Skipped)

	var suites bytes.Buffer

	table := tablewriter.NewWriter(&suites)
	table.SetHeader([]string{"Suite", "Status", "Tests"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, suite := range v.Suites {
		table.Append([]string{suite.Name, r.statusLabel(suite.Status), strconv.Itoa(suite.TestCount)})
	}

	table.Render()
	b.WriteString(suites.String())

	if len(v.FailedTests) == 0 {
		return b.String()
	}

	b.WriteString("\nFailed tests:\n")

	var failed bytes.Buffer

	table = tablewriter.NewWriter(&failed)
	table.SetHeader([]string{"Suite", "Test", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, ref := range v.FailedTests {
		table.Append([]string{ref.Suite, ref.Name, r.statusLabel(ref.Status)})
	}

	table.Render()
	b.WriteString(failed.String())

	return b.String()
}

func (r renderer) compact(v *m.CompactView) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d | Not passed %d | Showing %s\n",
		r.statusLabel(m.StatusPassed), v.Overview.TotalPassed, v.Overview.TotalFailed, v.Overview.Showing)

	for _, suite := range v.Suites {
		fmt.Fprintf(&b, "\n%s [%s]\n", suite.Name, r.statusLabel(suite.Status))

		for _, tc := range suite.TestCases {
			fmt.Fprintf(&b, "  - %s [%s]\n", tc.Name, r.statusLabel(tc.Status))

			for _, step := range tc.FailedSteps {
				fmt.Fprintf(&b, "      x %s\n", step)
			}
		}
	}

	return b.String()
}

func (r renderer) detailed(v *m.DetailedView) string {
	var b strings.Builder

	if v.Warning != "" {
		fmt.Fprintf(&b, "Warning: %s\n", v.Warning)
	}

	fmt.Fprintf(&b, "%s\n", v.Note)

	for _, suite := range v.Suites {
		fmt.Fprintf(&b, "\n%s [%s]\n", suite.Name, r.statusLabel(suite.Status))

		for _, tc := range suite.TestCases {
			name := tc.Title
			if name == "" {
				name = tc.Name
			}

			if tc.Severity != "" {
				fmt.Fprintf(&b, "  - %s [%s] (%s)\n", name, r.statusLabel(tc.Status), tc.Severity)
			} else {
				fmt.Fprintf(&b, "  - %s [%s]\n", name, r.statusLabel(tc.Status))
			}

			r.steps(&b, tc.Steps, 2)
		}
	}

	return b.String()
}

func (r renderer) steps(b *strings.Builder, steps []m.DetailedStep, indent int) {
	pad := strings.Repeat("  ", indent)

	for _, step := range steps {
		if step.Status == m.StatusTruncated {
			fmt.Fprintf(b, "%s%s\n", pad, step.Name)
			continue
		}

		fmt.Fprintf(b, "%s%s [%s]\n", pad, step.Name, r.statusLabel(step.Status))
		r.steps(b, step.Steps, indent+1)
	}
}

func (r renderer) diff(left, right m.Path, diff string) string {
	if diff == "" {
		return fmt.Sprintf("No differences between %s and %s\n", left, right)
	}

	return diff
}
