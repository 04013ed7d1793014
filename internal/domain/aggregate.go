package domain

import (
	"strconv"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// AggregateStatus rolls test case statuses up into a suite status.
//
// The first status of priority found among the cases wins. When none is
// found the suite is passed only if every case passed; an empty suite, or
// one mixing passed with unknown, is unknown.
func AggregateStatus(cases []m.TestCase, priority []m.Status) m.Status {
	if len(cases) == 0 {
		return m.StatusUnknown
	}

	present := make(map[m.Status]bool, len(cases))
	for _, tc := range cases {
		present[tc.Status] = true
	}

	for _, status := range priority {
		if present[status] {
			return status
		}
	}

	if len(present) == 1 && present[m.StatusPassed] {
		return m.StatusPassed
	}

	return m.StatusUnknown
}

// suiteSpan returns min(start) and max(stop) over the cases that carry
// numeric timestamps. Either bound is empty when no case provides it.
func suiteSpan(cases []m.TestCase) (string, string) {
	var (
		start, stop       int64
		hasStart, hasStop bool
	)

	for _, tc := range cases {
		if v, err := strconv.ParseInt(tc.Start, 10, 64); err == nil && (!hasStart || v < start) {
			start, hasStart = v, true
		}

		if v, err := strconv.ParseInt(tc.Stop, 10, 64); err == nil && (!hasStop || v > stop) {
			stop, hasStop = v, true
		}
	}

	var startStr, stopStr string
	if hasStart {
		startStr = strconv.FormatInt(start, 10)
	}

	if hasStop {
		stopStr = strconv.FormatInt(stop, 10)
	}

	return startStr, stopStr
}

// newSuite builds a suite whose status and span are derived from cases.
func newSuite(name string, cases []m.TestCase, priority []m.Status) m.Suite {
	start, stop := suiteSpan(cases)

	return m.Suite{
		Name:      name,
		Status:    AggregateStatus(cases, priority),
		Start:     start,
		Stop:      stop,
		TestCases: cases,
	}
}
