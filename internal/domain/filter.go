package domain

import (
	"context"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// ValidateStatusFilter accepts the empty status (no filter) or any recognized status.
func ValidateStatusFilter(status m.Status) error {
	if status == "" || status.IsValid() {
		return nil
	}

	return &InvalidArgumentError{Name: "status filter", Value: string(status), Allowed: statusNames(m.Statuses)}
}

// FilterByStatus returns a new tree keeping only test cases with the given
// status. Suites left without test cases are dropped; the rest keep their
// order and get status and span recomputed from the cases that remain.
// The input tree is not modified.
func FilterByStatus(tree *m.Tree, status m.Status, priority []m.Status) *m.Tree {
	filtered := &m.Tree{
		Metadata: tree.Metadata,
		Suites:   make([]m.Suite, 0, len(tree.Suites)),
	}

	for _, suite := range tree.Suites {
		cases := make([]m.TestCase, 0, len(suite.TestCases))

		for _, tc := range suite.TestCases {
			if tc.Status == status {
				cases = append(cases, tc)
			}
		}

		if len(cases) == 0 {
			continue
		}

		kept := newSuite(suite.Name, cases, priority)
		kept.Description = suite.Description
		filtered.Suites = append(filtered.Suites, kept)
	}

	return filtered
}

// filteredParser applies FilterByStatus to whatever its inner parser returns.
type filteredParser struct {
	Parser
	status   m.Status
	priority []m.Status
}

func (p *filteredParser) Parse(ctx context.Context) (*m.Tree, error) {
	tree, err := p.Parser.Parse(ctx)
	if err != nil {
		return nil, err
	}

	return FilterByStatus(tree, p.status, p.priority), nil
}
