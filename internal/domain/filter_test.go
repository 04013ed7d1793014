package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

type stubParser struct {
	tree *m.Tree
	err  error
}

func (p stubParser) Parse(context.Context) (*m.Tree, error) {
	return p.tree, p.err
}

func filterTree() *m.Tree {
	return &m.Tree{
		Metadata: m.Metadata{SourceType: m.SourceResults, SourcePath: "/results"},
		Suites: []m.Suite{
			{
				Name:        "login",
				Description: "login flows",
				Status:      m.StatusFailed,
				Start:       "100",
				Stop:        "900",
				TestCases: []m.TestCase{
					{Name: "login.ok", Status: m.StatusPassed, Start: "100", Stop: "200"},
					{Name: "login.bad", Status: m.StatusFailed, Start: "300", Stop: "900"},
					{Name: "login.ok2", Status: m.StatusPassed, Start: "250", Stop: "400"},
				},
			},
			{
				Name:      "cart",
				Status:    m.StatusBroken,
				TestCases: []m.TestCase{{Name: "cart.add", Status: m.StatusBroken}},
			},
		},
	}
}

func TestFilterByStatus(t *testing.T) {
	tree := filterTree()
	original := filterTree()

	filtered := FilterByStatus(tree, m.StatusPassed, DefaultStatusPriority())

	require.Len(t, filtered.Suites, 1)
	suite := filtered.Suites[0]
	assert.Equal(t, "login", suite.Name)
	assert.Equal(t, "login flows", suite.Description)
	assert.Equal(t, m.StatusPassed, suite.Status)
	assert.Equal(t, "100", suite.Start)
	assert.Equal(t, "400", suite.Stop)
	assert.Equal(t, []string{"login.ok", "login.ok2"}, caseNames(suite))
	assert.Equal(t, tree.Metadata, filtered.Metadata)

	assert.Equal(t, original, tree, "input tree must not change")
}

func TestFilterByStatus_NoMatches(t *testing.T) {
	filtered := FilterByStatus(filterTree(), m.StatusSkipped, DefaultStatusPriority())

	assert.NotNil(t, filtered.Suites)
	assert.Empty(t, filtered.Suites)
}

// Every surviving case has the requested status and no suite is left empty.
func TestFilterByStatus_Invariants(t *testing.T) {
	for _, status := range m.Statuses {
		t.Run(string(status), func(t *testing.T) {
			filtered := FilterByStatus(filterTree(), status, DefaultStatusPriority())

			for _, suite := range filtered.Suites {
				require.NotEmpty(t, suite.TestCases)

				for _, tc := range suite.TestCases {
					assert.Equal(t, status, tc.Status)
				}
			}
		})
	}
}

func TestValidateStatusFilter(t *testing.T) {
	for _, status := range append([]m.Status{""}, m.Statuses...) {
		assert.NoError(t, ValidateStatusFilter(status), "status %q", status)
	}

	err := ValidateStatusFilter("flaky")

	var invalid *InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "flaky", invalid.Value)
	assert.Contains(t, err.Error(), "passed, failed, broken, skipped, unknown")
}

func TestFilteredParser_Parse(t *testing.T) {
	parser := &filteredParser{
		Parser:   stubParser{tree: filterTree()},
		status:   m.StatusBroken,
		priority: DefaultStatusPriority(),
	}

	tree, err := parser.Parse(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cart"}, suiteNames(tree))

	boom := errors.New("boom")
	parser.Parser = stubParser{err: boom}

	tree, err = parser.Parse(context.Background())
	assert.Nil(t, tree)
	assert.ErrorIs(t, err, boom)
}
