package domain

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

func TestResultsParser_Parse_Fixture(t *testing.T) {
	tree, err := NewResultsParser(resultsFixture, localFS(), DefaultConfig()).Parse(context.Background())
	require.NoError(t, err)

	assert.Equal(t, m.Metadata{SourceType: m.SourceResults, SourcePath: resultsFixture}, tree.Metadata)
	assert.Equal(t, []string{"tests.test_login", "Cart"}, suiteNames(tree))

	login := tree.Suites[0]
	assert.Equal(t, m.StatusFailed, login.Status)
	assert.Equal(t, "1000", login.Start)
	assert.Equal(t, "2400", login.Stop)
	assert.Equal(t, []string{"tests.test_login.test_valid_login", "tests.test_login.test_invalid_password"}, caseNames(login))

	invalid := login.TestCases[1]
	assert.Equal(t, "test_invalid_password", invalid.Title)
	assert.Equal(t, "Rejects a wrong password", invalid.Description)
	assert.Equal(t, m.SeverityCritical, invalid.Severity)
	assert.Equal(t, []m.Parameter{{Name: "password", Value: "hunter2"}, {Name: "attempts", Value: "3"}}, invalid.Parameters)
	require.Len(t, invalid.Steps, 2)
	assert.Equal(t, "submit credentials", invalid.Steps[1].Title)
	assert.Equal(t, []m.Attachment{{Name: "screenshot", Source: "a2-attachment.png", Type: "image/png"}}, invalid.Steps[1].Attachments)
	require.Len(t, invalid.Steps[1].Steps, 2)
	assert.Equal(t, m.StatusFailed, invalid.Steps[1].Steps[1].Status)
	assert.NotNil(t, invalid.Steps[0].Attachments)
	assert.NotNil(t, invalid.Steps[0].Steps)

	cart := tree.Suites[1]
	assert.Equal(t, m.StatusBroken, cart.Status)
	assert.Equal(t, []string{"shop.cart.test_add_item"}, caseNames(cart))
	assert.NotNil(t, cart.TestCases[0].Parameters)
	assert.NotNil(t, cart.TestCases[0].Steps)
}

func TestResultsParser_Parse_PrefixGrouping(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "1-result.json"), resultJSON("1", "tests.test_login.test_ok", m.StatusPassed))
	writeFile(t, filepath.Join(dir, "2-result.json"), resultJSON("2", "tests.test_login.test_bad", m.StatusFailed))

	tree, err := NewResultsParser(m.Path(dir), localFS(), DefaultConfig()).Parse(context.Background())
	require.NoError(t, err)

	require.Len(t, tree.Suites, 1)
	assert.Equal(t, "tests.test_login", tree.Suites[0].Name)
	assert.Equal(t, m.StatusFailed, tree.Suites[0].Status)
	assert.Len(t, tree.Suites[0].TestCases, 2)
}

func TestInferSuiteName(t *testing.T) {
	tests := []struct {
		name     string
		labels   []m.Label
		fullName string
		want     string
	}{
		{"suite label", []m.Label{{Name: "suite", Value: "S"}, {Name: "parentSuite", Value: "P"}}, "a.b.c", "S"},
		{"parentSuite label", []m.Label{{Name: "parentSuite", Value: "P"}, {Name: "package", Value: "pkg"}}, "a.b.c", "P"},
		{"package label", []m.Label{{Name: "package", Value: "pkg"}}, "a.b.c", "pkg"},
		{"empty labels are ignored", []m.Label{{Name: "suite", Value: ""}}, "a.b.c", "a.b"},
		{"dotted prefix", nil, "tests.test_login.test_ok", "tests.test_login"},
		{"no dot", nil, "test_ok", DefaultSuiteName},
		{"leading dot only", nil, ".hidden", DefaultSuiteName},
		{"empty name", nil, "", DefaultSuiteName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferSuiteName(tt.labels, tt.fullName, DefaultSuiteName))
		})
	}
}

func TestResultsParser_Parse_FallbackChain(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "1-result.json"), resultJSON("1", "a.b.one", m.StatusPassed, "suite", "Labelled"))
	writeFile(t, filepath.Join(dir, "2-result.json"), resultJSON("2", "a.b.two", m.StatusPassed, "parentSuite", "Parent"))
	writeFile(t, filepath.Join(dir, "3-result.json"), resultJSON("3", "a.b.three", m.StatusPassed, "package", "pkg"))
	writeFile(t, filepath.Join(dir, "4-result.json"), resultJSON("4", "a.b.four", m.StatusPassed))
	writeFile(t, filepath.Join(dir, "5-result.json"), resultJSON("5", "five", m.StatusPassed))

	tree, err := NewResultsParser(m.Path(dir), localFS(), DefaultConfig()).Parse(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Labelled", "Parent", "pkg", "a.b", DefaultSuiteName}, suiteNames(tree))
}

// Every parseable record lands in exactly one suite.
func TestResultsParser_Parse_GroupingCompleteness(t *testing.T) {
	dir := t.TempDir()

	const records = 40
	for i := range records {
		suite := fmt.Sprintf("suite%d", i%7)
		writeFile(t, filepath.Join(dir, fmt.Sprintf("%03d-result.json", i)),
			resultJSON(fmt.Sprintf("u%d", i), fmt.Sprintf("pkg.%s.case%d", suite, i), m.Statuses[i%len(m.Statuses)]))
	}

	config := DefaultConfig()
	config.Workers = 4

	tree, err := NewResultsParser(m.Path(dir), localFS(), config).Parse(context.Background())
	require.NoError(t, err)

	assert.Equal(t, records, tree.TestCaseCount())
	assert.Len(t, tree.Suites, 7)

	seen := map[string]bool{}
	for _, suite := range tree.Suites {
		assert.NotEmpty(t, suite.TestCases)

		for _, tc := range suite.TestCases {
			assert.False(t, seen[tc.Name], "duplicate %s", tc.Name)
			seen[tc.Name] = true
		}
	}
}

func TestResultsParser_Parse_WorkersDoNotChangeOutput(t *testing.T) {
	dir := t.TempDir()
	for i := range 25 {
		writeFile(t, filepath.Join(dir, fmt.Sprintf("%02d-result.json", i)),
			resultJSON(fmt.Sprintf("u%d", i), fmt.Sprintf("pkg.s%d.c%d", i%3, i), m.StatusPassed))
	}

	sequential, err := NewResultsParser(m.Path(dir), localFS(), DefaultConfig()).Parse(context.Background())
	require.NoError(t, err)

	config := DefaultConfig()
	config.Workers = 8

	parallel, err := NewResultsParser(m.Path(dir), localFS(), config).Parse(context.Background())
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

func TestResultsParser_Parse_SkipsMalformedAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "1-result.json"), resultJSON("same", "pkg.s.first", m.StatusPassed))
	writeFile(t, filepath.Join(dir, "2-result.json"), resultJSON("same", "pkg.s.second", m.StatusFailed))
	writeFile(t, filepath.Join(dir, "3-result.json"), `{"uuid":`)
	writeFile(t, filepath.Join(dir, "4-result.json"), `{"fullName":"pkg.s.no_uuid","status":"skipped","start":"soon"}`)

	tree, err := NewResultsParser(m.Path(dir), localFS(), DefaultConfig()).Parse(context.Background())
	require.NoError(t, err)

	require.Len(t, tree.Suites, 1)
	assert.Equal(t, []string{"pkg.s.first", "pkg.s.no_uuid"}, caseNames(tree.Suites[0]))
	assert.Empty(t, tree.Suites[0].TestCases[1].Start)
	assert.Equal(t, m.StatusSkipped, tree.Suites[0].Status)
}

func TestResultsParser_Parse_NoRecords(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{"empty directory", nil},
		{"only containers", map[string]string{"c-container.json": `{"children":[]}`}},
		{"only malformed results", map[string]string{"x-result.json": "nope"}},
		{"only null results", map[string]string{"x-result.json": "null", "y-result.json": "[]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, body := range tt.files {
				writeFile(t, filepath.Join(dir, name), body)
			}

			tree, err := NewResultsParser(m.Path(dir), localFS(), DefaultConfig()).Parse(context.Background())
			assert.Nil(t, tree)

			var invalid *InvalidFormatError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

// Suite status does not depend on the order test cases were recorded in.
func TestResultsParser_Parse_StatusIgnoresOrder(t *testing.T) {
	statuses := []m.Status{m.StatusSkipped, m.StatusPassed, m.StatusBroken, m.StatusFailed}
	orders := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}}

	for _, order := range orders {
		t.Run(fmt.Sprint(order), func(t *testing.T) {
			dir := t.TempDir()
			for pos, idx := range order {
				writeFile(t, filepath.Join(dir, fmt.Sprintf("%d-result.json", pos)),
					resultJSON(fmt.Sprintf("u%d", idx), fmt.Sprintf("pkg.s.c%d", idx), statuses[idx]))
			}

			tree, err := NewResultsParser(m.Path(dir), localFS(), DefaultConfig()).Parse(context.Background())
			require.NoError(t, err)
			require.Len(t, tree.Suites, 1)
			assert.Equal(t, m.StatusFailed, tree.Suites[0].Status)
		})
	}
}

func TestResultsParser_Parse_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewResultsParser(resultsFixture, localFS(), DefaultConfig()).Parse(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// Bodies that are not objects never count as records.
func TestResultsParser_Parse_SkipsNullRecords(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "1-result.json"), resultJSON("1", "pkg.s.ok", m.StatusPassed))
	writeFile(t, filepath.Join(dir, "2-result.json"), "null")

	tree, err := NewResultsParser(m.Path(dir), localFS(), DefaultConfig()).Parse(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, tree.TestCaseCount())
	assert.Equal(t, []string{"pkg.s"}, suiteNames(tree))
	assert.Equal(t, m.StatusPassed, tree.Suites[0].Status)
}
