package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huixin2022/allure-analysis-mcp/internal/adapter"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

const (
	resultsFixture = "testdata/allure-results"
	reportFixture  = "testdata/allure-report"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

// resultJSON renders a minimal *-result.json body.
func resultJSON(uuid, fullName string, status m.Status, labels ...string) string {
	var pairs string
	for i := 0; i+1 < len(labels); i += 2 {
		if pairs != "" {
			pairs += ","
		}

		pairs += `{"name":"` + labels[i] + `","value":"` + labels[i+1] + `"}`
	}

	return `{"uuid":"` + uuid + `","name":"` + uuid + `","fullName":"` + fullName +
		`","status":"` + string(status) + `","labels":[` + pairs + `]}`
}

func localFS() adapter.SourceFSAdapter {
	return adapter.NewLocalSourceFSAdapter()
}

func suiteNames(tree *m.Tree) []string {
	names := make([]string, 0, len(tree.Suites))
	for _, suite := range tree.Suites {
		names = append(names, suite.Name)
	}

	return names
}

func caseNames(suite m.Suite) []string {
	names := make([]string, 0, len(suite.TestCases))
	for _, tc := range suite.TestCases {
		names = append(names, tc.Name)
	}

	return names
}
