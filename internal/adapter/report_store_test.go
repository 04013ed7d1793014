package adapter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

func sampleTree() *m.Tree {
	return &m.Tree{
		Metadata: m.Metadata{SourceType: m.SourceResults, SourcePath: "results"},
		Suites: []m.Suite{
			{
				Name:   "Checkout <fast>",
				Status: m.StatusPassed,
				TestCases: []m.TestCase{
					{
						Name:       "shop.Checkout.pay",
						Title:      "pay",
						Status:     m.StatusPassed,
						Labels:     []m.Label{},
						Parameters: []m.Parameter{},
						Steps:      []m.Step{},
					},
				},
			},
		},
	}
}

func TestEncode_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleTree(), m.FormatJSON))

	out := buf.String()
	assert.Contains(t, out, `"_metadata"`)
	assert.Contains(t, out, `"test-suites"`)
	assert.Contains(t, out, `"test-cases"`)
	assert.Contains(t, out, "Checkout <fast>", "HTML characters are not escaped")
	assert.NotContains(t, out, `"start"`, "absent timestamps are omitted")

	var decoded m.Tree
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleTree(), decoded)
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleTree(), m.FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "_metadata:")
	assert.Contains(t, out, "test-suites:")
	assert.Contains(t, out, "source_type: results")

	var decoded m.Tree
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleTree(), decoded)
}

func TestEncode_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, map[string]int{"a": 1}, m.FormatTable))

	assert.JSONEq(t, `{"a":1}`, buf.String())
}

func TestLocalReportStore_SaveReport(t *testing.T) {
	store := NewReportStore()
	path := filepath.Join(t.TempDir(), "nested", "dir", "tree.json")

	require.NoError(t, store.SaveReport(m.Path(path), sampleTree(), m.FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded m.Tree
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Checkout <fast>", decoded.Suites[0].Name)
}

func TestLocalReportStore_SaveReport_InvalidPath(t *testing.T) {
	store := NewReportStore()

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := store.SaveReport(m.Path(filepath.Join(blocker, "tree.json")), sampleTree(), m.FormatJSON)
	assert.Error(t, err)
}
