package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

func TestMillis_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want millis
	}{
		{`1700000000000`, "1700000000000"},
		{`"1700000000000"`, "1700000000000"},
		{`1.5e3`, "1500"},
		{`-20`, "-20"},
		{`1e30`, ""},
		{`-1e30`, ""},
		{`"9.3e18"`, ""},
		{`null`, ""},
		{`"soon"`, ""},
		{`true`, ""},
		{`""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var got struct {
				Start millis `json:"start"`
			}

			require.NoError(t, json.Unmarshal([]byte(`{"start":`+tt.raw+`}`), &got))
			assert.Equal(t, tt.want, got.Start)
		})
	}
}

func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want text
	}{
		{`"hunter2"`, "hunter2"},
		{`3`, "3"},
		{`2.50`, "2.50"},
		{`false`, "false"},
		{`null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var got rawPair

			require.NoError(t, json.Unmarshal([]byte(`{"name":"p","value":`+tt.raw+`}`), &got))
			assert.Equal(t, tt.want, got.Value)
		})
	}
}

func TestSuiteNode_IsSuite(t *testing.T) {
	var root suiteNode
	require.NoError(t, json.Unmarshal([]byte(`{"name":"root","children":[{"uid":"x"},{"name":"empty","children":[]}]}`), &root))

	assert.True(t, root.isSuite())
	assert.False(t, root.Children[0].isSuite())
	assert.True(t, root.Children[1].isSuite(), "an empty children list still marks a suite")
}

func TestMapReportSteps_TitleFallback(t *testing.T) {
	steps := mapReportSteps([]reportStep{
		{Name: "raw", Title: "Pretty", Status: "passed"},
		{Name: "plain", Status: "weird"},
	})

	require.Len(t, steps, 2)
	assert.Equal(t, "Pretty", steps[0].Title)
	assert.Equal(t, "plain", steps[1].Title)
	assert.Equal(t, m.StatusUnknown, steps[1].Status)
}

func TestLabelValue(t *testing.T) {
	labels := []m.Label{{Name: "suite", Value: ""}, {Name: "suite", Value: "Second"}}

	assert.Equal(t, "Second", labelValue(labels, "suite"))
	assert.Empty(t, labelValue(labels, "package"))
}

func TestDecodeRecord_RejectsNonObjects(t *testing.T) {
	for _, body := range []string{"null", " null\n", "[]", `"text"`, "42", ""} {
		var record resultRecord
		assert.ErrorIs(t, decodeRecord([]byte(body), &record), errNotObject, "body %q", body)
	}

	var record resultRecord
	require.NoError(t, decodeRecord([]byte(" {\"uuid\":\"a\"}"), &record))
	assert.Equal(t, "a", record.UUID)
}
