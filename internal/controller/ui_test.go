package controller

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

func TestNewUI(t *testing.T) {
	cmd, _ := newBufferedCmd()

	tests := []struct {
		name   string
		format m.Format
		tty    bool
		check  func(t *testing.T, ui UI)
	}{
		{"table", m.FormatTable, false, func(t *testing.T, ui UI) { assert.IsType(t, &SimpleUI{}, ui) }},
		{"tui with terminal", m.FormatTUI, true, func(t *testing.T, ui UI) { assert.IsType(t, &TUI{}, ui) }},
		{"tui without terminal", m.FormatTUI, false, func(t *testing.T, ui UI) { assert.IsType(t, &SimpleUI{}, ui) }},
		{"yaml", m.FormatYAML, false, func(t *testing.T, ui UI) {
			require.IsType(t, &EncoderUI{}, ui)
			assert.Equal(t, m.FormatYAML, ui.(*EncoderUI).format)
		}},
		{"json", m.FormatJSON, true, func(t *testing.T, ui UI) {
			require.IsType(t, &EncoderUI{}, ui)
			assert.Equal(t, m.FormatJSON, ui.(*EncoderUI).format)
		}},
		{"unknown falls back to json", "xml", false, func(t *testing.T, ui UI) {
			require.IsType(t, &EncoderUI{}, ui)
			assert.Equal(t, m.FormatJSON, ui.(*EncoderUI).format)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NewUI(cmd, tt.format, tt.tty))
		})
	}
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.False(t, IsTTY(f))
}
