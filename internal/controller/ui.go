// Package controller provides output adapters for displaying parsed Allure results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// UI defines how command results reach the user.
// Implementations can use different output methods (encoded data, tables, TUI).
type UI interface {
	DisplayDetection(ctx context.Context, path m.Path, sourceType m.SourceType) error
	DisplayTree(ctx context.Context, tree *m.Tree) error
	DisplayView(ctx context.Context, view m.View) error
	DisplayDiff(ctx context.Context, left, right m.Path, diff string) error
}

// NewUI returns the UI for format writing to cmd's output. The TUI needs a
// terminal; without one it degrades to the table UI.
func NewUI(cmd *cobra.Command, format m.Format, tty bool) UI {
	switch format {
	case m.FormatTable:
		return NewSimpleUI(cmd)
	case m.FormatTUI:
		if !tty {
			return NewSimpleUI(cmd)
		}

		return NewTUI(cmd.OutOrStdout(), true)
	case m.FormatYAML:
		return NewEncoderUI(cmd.OutOrStdout(), m.FormatYAML)
	case m.FormatJSON:
	}

	return NewEncoderUI(cmd.OutOrStdout(), m.FormatJSON)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
