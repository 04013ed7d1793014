package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// SimpleUI implements UI by printing plain tables to the cobra command output.
type SimpleUI struct {
	cmd *cobra.Command
	renderer
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, renderer: newPlainRenderer()}
}

// DisplayDetection prints the detected layout of path.
func (s *SimpleUI) DisplayDetection(ctx context.Context, path m.Path, sourceType m.SourceType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(s.detection(path, sourceType))
}

// DisplayTree prints a per-suite table of the tree.
func (s *SimpleUI) DisplayTree(ctx context.Context, tree *m.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(s.tree(tree))
}

// DisplayView prints a projected view.
func (s *SimpleUI) DisplayView(ctx context.Context, view m.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(s.view(view))
}

// DisplayDiff prints the unified diff, or a note that the trees match.
func (s *SimpleUI) DisplayDiff(ctx context.Context, left, right m.Path, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.print(s.diff(left, right, diff))
}

func (s *SimpleUI) print(text string) error {
	_, err := fmt.Fprint(s.cmd.OutOrStdout(), text)
	return err
}
