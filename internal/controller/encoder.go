package controller

import (
	"context"
	"io"

	"github.com/huixin2022/allure-analysis-mcp/internal/adapter"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

type detection struct {
	Path       m.Path       `json:"path" yaml:"path"`
	SourceType m.SourceType `json:"source_type" yaml:"source_type"`
}

type diffResult struct {
	Left      m.Path `json:"left" yaml:"left"`
	Right     m.Path `json:"right" yaml:"right"`
	Identical bool   `json:"identical" yaml:"identical"`
	Diff      string `json:"diff" yaml:"diff"`
}

// EncoderUI writes results as JSON or YAML documents.
type EncoderUI struct {
	output io.Writer
	format m.Format
}

// NewEncoderUI creates an EncoderUI. Any format other than YAML encodes JSON.
func NewEncoderUI(output io.Writer, format m.Format) *EncoderUI {
	return &EncoderUI{output: output, format: format}
}

// DisplayDetection encodes the detected layout of path.
func (e *EncoderUI) DisplayDetection(ctx context.Context, path m.Path, sourceType m.SourceType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return adapter.Encode(e.output, detection{Path: path, SourceType: sourceType}, e.format)
}

// DisplayTree encodes the canonical tree.
func (e *EncoderUI) DisplayTree(ctx context.Context, tree *m.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return adapter.Encode(e.output, tree, e.format)
}

// DisplayView encodes a projected view.
func (e *EncoderUI) DisplayView(ctx context.Context, view m.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return adapter.Encode(e.output, view, e.format)
}

// DisplayDiff encodes the unified diff between two trees.
func (e *EncoderUI) DisplayDiff(ctx context.Context, left, right m.Path, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return adapter.Encode(e.output, diffResult{
		Left:      left,
		Right:     right,
		Identical: diff == "",
		Diff:      diff,
	}, e.format)
}
