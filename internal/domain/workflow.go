package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"github.com/huixin2022/allure-analysis-mcp/internal/adapter"
	"github.com/huixin2022/allure-analysis-mcp/internal/controller"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// DetectArgs contains the arguments for detecting a directory layout.
type DetectArgs struct {
	Path m.Path
}

// ParseArgs contains the arguments for parsing a directory into a tree.
type ParseArgs struct {
	Path         m.Path
	StatusFilter m.Status
	// Output, when set, receives the tree instead of the UI.
	Output m.Path
	// OutputFormat is the encoding used for Output; only YAML differs from JSON.
	OutputFormat m.Format
	Validate     bool
}

// ViewArgs contains the arguments for projecting a parsed tree.
type ViewArgs struct {
	Path         m.Path
	Mode         m.Mode
	StatusFilter m.Status
}

// DiffArgs contains the arguments for comparing two directories.
type DiffArgs struct {
	Left         m.Path
	Right        m.Path
	StatusFilter m.Status
}

// TreeValidator checks a parsed tree against its published schema.
type TreeValidator interface {
	ValidateTree(tree *m.Tree) error
}

// Workflow defines the commands offered on Allure directories.
type Workflow interface {
	Detect(ctx context.Context, args DetectArgs) error
	Parse(ctx context.Context, args ParseArgs) error
	View(ctx context.Context, args ViewArgs) error
	Diff(ctx context.Context, args DiffArgs) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	ParserFactory
	detector   Detector
	validator  TreeValidator
	viewConfig ViewConfig
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	factory ParserFactory,
	detector Detector,
	validator TreeValidator,
	viewConfig ViewConfig,
) Workflow {
	return &workflow{
		ReportStore:   reportStore,
		UI:            ui,
		ParserFactory: factory,
		detector:      detector,
		validator:     validator,
		viewConfig:    viewConfig,
	}
}

func (w *workflow) Detect(ctx context.Context, args DetectArgs) error {
	sourceType, err := w.detector.Detect(args.Path)
	if err != nil {
		slog.Error("Failed to detect layout", "path", args.Path, "error", err)
		return err
	}

	if err := w.DisplayDetection(ctx, args.Path, sourceType); err != nil {
		slog.Error("Failed to display detection", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Parse(ctx context.Context, args ParseArgs) error {
	tree, err := w.parse(ctx, args.Path, args.StatusFilter)
	if err != nil {
		return err
	}

	if args.Validate {
		if err := w.validator.ValidateTree(tree); err != nil {
			slog.Error("Parsed tree failed schema validation", "path", args.Path, "error", err)
			return fmt.Errorf("validate tree: %w", err)
		}
	}

	if args.Output != "" {
		if err := w.SaveReport(args.Output, tree, args.OutputFormat); err != nil {
			slog.Error("Failed to save tree", "output", args.Output, "error", err)
			return fmt.Errorf("save tree: %w", err)
		}

		slog.Info("Saved tree", "output", args.Output, "suites", len(tree.Suites), "test_cases", tree.TestCaseCount())

		return nil
	}

	if err := w.DisplayTree(ctx, tree); err != nil {
		slog.Error("Failed to display tree", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// View parses args.Path and displays it in args.Mode. The summary always
// covers the whole run, so the filter is only recorded there.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if err := ValidateMode(args.Mode); err != nil {
		slog.Error("Invalid view mode", "mode", args.Mode, "error", err)
		return err
	}

	if err := ValidateStatusFilter(args.StatusFilter); err != nil {
		slog.Error("Invalid status filter", "status", args.StatusFilter, "error", err)
		return err
	}

	parseFilter := args.StatusFilter
	if args.Mode == m.ModeSummary {
		parseFilter = ""
	}

	tree, err := w.parse(ctx, args.Path, parseFilter)
	if err != nil {
		return err
	}

	view, err := Project(tree, args.Mode, args.StatusFilter, w.viewConfig)
	if err != nil {
		slog.Error("Failed to project tree", "mode", args.Mode, "error", err)
		return err
	}

	if err := w.DisplayView(ctx, view); err != nil {
		slog.Error("Failed to display view", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Diff parses both directories concurrently and shows a unified diff of
// their suites. Source metadata is left out so identical runs compare equal.
func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	var left, right *m.Tree

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		tree, err := w.parse(groupCtx, args.Left, args.StatusFilter)
		left = tree

		return err
	})

	group.Go(func() error {
		tree, err := w.parse(groupCtx, args.Right, args.StatusFilter)
		right = tree

		return err
	})

	if err := group.Wait(); err != nil {
		return err
	}

	diff, err := diffSuites(left, right, args.Left, args.Right)
	if err != nil {
		slog.Error("Failed to diff trees", "error", err)
		return fmt.Errorf("diff: %w", err)
	}

	if err := w.DisplayDiff(ctx, args.Left, args.Right, diff); err != nil {
		slog.Error("Failed to display diff", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) parse(ctx context.Context, path m.Path, statusFilter m.Status) (*m.Tree, error) {
	parser, err := w.Create(path, statusFilter)
	if err != nil {
		slog.Error("Failed to create parser", "path", path, "error", err)
		return nil, err
	}

	tree, err := parser.Parse(ctx)
	if err != nil {
		slog.Error("Failed to parse", "path", path, "error", err)
		return nil, err
	}

	return tree, nil
}

// diffSuites returns the unified diff of the indented JSON of both suite
// lists, or the empty string when they are equal.
func diffSuites(left, right *m.Tree, leftName, rightName m.Path) (string, error) {
	a, err := json.MarshalIndent(left.Suites, "", "  ")
	if err != nil {
		return "", err
	}

	b, err := json.MarshalIndent(right.Suites, "", "  ")
	if err != nil {
		return "", err
	}

	if bytes.Equal(a, b) {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a) + "\n"),
		B:        difflib.SplitLines(string(b) + "\n"),
		FromFile: string(leftName),
		ToFile:   string(rightName),
		Context:  3,
	})
}
