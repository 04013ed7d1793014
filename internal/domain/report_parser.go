package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/huixin2022/allure-analysis-mcp/internal/adapter"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// Parser turns one Allure directory into the canonical tree.
type Parser interface {
	Parse(ctx context.Context) (*m.Tree, error)
}

// ReportParser reads a generated allure-report directory: the suite index in
// data/suites.json plus one data/test-cases/<uid>.json file per test case.
type ReportParser struct {
	dir       m.Path
	fsAdapter adapter.SourceFSAdapter
	config    Config
}

// NewReportParser constructs a ReportParser for a directory already detected as a report.
func NewReportParser(dir m.Path, fsAdapter adapter.SourceFSAdapter, config Config) *ReportParser {
	return &ReportParser{
		dir:       dir,
		fsAdapter: fsAdapter,
		config:    config,
	}
}

// Parse implements Parser.
//
// Suites nested in the index are flattened, each emitted after the suites it
// contains. Test cases referenced from the index root land in the default
// suite. A missing or malformed test-case file drops only that test case.
func (p *ReportParser) Parse(ctx context.Context) (*m.Tree, error) {
	indexPath := p.fsAdapter.JoinPath(string(p.dir), reportDataDir, reportSuitesFile)

	data, err := p.fsAdapter.ReadFile(indexPath)
	if err != nil {
		return nil, &InvalidFormatError{Path: p.dir, Reason: "cannot read suite index", Cause: err}
	}

	var root suiteNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &InvalidFormatError{Path: p.dir, Reason: "malformed suite index", Cause: err}
	}

	root.Name = text(p.config.DefaultSuiteName)

	suites, err := p.collectSuites(ctx, root, make([]m.Suite, 0))
	if err != nil {
		return nil, err
	}

	slog.Debug("Parsed allure-report", "path", p.dir, "suites", len(suites))

	return &m.Tree{
		Metadata: m.Metadata{SourceType: m.SourceReport, SourcePath: string(p.dir)},
		Suites:   suites,
	}, nil
}

func (p *ReportParser) collectSuites(ctx context.Context, node suiteNode, suites []m.Suite) ([]m.Suite, error) {
	cases := make([]m.TestCase, 0, len(node.Children))

	for _, child := range node.Children {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if child.isSuite() {
			var err error

			suites, err = p.collectSuites(ctx, child, suites)
			if err != nil {
				return nil, err
			}

			continue
		}

		tc, err := p.loadTestCase(child.UID)
		if err != nil {
			slog.Warn("Skipping test case", "suite", string(node.Name), "uid", child.UID, "error", err)
			continue
		}

		cases = append(cases, tc)
	}

	if len(cases) == 0 {
		return suites, nil
	}

	name := string(node.Name)
	if name == "" {
		name = p.config.DefaultSuiteName
	}

	return append(suites, newSuite(name, cases, p.config.StatusPriority)), nil
}

func (p *ReportParser) loadTestCase(uid string) (m.TestCase, error) {
	if uid == "" {
		return m.TestCase{}, &MissingTestCaseError{}
	}

	// A uid names one file inside test-cases; anything else never resolves.
	if filepath.Base(uid) != uid || uid == "." || uid == ".." {
		return m.TestCase{}, &MissingTestCaseError{UID: uid}
	}

	path := p.fsAdapter.JoinPath(string(p.dir), reportDataDir, reportTestCasesDir, uid+".json")

	data, err := p.fsAdapter.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.TestCase{}, &MissingTestCaseError{UID: uid, Path: path}
		}

		return m.TestCase{}, fmt.Errorf("read test case %s: %w", uid, err)
	}

	var raw reportTestCase
	if err := decodeRecord(data, &raw); err != nil {
		return m.TestCase{}, fmt.Errorf("decode test case %s: %w", uid, err)
	}

	labels := mapLabels(raw.Labels)

	severity := m.NormalizeSeverity(labelValue(labels, "severity"))
	if severity == "" {
		severity = m.NormalizeSeverity(raw.Extra.Severity)
	}

	title := string(raw.Title)
	if title == "" {
		title = string(raw.Name)
	}

	return m.TestCase{
		Name:        string(raw.FullName),
		Title:       title,
		Description: string(raw.Description),
		Severity:    severity,
		Status:      m.NormalizeStatus(raw.Status),
		Start:       string(raw.Time.Start),
		Stop:        string(raw.Time.Stop),
		Labels:      labels,
		Parameters:  mapParameters(raw.Parameters),
		Steps:       mapReportSteps(raw.TestStage.Steps),
	}, nil
}
