package domain

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/huixin2022/allure-analysis-mcp/internal/adapter"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// Labels consulted, in order, when inferring a suite name.
var suiteLabelNames = []string{"suite", "parentSuite", "package"}

// ResultsParser rebuilds the suite tree from a flat allure-results directory
// of independent *-result.json records.
type ResultsParser struct {
	dir       m.Path
	fsAdapter adapter.SourceFSAdapter
	config    Config
}

// NewResultsParser constructs a ResultsParser for a directory already detected as results.
func NewResultsParser(dir m.Path, fsAdapter adapter.SourceFSAdapter, config Config) *ResultsParser {
	return &ResultsParser{
		dir:       dir,
		fsAdapter: fsAdapter,
		config:    config,
	}
}

// suiteGroup collects the test cases sharing one inferred suite name.
type suiteGroup struct {
	name  string
	cases []m.TestCase
}

// Parse implements Parser.
//
// Records are loaded in file-name order and grouped by inferred suite name.
// Suites are emitted in first-seen order and keep their cases in load order.
func (p *ResultsParser) Parse(ctx context.Context) (*m.Tree, error) {
	resultPaths, err := p.fsAdapter.ListFiles(p.dir, resultFileSuffix)
	if err != nil {
		return nil, &InvalidFormatError{Path: p.dir, Reason: "cannot list result files", Cause: err}
	}

	results, err := readJSONFiles[resultRecord](ctx, p.fsAdapter, resultPaths, p.config.workers())
	if err != nil {
		return nil, err
	}

	var (
		groups  []*suiteGroup
		byName  = map[string]*suiteGroup{}
		seen    = map[string]bool{}
		records = 0
	)

	for i, result := range results {
		if !result.ok {
			continue
		}

		key := result.value.UUID
		if key == "" {
			key = strings.TrimSuffix(filepath.Base(string(resultPaths[i])), resultFileSuffix)
		}

		if seen[key] {
			slog.Warn("Skipping duplicate result record", "path", resultPaths[i], "uuid", key)
			continue
		}

		seen[key] = true
		records++

		tc := resultToTestCase(result.value)
		name := inferSuiteName(tc.Labels, tc.Name, p.config.DefaultSuiteName)

		group, ok := byName[name]
		if !ok {
			group = &suiteGroup{name: name}
			byName[name] = group
			groups = append(groups, group)
		}

		group.cases = append(group.cases, tc)
	}

	if records == 0 {
		return nil, &InvalidFormatError{Path: p.dir, Reason: "no parseable *-result.json files"}
	}

	p.inspectContainers(ctx, seen)

	suites := make([]m.Suite, 0, len(groups))
	for _, group := range groups {
		suites = append(suites, newSuite(group.name, group.cases, p.config.StatusPriority))
	}

	slog.Debug("Parsed allure-results", "path", p.dir, "records", records, "suites", len(suites))

	return &m.Tree{
		Metadata: m.Metadata{SourceType: m.SourceResults, SourcePath: string(p.dir)},
		Suites:   suites,
	}, nil
}

// inspectContainers loads the *-container.json files. Containers only carry
// fixture context, so they are reported but never change the tree.
func (p *ResultsParser) inspectContainers(ctx context.Context, results map[string]bool) {
	paths, err := p.fsAdapter.ListFiles(p.dir, containerFileSuffix)
	if err != nil {
		slog.Warn("Cannot list container files", "path", p.dir, "error", err)
		return
	}

	containers, err := readJSONFiles[containerRecord](ctx, p.fsAdapter, paths, p.config.workers())
	if err != nil {
		slog.Warn("Cannot load container files", "path", p.dir, "error", err)
		return
	}

	loaded, fixtures := 0, 0
	referenced := map[string]bool{}

	for _, container := range containers {
		if !container.ok {
			continue
		}

		loaded++
		fixtures += len(container.value.Befores) + len(container.value.Afters)

		for _, child := range container.value.Children {
			if results[child] {
				referenced[child] = true
			}
		}
	}

	slog.Debug("Loaded containers",
		"path", p.dir,
		"containers", loaded,
		"fixtures", fixtures,
		"referenced_results", len(referenced),
		"orphan_results", len(results)-len(referenced),
	)
}

// inferSuiteName returns the first non-empty of the suite, parentSuite and
// package labels, the dotted prefix of fullName, or defaultName.
func inferSuiteName(labels []m.Label, fullName, defaultName string) string {
	for _, name := range suiteLabelNames {
		if value := labelValue(labels, name); value != "" {
			return value
		}
	}

	if idx := strings.LastIndex(fullName, "."); idx > 0 {
		return fullName[:idx]
	}

	return defaultName
}

func resultToTestCase(r resultRecord) m.TestCase {
	labels := mapLabels(r.Labels)

	return m.TestCase{
		Name:        string(r.FullName),
		Title:       string(r.Name),
		Description: string(r.Description),
		Severity:    m.NormalizeSeverity(labelValue(labels, "severity")),
		Status:      m.NormalizeStatus(r.Status),
		Start:       string(r.Start),
		Stop:        string(r.Stop),
		Labels:      labels,
		Parameters:  mapParameters(r.Parameters),
		Steps:       mapResultSteps(r.Steps),
	}
}
