package domain

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/huixin2022/allure-analysis-mcp/internal/adapter"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// Allure on-disk naming conventions.
const (
	reportDataDir       = "data"
	reportSuitesFile    = "suites.json"
	reportTestCasesDir  = "test-cases"
	resultFileSuffix    = "-result.json"
	containerFileSuffix = "-container.json"
)

// Detector classifies a directory as one of the two Allure layouts.
type Detector interface {
	// Detect returns SourceReport or SourceResults, or fails with
	// *NotFoundError or *InvalidFormatError. It never reads file bodies.
	Detect(dir m.Path) (m.SourceType, error)
}

type detector struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewDetector constructs a Detector backed by the provided filesystem adapter.
func NewDetector(fsAdapter adapter.SourceFSAdapter) Detector {
	return &detector{fsAdapter: fsAdapter}
}

func (d *detector) Detect(dir m.Path) (m.SourceType, error) {
	info, err := d.fsAdapter.FileInfo(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Path: dir}
		}

		return "", &InvalidFormatError{Path: dir, Reason: "cannot inspect path", Cause: err}
	}

	if !info.IsDir() {
		return "", &InvalidFormatError{Path: dir, Reason: "path is not a directory"}
	}

	suitesPath := d.fsAdapter.JoinPath(string(dir), reportDataDir, reportSuitesFile)
	if suitesInfo, err := d.fsAdapter.FileInfo(suitesPath); err == nil && !suitesInfo.IsDir() {
		slog.Debug("Detected allure-report layout", "path", dir)
		return m.SourceReport, nil
	}

	results, err := d.fsAdapter.ListFiles(dir, resultFileSuffix)
	if err != nil {
		return "", &InvalidFormatError{Path: dir, Reason: "cannot list directory", Cause: err}
	}

	if len(results) > 0 {
		slog.Debug("Detected allure-results layout", "path", dir, "results", len(results))
		return m.SourceResults, nil
	}

	return "", &InvalidFormatError{Path: dir, Reason: "no data/suites.json and no *-result.json files"}
}
