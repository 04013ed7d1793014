package domain

import (
	"fmt"
	"log/slog"

	"github.com/huixin2022/allure-analysis-mcp/internal/adapter"
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// ParserFactory picks the parser matching a directory's layout.
type ParserFactory interface {
	// Create detects the layout of dir and returns a parser for it. A
	// non-empty statusFilter makes the parser drop every other test case.
	// Detection errors are returned unchanged.
	Create(dir m.Path, statusFilter m.Status) (Parser, error)
}

type parserFactory struct {
	Detector
	fsAdapter adapter.SourceFSAdapter
	config    Config
}

// NewParserFactory constructs a ParserFactory backed by the provided
// filesystem adapter and parser configuration.
func NewParserFactory(fsAdapter adapter.SourceFSAdapter, config Config) ParserFactory {
	return &parserFactory{
		Detector:  NewDetector(fsAdapter),
		fsAdapter: fsAdapter,
		config:    config,
	}
}

func (f *parserFactory) Create(dir m.Path, statusFilter m.Status) (Parser, error) {
	if err := ValidateStatusFilter(statusFilter); err != nil {
		return nil, err
	}

	if err := f.config.Validate(); err != nil {
		return nil, fmt.Errorf("parser config: %w", err)
	}

	sourceType, err := f.Detect(dir)
	if err != nil {
		return nil, err
	}

	var parser Parser

	switch sourceType {
	case m.SourceReport:
		parser = NewReportParser(dir, f.fsAdapter, f.config)
	case m.SourceResults:
		parser = NewResultsParser(dir, f.fsAdapter, f.config)
	default:
		return nil, &InvalidFormatError{Path: dir, Reason: fmt.Sprintf("unsupported layout %q", sourceType)}
	}

	slog.Debug("Created parser", "path", dir, "source_type", sourceType, "status_filter", statusFilter)

	if statusFilter == "" {
		return parser, nil
	}

	return &filteredParser{Parser: parser, status: statusFilter, priority: f.config.StatusPriority}, nil
}
