package adapter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
	"gopkg.in/yaml.v3"
)

// ReportStore persists parsed trees and views.
type ReportStore interface {
	// SaveReport encodes v in the given format and writes it to path,
	// creating parent directories as needed.
	SaveReport(path m.Path, v any, format m.Format) error
}

// LocalReportStore writes reports to the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport implements ReportStore.
func (s *LocalReportStore) SaveReport(path m.Path, v any, format m.Format) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	// #nosec G304 - output path is chosen by the user on the command line
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	if err := Encode(f, v, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes v to w as indented JSON or as YAML.
// Formats other than YAML fall back to JSON.
func Encode(w io.Writer, v any, format m.Format) error {
	if format == m.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}
