package domain

import (
	m "github.com/huixin2022/allure-analysis-mcp/internal/model"
)

// DefaultSuiteName holds test cases whose suite cannot be inferred.
const DefaultSuiteName = "Default Suite"

// DefaultWorkers is the number of files read concurrently from a results directory.
const DefaultWorkers = 1

// Config carries the parser settings that would otherwise be package globals.
type Config struct {
	// DefaultSuiteName names the synthetic suite for test cases without one.
	DefaultSuiteName string
	// StatusPriority is the roll-up order: the first status present among a
	// suite's test cases becomes the suite status.
	StatusPriority []m.Status
	// Workers bounds concurrent record reads. Output order never depends on it.
	Workers int
}

// DefaultConfig returns the documented parser defaults.
func DefaultConfig() Config {
	return Config{
		DefaultSuiteName: DefaultSuiteName,
		StatusPriority:   DefaultStatusPriority(),
		Workers:          DefaultWorkers,
	}
}

// DefaultStatusPriority returns failed > broken > skipped.
func DefaultStatusPriority() []m.Status {
	return []m.Status{m.StatusFailed, m.StatusBroken, m.StatusSkipped}
}

// Validate checks that every configured value is usable.
func (c Config) Validate() error {
	if c.DefaultSuiteName == "" {
		return &InvalidArgumentError{Name: "default suite name", Value: "", Allowed: []string{"any non-empty name"}}
	}

	for _, status := range c.StatusPriority {
		if !status.IsValid() {
			return &InvalidArgumentError{Name: "status priority", Value: string(status), Allowed: statusNames(m.Statuses)}
		}
	}

	return nil
}

func (c Config) workers() int {
	if c.Workers < 1 {
		return 1
	}

	return c.Workers
}

// ViewConfig bounds the size of mode projections.
type ViewConfig struct {
	MaxFailedTests   int
	MaxFailedSteps   int
	MaxTests         int
	MaxStepDepth     int
	MaxStepsPerLevel int
	FullSizeLimit    int
	FullMaxTests     int
	FullMaxStepDepth int
}

// DefaultViewConfig returns the documented view limits.
func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		MaxFailedTests:   20,
		MaxFailedSteps:   5,
		MaxTests:         50,
		MaxStepDepth:     2,
		MaxStepsPerLevel: 10,
		FullSizeLimit:    50000,
		FullMaxTests:     100,
		FullMaxStepDepth: 3,
	}
}
