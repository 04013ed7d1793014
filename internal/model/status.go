package model

// Status is the outcome of a test case, step or suite.
type Status string

const (
	// StatusPassed indicates the test completed without failures.
	StatusPassed Status = "passed"
	// StatusFailed indicates an assertion failed.
	StatusFailed Status = "failed"
	// StatusBroken indicates the test errored outside its assertions.
	StatusBroken Status = "broken"
	// StatusSkipped indicates the test did not run.
	StatusSkipped Status = "skipped"
	// StatusUnknown covers missing or unrecognized statuses.
	StatusUnknown Status = "unknown"
)

// Statuses lists every recognized status value.
var Statuses = []Status{StatusPassed, StatusFailed, StatusBroken, StatusSkipped, StatusUnknown}

// IsValid reports whether s is one of the recognized statuses.
func (s Status) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}

	return false
}

// NormalizeStatus maps raw status text onto the Status enum.
// Empty or unrecognized values become StatusUnknown.
func NormalizeStatus(raw string) Status {
	s := Status(raw)
	if s.IsValid() {
		return s
	}

	return StatusUnknown
}

// Severity is the Allure severity level of a test case.
type Severity string

// Allure severity levels.
const (
	SeverityBlocker  Severity = "blocker"
	SeverityCritical Severity = "critical"
	SeverityNormal   Severity = "normal"
	SeverityMinor    Severity = "minor"
	SeverityTrivial  Severity = "trivial"
)

// NormalizeSeverity maps raw severity text onto the Severity enum.
// Unrecognized values return the empty Severity, meaning unset.
func NormalizeSeverity(raw string) Severity {
	switch s := Severity(raw); s {
	case SeverityBlocker, SeverityCritical, SeverityNormal, SeverityMinor, SeverityTrivial:
		return s
	}

	return ""
}
