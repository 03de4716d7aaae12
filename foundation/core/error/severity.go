// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that callers and log
//              output can tell input mistakes from broken configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-17 v0.2.0: Severity mapping for business time codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as an unparsable timestamp
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation with a usable workaround
	SeverityMedium

	// SeverityHigh indicates a rule set or configuration that cannot work
	SeverityHigh

	// SeverityCritical indicates broken storage or an internal fault
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeDatabaseError:
		return SeverityCritical

	case CodeNoBusinessTime, CodeStepLimitExceeded, CodeInvalidConfig,
		CodeMissingConfig, CodeConfigError, CodeInvalidConstraint:
		return SeverityHigh

	case CodeInvalidTimestamp, CodeInvalidPrecision, CodeInvalidDuration,
		CodeZeroLengthBusinessDay, CodeBusinessDayTooLong,
		CodeInvalidDecimal, CodeDivisionByZero, CodeValueOutOfRange,
		CodeInvalidInput, CodeNotFound, CodeDuplicateEntry:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
