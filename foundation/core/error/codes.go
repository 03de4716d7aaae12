// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by bizclock. Codes are stable
//              identifiers that callers and the CLI can branch on.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Replaced platform codes with business time codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Instants and durations
	CodeInvalidTimestamp Code = "INVALID_TIMESTAMP"
	CodeInvalidPrecision Code = "INVALID_PRECISION"
	CodeInvalidDuration  Code = "INVALID_DURATION"

	// Business day length
	CodeZeroLengthBusinessDay Code = "ZERO_LENGTH_BUSINESS_DAY"
	CodeBusinessDayTooLong    Code = "BUSINESS_DAY_TOO_LONG"

	// Stepping
	CodeNoBusinessTime    Code = "NO_BUSINESS_TIME"
	CodeStepLimitExceeded Code = "STEP_LIMIT_EXCEEDED"

	// Arithmetic
	CodeInvalidDecimal  Code = "INVALID_DECIMAL"
	CodeDivisionByZero  Code = "DIVISION_BY_ZERO"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Rules and configuration
	CodeInvalidConstraint Code = "INVALID_CONSTRAINT"
	CodeConfigError       Code = "CONFIG_ERROR"
	CodeMissingConfig     Code = "MISSING_CONFIG"
	CodeInvalidConfig     Code = "INVALID_CONFIG"

	// Storage
	CodeDatabaseError  Code = "DATABASE_ERROR"
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidTimestamp, CodeInvalidPrecision, CodeInvalidDuration:
		return "time"
	case CodeZeroLengthBusinessDay, CodeBusinessDayTooLong, CodeNoBusinessTime, CodeStepLimitExceeded:
		return "business"
	case CodeInvalidDecimal, CodeDivisionByZero, CodeValueOutOfRange:
		return "arithmetic"
	case CodeInvalidConstraint, CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeDatabaseError, CodeDuplicateEntry, CodeNotFound:
		return "storage"
	default:
		return "generic"
	}
}

// ExitCode maps an error code to a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c.Category() {
	case "time", "arithmetic":
		return 2
	case "business":
		return 3
	case "configuration":
		return 4
	case "storage":
		return 5
	default:
		return 1
	}
}
