// Package error provides the structured error type used across bizclock.
//
// Package: error
// Title: bizclock Error Handling
// Description: Structured errors with codes, severity and contextual details.
//              The business time engine, the configuration layer and the
//              holiday store all report failures through this type so callers
//              can branch on a stable code instead of message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Reduced to the bizclock taxonomy, errors.Is matching by code
//
// Usage:
//
//	import bizerror "github.com/msto63/bizclock/foundation/core/error"
//
//	err := bizerror.New("business day length must be positive").
//		WithCode(bizerror.CodeZeroLengthBusinessDay).
//		WithDetail("duration", d.String())
//
//	if bizerror.HasCode(err, bizerror.CodeZeroLengthBusinessDay) {
//		// handle
//	}
//
// Two errors with the same non-unknown code match under errors.Is, which lets
// packages export sentinel values:
//
//	var ErrZeroLengthBusinessDay = bizerror.New("zero length business day").
//		WithCode(bizerror.CodeZeroLengthBusinessDay)
//
//	if errors.Is(err, ErrZeroLengthBusinessDay) { ... }
package error
