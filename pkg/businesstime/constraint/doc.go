// ============================================================================
// bizclock - Business Time Arithmetic
// ============================================================================
//
// Package:     constraint
// Description: Business time rules: hour windows, weekday sets, holidays
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

// Package constraint provides the rule variants an Engine combines to decide
// whether an instant is business time. Every rule evaluates the UTC reading
// of the instant and is safe for concurrent use.
package constraint
