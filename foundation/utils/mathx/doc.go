// Package mathx provides exact decimal arithmetic for business time ratios.
//
// Package: mathx
// Title: Exact Decimal Arithmetic
// Description: Decimal wraps math/big.Rat so that fractional business day
//              counts, day length ratios and step decrements are carried
//              without floating point drift. RoundToInt rounds ties away
//              from zero.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-17 v0.3.0: Reduced to Decimal, exact integer rounding, ratio constructors
// - 2026-10-17 v0.3.1: Dropped rounding modes, division and comparisons
//
// Usage:
//
//	n := mathx.MustNewDecimal("2.5")
//	days := n.RoundToInt() // 3
//
//	step, _ := mathx.NewDecimalFromRatio(int64(time.Hour), int64(8*time.Hour)) // 1/8
//	residual := n.Subtract(step)
package mathx
