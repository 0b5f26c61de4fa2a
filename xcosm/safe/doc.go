// Package safe provides checked arithmetic over bounded unsigned amounts.
//
// Amounts are 128-bit unsigned integers carried as cosmossdk.io/math Ints;
// every operation detects overflow, underflow, and division by zero instead
// of wrapping or panicking, so callers can handle failures predictably in
// contract execution paths.
package safe
