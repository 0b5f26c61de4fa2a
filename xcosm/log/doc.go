// Package log provides the structured logging surface used around this
// library. The value packages themselves are pure and never log; embedding
// contract layers use this Logger so their logs match the rest of the stack.
//
// NewNop returns a no-op implementation for tests and defaults; NewZap wraps
// a zap core for production use.
package log
