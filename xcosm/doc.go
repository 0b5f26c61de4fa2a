// Package xcosm is the root of a support library for smart-contract code:
// caller authorization (auth), safe multi-denom balance arithmetic (coin,
// safe), proportional distribution (fund), and the validator boundary
// (validate).
//
// Everything is a value type with copy-on-write semantics and no I/O, so the
// library needs no locking: correctness under concurrency reduces to not
// aliasing the same value across handlers, which is the caller's property.
//
// The root package maps module errors to stable business responses for the
// embedding contract's outer layer.
package xcosm
