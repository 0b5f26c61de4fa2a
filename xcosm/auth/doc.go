// Package auth provides caller authorization against a configurable policy.
//
// A Policy is a closed set of modes: a single principal, an explicit set of
// principals, nobody, or anybody. Checks are pure predicate evaluations with
// no side effects, and every failure surfaces the same opaque ErrUnauthorized
// so policy internals are never echoed back to callers.
//
// The zero value of Policy authorizes nobody, so unset configuration fails
// closed.
package auth
