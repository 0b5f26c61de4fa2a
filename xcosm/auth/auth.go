package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ErrUnauthorized is returned for every failed authorization check. It is
// deliberately opaque: no detail about the policy leaks to the requestor.
var ErrUnauthorized = errors.New("requestor is not authorized")

type kind uint8

const (
	// kindNone is the zero value: nobody is authorized unless configured.
	kindNone kind = iota
	kindOne
	kindMany
	kindAny
)

// Policy authorizes requestors of a comparable principal type T. Policies are
// immutable value data: construct one with One, Many, None, or Any and compare
// caller-supplied principals against it at check time.
type Policy[T comparable] struct {
	kind kind
	one  T
	many []T
}

// One creates a policy authorizing exactly one principal.
func One[T comparable](authorized T) Policy[T] {
	return Policy[T]{kind: kindOne, one: authorized}
}

// Many creates a policy authorizing an explicit set of principals.
func Many[T comparable](authorized ...T) Policy[T] {
	return Policy[T]{kind: kindMany, many: slices.Clone(authorized)}
}

// None creates a policy authorizing nobody.
func None[T comparable]() Policy[T] {
	return Policy[T]{kind: kindNone}
}

// Any creates a policy authorizing everybody.
func Any[T comparable]() Policy[T] {
	return Policy[T]{kind: kindAny}
}

func (p Policy[T]) matches(requestor T) bool {
	switch p.kind {
	case kindOne:
		return p.one == requestor
	case kindMany:
		return slices.Contains(p.many, requestor)
	case kindAny:
		return true
	default:
		return false
	}
}

// Authorize requires the requestor to match the policy.
func (p Policy[T]) Authorize(requestor T) error {
	if !p.matches(requestor) {
		return ErrUnauthorized
	}

	return nil
}

// AuthorizeAny requires at least one of the requestors to match the policy.
// An Any policy succeeds vacuously, even for an empty requestor list.
func (p Policy[T]) AuthorizeAny(requestors []T) error {
	if p.kind == kindAny {
		return nil
	}

	for _, requestor := range requestors {
		if p.matches(requestor) {
			return nil
		}
	}

	return ErrUnauthorized
}

// AuthorizeAll requires every requestor to match the policy. A None policy
// fails regardless of the requestor list.
func (p Policy[T]) AuthorizeAll(requestors []T) error {
	switch p.kind {
	case kindAny:
		return nil
	case kindNone:
		return ErrUnauthorized
	}

	for _, requestor := range requestors {
		if !p.matches(requestor) {
			return ErrUnauthorized
		}
	}

	return nil
}

// AuthorizeAtLeast requires at least min of the requestors to match the
// policy. A None policy fails regardless of min.
func (p Policy[T]) AuthorizeAtLeast(requestors []T, min uint32) error {
	switch p.kind {
	case kindAny:
		return nil
	case kindNone:
		return ErrUnauthorized
	}

	var matched uint32

	for _, requestor := range requestors {
		if p.matches(requestor) {
			matched++
		}
	}

	if matched < min {
		return ErrUnauthorized
	}

	return nil
}

// policyJSON is the wire form of a Policy: an explicit kind tag plus the
// payload for that kind.
type policyJSON[T comparable] struct {
	Kind string `json:"kind"`
	One  *T     `json:"one,omitempty"`
	Many []T    `json:"many,omitempty"`
}

// MarshalJSON encodes the policy as a tagged union.
func (p Policy[T]) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case kindOne:
		one := p.one
		return json.Marshal(policyJSON[T]{Kind: "one", One: &one})
	case kindMany:
		return json.Marshal(policyJSON[T]{Kind: "many", Many: p.many})
	case kindAny:
		return json.Marshal(policyJSON[T]{Kind: "any"})
	default:
		return json.Marshal(policyJSON[T]{Kind: "none"})
	}
}

// UnmarshalJSON decodes a tagged-union policy, rejecting unknown kinds and
// kinds missing their payload.
func (p *Policy[T]) UnmarshalJSON(data []byte) error {
	var raw policyJSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Kind {
	case "one":
		if raw.One == nil {
			return fmt.Errorf("policy kind %q requires a principal", raw.Kind)
		}

		*p = One(*raw.One)
	case "many":
		*p = Many(raw.Many...)
	case "none":
		*p = None[T]()
	case "any":
		*p = Any[T]()
	default:
		return fmt.Errorf("unknown policy kind %q", raw.Kind)
	}

	return nil
}
