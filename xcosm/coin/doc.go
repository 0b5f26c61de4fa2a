// Package coin provides a duplicate-free, canonically ordered multi-denom
// balance container and the transfer instructions built from it.
//
// Core flow:
//   - NewSetFromCoins validates raw (denom, amount) pairs into a Set.
//   - Expect* helpers guard preconditions before spending.
//   - TryPlus/TryMinus families apply checked arithmetic between sets and
//     single coins.
//   - Send and SendMany produce ledger transfer instructions whose encoding
//     is delegated to the embedding system.
//
// The package enforces deterministic behavior using typed domain errors.
package coin
