// Package fund provides proportional distribution of a balance among
// claimants by basis-point share.
//
// Core flow:
//   - A Distribution maps principals to Claims (bps shares).
//   - WithRemainderTo tops a distribution up to exactly the full share.
//   - DistributeCoins computes per-principal balances, assigns the rounding
//     residue, and builds a balanced multi-send transfer instruction.
//
// All functions are pure: they operate on owned value snapshots and return
// new values, so conservation of total value is asserted on every call rather
// than assumed across calls.
package fund
