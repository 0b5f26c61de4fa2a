package coin

import (
	"encoding/json"
	"fmt"
	"sort"

	sdkmath "cosmossdk.io/math"

	"github.com/mintthemoon/xcosm/xcosm/safe"
)

// Coin is a single (denom, amount) entry. Amounts serialize as strings on the
// wire, matching the ledger convention for 128-bit values.
type Coin struct {
	Denom  string      `json:"denom"`
	Amount sdkmath.Int `json:"amount"`
}

// NewCoin creates a coin from a denom and an amount.
func NewCoin(denom string, amount sdkmath.Int) Coin {
	return Coin{Denom: denom, Amount: amount}
}

// NewInt64Coin creates a coin from a denom and an int64 amount.
func NewInt64Coin(denom string, amount int64) Coin {
	return Coin{Denom: denom, Amount: sdkmath.NewInt(amount)}
}

// String returns the coin as "<amount><denom>".
func (c Coin) String() string {
	return fmt.Sprintf("%s%s", c.Amount, c.Denom)
}

// Set is a denom-keyed balance container. Denoms are unique for the lifetime
// of every instance: the only ingestion path is TryInsert, which rejects
// duplicates instead of overwriting. Every exported traversal is ordered
// lexicographically by denom, so serialization and equality are canonical.
//
// A zero amount is a valid entry and is distinct from the denom being absent.
type Set struct {
	amounts map[string]sdkmath.Int
}

// NewSet creates an empty Set.
func NewSet() Set {
	return Set{amounts: map[string]sdkmath.Int{}}
}

// NewSetFromCoins creates a Set from an unordered coin list.
// Any duplicate denom anywhere in the input aborts construction; no partial
// set is returned.
func NewSetFromCoins(coins ...Coin) (Set, error) {
	set := NewSet()
	for _, c := range coins {
		if err := set.TryInsert(c.Denom, c.Amount); err != nil {
			return Set{}, err
		}
	}

	return set, nil
}

// TryInsert adds a new denom entry to the set.
// Requires the denom to not already be present and the amount to be within
// the representable range.
func (s *Set) TryInsert(denom string, amount sdkmath.Int) error {
	if err := safe.CheckAmount(amount); err != nil {
		return fmt.Errorf("denom %q: %w", denom, err)
	}

	if s.amounts == nil {
		s.amounts = map[string]sdkmath.Int{}
	}

	if _, exists := s.amounts[denom]; exists {
		return NewError(ErrorDuplicateDenom, denom, "duplicate denom in coins")
	}

	s.amounts[denom] = amount

	return nil
}

// Coins returns the set as a denom-sorted coin list. Display, serialization,
// and transfer instruction building all go through this snapshot.
func (s Set) Coins() []Coin {
	denoms := make([]string, 0, len(s.amounts))
	for denom := range s.amounts {
		denoms = append(denoms, denom)
	}

	sort.Strings(denoms)

	coins := make([]Coin, 0, len(denoms))
	for _, denom := range denoms {
		coins = append(coins, Coin{Denom: denom, Amount: s.amounts[denom]})
	}

	return coins
}

// Get returns the amount for a denom and whether the denom is present.
func (s Set) Get(denom string) (sdkmath.Int, bool) {
	amount, ok := s.amounts[denom]
	if !ok {
		return sdkmath.ZeroInt(), false
	}

	return amount, true
}

// Len returns the number of denom entries.
func (s Set) Len() int {
	return len(s.amounts)
}

// IsEmpty reports whether the set has no denom entries.
func (s Set) IsEmpty() bool {
	return len(s.amounts) == 0
}

// IsZero reports whether every entry carries a zero amount. An empty set is
// zero. Entries keep their denom after arithmetic drains them, so this is the
// value-level emptiness check.
func (s Set) IsZero() bool {
	for _, amount := range s.amounts {
		if !amount.IsZero() {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	amounts := make(map[string]sdkmath.Int, len(s.amounts))
	for denom, amount := range s.amounts {
		amounts[denom] = amount
	}

	return Set{amounts: amounts}
}

// Equal reports whether both sets hold the same denoms with the same amounts.
func (s Set) Equal(other Set) bool {
	if len(s.amounts) != len(other.amounts) {
		return false
	}

	for denom, amount := range s.amounts {
		otherAmount, ok := other.amounts[denom]
		if !ok || !amount.Equal(otherAmount) {
			return false
		}
	}

	return true
}

// ExpectCoin requires the set to contain the expected denom in at least the
// expected amount and returns the actual amount.
func (s Set) ExpectCoin(expected Coin) (sdkmath.Int, error) {
	amount, ok := s.amounts[expected.Denom]
	if !ok || amount.LT(expected.Amount) {
		return sdkmath.ZeroInt(), NewError(ErrorInsufficient, expected.Denom, "insufficient coins provided")
	}

	return amount, nil
}

// ExpectCoinExact requires the set to contain the expected denom at exactly
// the expected amount.
func (s Set) ExpectCoinExact(expected Coin) error {
	amount, err := s.ExpectCoin(expected)
	if err != nil {
		return err
	}

	if !amount.Equal(expected.Amount) {
		return NewError(ErrorNotExact, expected.Denom, fmt.Sprintf("exact coins required: %s", expected))
	}

	return nil
}

// ExpectCoins requires the set to contain every expected denom in at least
// the expected amount, failing on the first unmet requirement.
func (s Set) ExpectCoins(expected []Coin) error {
	for _, c := range expected {
		if _, err := s.ExpectCoin(c); err != nil {
			return err
		}
	}

	return nil
}

// ExpectCoinsExact requires the set as a whole to equal the expected coins,
// not merely contain them.
func (s Set) ExpectCoinsExact(expected []Coin) error {
	expectedSet, err := NewSetFromCoins(expected...)
	if err != nil {
		return err
	}

	if !s.Equal(expectedSet) {
		return NewError(ErrorNotExact, "", fmt.Sprintf("exact coins required: %s", expectedSet))
	}

	return nil
}

// ExpectNone requires the set to have no entries.
func (s Set) ExpectNone() error {
	if !s.IsEmpty() {
		return NewError(ErrorNotEmpty, "", "empty coins required")
	}

	return nil
}

// ExpectSome requires the set to have at least one entry.
func (s Set) ExpectSome() error {
	if s.IsEmpty() {
		return NewError(ErrorEmpty, "", "non-empty coins required")
	}

	return nil
}

// MarshalJSON encodes the set as a denom-sorted list of coins.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Coins())
}

// UnmarshalJSON decodes a coin list, rejecting duplicate denoms rather than
// merging or dropping them.
func (s *Set) UnmarshalJSON(data []byte) error {
	var coins []Coin
	if err := json.Unmarshal(data, &coins); err != nil {
		return err
	}

	set, err := NewSetFromCoins(coins...)
	if err != nil {
		return err
	}

	*s = set

	return nil
}

// String returns the canonical JSON rendering of the set.
func (s Set) String() string {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("unrenderable coins: %v", err)
	}

	return string(raw)
}
