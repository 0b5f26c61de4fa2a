package coin

import "github.com/mintthemoon/xcosm/xcosm/safe"

// The TryPlus/TryMinus families apply checked arithmetic between a set and a
// single coin or another set. Amounts accumulate only onto pre-existing
// denoms: a right-hand denom absent from the receiver is a no-op, never an
// insertion, so callers must pre-populate any denom they expect to receive
// credit.
//
// The immutable forms are atomic: on error the receiver is untouched and the
// zero Set is returned. The Mut forms stop at the first offending denom and
// retain updates already applied to earlier denoms.

// TryPlus returns a new set with the coin's amount added to the matching entry.
func (s Set) TryPlus(other Coin) (Set, error) {
	res := s.Clone()
	if err := res.TryPlusMut(other); err != nil {
		return Set{}, err
	}

	return res, nil
}

// TryPlusSet returns a new set with every entry of other added to the
// matching entries of the receiver.
func (s Set) TryPlusSet(other Set) (Set, error) {
	res := s.Clone()
	if err := res.TryPlusSetMut(other); err != nil {
		return Set{}, err
	}

	return res, nil
}

// TryPlusMut adds the coin's amount to the matching entry in place.
func (s *Set) TryPlusMut(other Coin) error {
	current, ok := s.amounts[other.Denom]
	if !ok {
		return nil
	}

	sum, err := safe.Add(current, other.Amount)
	if err != nil {
		return err
	}

	s.amounts[other.Denom] = sum

	return nil
}

// TryPlusSetMut adds every entry of other to the matching entries in place.
// Denoms are visited in canonical order, so the first offending denom is
// deterministic.
func (s *Set) TryPlusSetMut(other Set) error {
	for _, c := range other.Coins() {
		if err := s.TryPlusMut(c); err != nil {
			return err
		}
	}

	return nil
}

// TryMinus returns a new set with the coin's amount subtracted from the
// matching entry.
func (s Set) TryMinus(other Coin) (Set, error) {
	res := s.Clone()
	if err := res.TryMinusMut(other); err != nil {
		return Set{}, err
	}

	return res, nil
}

// TryMinusSet returns a new set with every entry of other subtracted from the
// matching entries of the receiver.
func (s Set) TryMinusSet(other Set) (Set, error) {
	res := s.Clone()
	if err := res.TryMinusSetMut(other); err != nil {
		return Set{}, err
	}

	return res, nil
}

// TryMinusMut subtracts the coin's amount from the matching entry in place.
func (s *Set) TryMinusMut(other Coin) error {
	current, ok := s.amounts[other.Denom]
	if !ok {
		return nil
	}

	diff, err := safe.Sub(current, other.Amount)
	if err != nil {
		return err
	}

	s.amounts[other.Denom] = diff

	return nil
}

// TryMinusSetMut subtracts every entry of other from the matching entries in
// place, visiting denoms in canonical order.
func (s *Set) TryMinusSetMut(other Set) error {
	for _, c := range other.Coins() {
		if err := s.TryMinusMut(c); err != nil {
			return err
		}
	}

	return nil
}
