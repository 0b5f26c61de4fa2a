package fund

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mintthemoon/xcosm/xcosm/coin"
	"github.com/mintthemoon/xcosm/xcosm/validate"
)

// ErrOverclaimed is returned when distribution claims exceed the full share.
var ErrOverclaimed = errors.New("distribution claims cannot exceed 100%")

// ErrUnclaimed is returned when a distribution has no claims at all.
var ErrUnclaimed = errors.New("distribution must contain at least one claim")

// Distribution maps principals to their claims over a balance. It is value
// data: methods that change it return a new Distribution. Iteration is always
// in lexicographic principal order, so "first claimant" is deterministic.
//
// Claims may sum to less than the full share; such a distribution is valid
// but will under-claim unless completed via WithRemainderTo. The overclaim
// bound is enforced when totals are computed, not at insertion.
type Distribution struct {
	claims map[validate.Principal]Claim
}

// NewDistribution creates a distribution from a claim map. The map is copied.
func NewDistribution(claims map[validate.Principal]Claim) Distribution {
	copied := make(map[validate.Principal]Claim, len(claims))
	for principal, claim := range claims {
		copied[principal] = claim
	}

	return Distribution{claims: copied}
}

// Len returns the number of claimants.
func (d Distribution) Len() int {
	return len(d.claims)
}

// Get returns the claim for a principal and whether one exists.
func (d Distribution) Get(principal validate.Principal) (Claim, bool) {
	claim, ok := d.claims[principal]
	return claim, ok
}

// Claims returns a copy of the claim map.
func (d Distribution) Claims() map[validate.Principal]Claim {
	copied := make(map[validate.Principal]Claim, len(d.claims))
	for principal, claim := range d.claims {
		copied[principal] = claim
	}

	return copied
}

// principals returns claimants sorted lexicographically.
func (d Distribution) principals() []validate.Principal {
	principals := make([]validate.Principal, 0, len(d.claims))
	for principal := range d.claims {
		principals = append(principals, principal)
	}

	slices.Sort(principals)

	return principals
}

// TotalBps sums the claims' basis points, failing closed with ErrOverclaimed
// if they exceed the full share. Totals are never silently clamped.
func (d Distribution) TotalBps() (uint32, error) {
	var total uint64

	for _, claim := range d.claims {
		total += uint64(claim.bps)
	}

	if total > uint64(FullClaimBps) {
		return 0, ErrOverclaimed
	}

	return uint32(total), nil
}

// WithRemainderTo returns a new distribution where the unclaimed share is
// added to the principal's claim (creating one if absent), bringing the total
// to exactly the full share. Fails with ErrOverclaimed if the current total
// already exceeds it.
func (d Distribution) WithRemainderTo(principal validate.Principal) (Distribution, error) {
	total, err := d.TotalBps()
	if err != nil {
		return Distribution{}, err
	}

	claims := d.Claims()
	claims[principal] = NewClaim(claims[principal].bps + (FullClaimBps - total))

	return Distribution{claims: claims}, nil
}

// DistributeCoins splits funds among the claimants proportionally and builds
// a balanced multi-send instruction from the source address.
//
// Per-claim amounts round down, and the whole residue (floor rounding plus
// any share below the full claim) is assigned to the first claimant in
// iteration order. The final instruction is built by SendMany, whose
// input/output equality check asserts that the claimed balances conserve the
// funds exactly; a failure there indicates an arithmetic defect, not bad
// caller input.
//
// TODO make the remainder recipient configurable
func (d Distribution) DistributeCoins(from validate.Principal, funds coin.Set) (coin.Msg, error) {
	if len(d.claims) == 0 {
		return coin.Msg{}, ErrUnclaimed
	}

	if _, err := d.TotalBps(); err != nil {
		return coin.Msg{}, err
	}

	rem := funds.Clone()
	outputs := make([]coin.Output, 0, len(d.claims))

	for _, principal := range d.principals() {
		claimed, err := d.claims[principal].Apply(funds)
		if err != nil {
			return coin.Msg{}, err
		}

		if err := rem.TryMinusSetMut(claimed); err != nil {
			// Cannot happen while totals are bounded and rounding floors;
			// a hit here means claims over-allocated the funds.
			return coin.Msg{}, fmt.Errorf("claims over-allocated available funds: %w", err)
		}

		outputs = append(outputs, coin.Output{Address: principal.String(), Coins: claimed})
	}

	if err := outputs[0].Coins.TryPlusSetMut(rem); err != nil {
		return coin.Msg{}, err
	}

	return funds.SendMany(from.String(), outputs)
}

// DistributionMsg is the wire form of a Distribution, keyed by raw principal
// strings that have not yet passed address validation.
type DistributionMsg map[string]Claim

// Validate resolves every key through the injected address validator and
// returns the validated Distribution.
func (m DistributionMsg) Validate(v validate.Validator) (Distribution, error) {
	claims := make(map[validate.Principal]Claim, len(m))

	for raw, claim := range m {
		principal, err := v.Validate(raw)
		if err != nil {
			return Distribution{}, err
		}

		claims[principal] = claim
	}

	return Distribution{claims: claims}, nil
}

// Msg returns the distribution in wire form.
func (d Distribution) Msg() DistributionMsg {
	msg := make(DistributionMsg, len(d.claims))
	for principal, claim := range d.claims {
		msg[principal.String()] = claim
	}

	return msg
}
