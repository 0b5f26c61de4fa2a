package fund_test

import (
	"encoding/json"
	"fmt"

	"github.com/mintthemoon/xcosm/xcosm/coin"
	"github.com/mintthemoon/xcosm/xcosm/fund"
	"github.com/mintthemoon/xcosm/xcosm/validate"
)

// ExampleDistribution_DistributeCoins splits a treasury balance between a
// claimant and an operations address that absorbs the unclaimed share.
func ExampleDistribution_DistributeCoins() {
	funds, _ := coin.NewSetFromCoins(coin.NewInt64Coin("ucoin", 1000))

	dist := fund.NewDistribution(map[validate.Principal]fund.Claim{
		"addr-emma": fund.NewClaim(2500),
	})

	dist, _ = dist.WithRemainderTo("addr-ops")

	msg, _ := dist.DistributeCoins("addr-treasury", funds)

	raw, _ := json.Marshal(msg)
	fmt.Println(string(raw))
	// Output: {"multi_send":{"inputs":[{"address":"addr-treasury","coins":[{"denom":"ucoin","amount":"1000"}]}],"outputs":[{"address":"addr-emma","coins":[{"denom":"ucoin","amount":"925"}]},{"address":"addr-ops","coins":[{"denom":"ucoin","amount":"75"}]}]}}
}
