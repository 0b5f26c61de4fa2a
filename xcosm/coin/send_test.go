package coin

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Send(t *testing.T) {
	t.Parallel()

	t.Run("single denom", func(t *testing.T) {
		t.Parallel()

		set := mustSet(t, NewInt64Coin("uatom", 5))

		msg, err := set.Send("addr-dst")
		require.NoError(t, err)
		require.NotNil(t, msg.Send)
		assert.Nil(t, msg.MultiSend)
		assert.Equal(t, "addr-dst", msg.Send.ToAddress)
		require.Len(t, msg.Send.Amount, 1)
		assert.Equal(t, "uatom", msg.Send.Amount[0].Denom)
	})

	t.Run("multi denom to one destination", func(t *testing.T) {
		t.Parallel()

		set := mustSet(t, NewInt64Coin("uosmo", 3), NewInt64Coin("uatom", 5))

		msg, err := set.Send("addr-dst")
		require.NoError(t, err)
		require.NotNil(t, msg.Send)
		require.Len(t, msg.Send.Amount, 2)
		assert.Equal(t, "uatom", msg.Send.Amount[0].Denom)
		assert.Equal(t, "uosmo", msg.Send.Amount[1].Denom)
	})

	t.Run("empty set is not a valid transfer", func(t *testing.T) {
		t.Parallel()

		_, err := NewSet().Send("addr-dst")
		assertCoinError(t, err, ErrorEmpty)
	})
}

func TestSet_SendMany(t *testing.T) {
	t.Parallel()

	t.Run("balanced fan-out", func(t *testing.T) {
		t.Parallel()

		source := mustSet(t, NewInt64Coin("uatom", 10), NewInt64Coin("uosmo", 4))
		outputs := []Output{
			{Address: "addr-a", Coins: mustSet(t, NewInt64Coin("uatom", 7), NewInt64Coin("uosmo", 4))},
			{Address: "addr-b", Coins: mustSet(t, NewInt64Coin("uatom", 3))},
		}

		msg, err := source.SendMany("addr-src", outputs)
		require.NoError(t, err)
		require.NotNil(t, msg.MultiSend)

		require.Len(t, msg.MultiSend.Inputs, 1)
		assert.Equal(t, "addr-src", msg.MultiSend.Inputs[0].Address)
		assert.Equal(t, source.Coins(), msg.MultiSend.Inputs[0].Coins)

		// One output leg per (destination, coin) pair.
		require.Len(t, msg.MultiSend.Outputs, 3)

		// Output value balances input value per denom.
		totals := map[string]sdkmath.Int{}
		for _, leg := range msg.MultiSend.Outputs {
			for _, c := range leg.Coins {
				current, ok := totals[c.Denom]
				if !ok {
					current = sdkmath.ZeroInt()
				}
				totals[c.Denom] = current.Add(c.Amount)
			}
		}
		assert.True(t, sdkmath.NewInt(10).Equal(totals["uatom"]))
		assert.True(t, sdkmath.NewInt(4).Equal(totals["uosmo"]))
	})

	t.Run("output exceeding input", func(t *testing.T) {
		t.Parallel()

		source := mustSet(t, NewInt64Coin("uatom", 10))
		outputs := []Output{{Address: "addr-a", Coins: mustSet(t, NewInt64Coin("uatom", 11))}}

		_, err := source.SendMany("addr-src", outputs)
		assertCoinError(t, err, ErrorInsufficient)
	})

	t.Run("output denom the source never held", func(t *testing.T) {
		t.Parallel()

		source := mustSet(t, NewInt64Coin("uatom", 10))
		outputs := []Output{{Address: "addr-a", Coins: mustSet(t, NewInt64Coin("uosmo", 1))}}

		_, err := source.SendMany("addr-src", outputs)
		coinErr := assertCoinError(t, err, ErrorInsufficient)
		assert.Equal(t, "uosmo", coinErr.Denom)
	})

	t.Run("unallocated input value is an io mismatch", func(t *testing.T) {
		t.Parallel()

		source := mustSet(t, NewInt64Coin("uatom", 10))
		outputs := []Output{{Address: "addr-a", Coins: mustSet(t, NewInt64Coin("uatom", 9))}}

		_, err := source.SendMany("addr-src", outputs)
		assertCoinError(t, err, ErrorIoMismatch)
	})

	t.Run("empty source is not a valid transfer", func(t *testing.T) {
		t.Parallel()

		_, err := NewSet().SendMany("addr-src", nil)
		assertCoinError(t, err, ErrorEmpty)
	})
}
