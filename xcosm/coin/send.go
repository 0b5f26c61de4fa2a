package coin

// SendMsg instructs the ledger to move coins to a single destination address.
type SendMsg struct {
	ToAddress string `json:"to_address"`
	Amount    []Coin `json:"amount"`
}

// IO is one input or output leg of a multi-send instruction.
type IO struct {
	Address string `json:"address"`
	Coins   []Coin `json:"coins"`
}

// MultiSendMsg instructs the ledger to move coins from one source to many
// destinations in a single instruction. The protocol requires the input and
// output values to balance; SendMany guarantees that by construction.
type MultiSendMsg struct {
	Inputs  []IO `json:"inputs"`
	Outputs []IO `json:"outputs"`
}

// Msg is the transfer instruction handed to the embedding ledger encoder.
// Exactly one field is set. Encoding and transmission are out of scope here;
// this type only says what to send and to whom.
type Msg struct {
	Send      *SendMsg      `json:"send,omitempty"`
	MultiSend *MultiSendMsg `json:"multi_send,omitempty"`
}

// Output pairs a destination address with the coins it receives in a
// multi-send.
type Output struct {
	Address string
	Coins   Set
}

// Send builds a transfer instruction moving the whole set to one destination.
// Fails with an EMPTY error if the set has no entries, since a transfer of
// zero denoms is not representable.
func (s Set) Send(to string) (Msg, error) {
	if err := s.ExpectSome(); err != nil {
		return Msg{}, err
	}

	return Msg{Send: &SendMsg{ToAddress: to, Amount: s.Coins()}}, nil
}

// SendMany builds a multi-send instruction moving the whole set from one
// source to the given destination outputs: one input leg for the aggregate
// source balance and one output leg per (destination, coin) pair.
//
// Every output coin is consumed from a running remainder by checked
// subtraction, so an output exceeding the available input fails with
// INSUFFICIENT. The remainder must be fully drained afterwards; leftover
// value fails with IO_MISMATCH, which keeps sum(inputs) == sum(outputs) as a
// construction-time invariant rather than a decoder-side hope.
func (s Set) SendMany(from string, outputs []Output) (Msg, error) {
	if err := s.ExpectSome(); err != nil {
		return Msg{}, err
	}

	rem := s.Clone()
	legs := make([]IO, 0, len(outputs))

	for _, out := range outputs {
		for _, c := range out.Coins.Coins() {
			// Checked subtraction skips absent denoms, so presence must be
			// verified separately or value could leave via a denom the
			// source never held.
			if _, ok := rem.Get(c.Denom); !ok {
				return Msg{}, NewError(ErrorInsufficient, c.Denom, "output denom not present in input")
			}

			if err := rem.TryMinusMut(c); err != nil {
				return Msg{}, NewError(ErrorInsufficient, c.Denom, "output exceeds available input")
			}

			legs = append(legs, IO{Address: out.Address, Coins: []Coin{c}})
		}
	}

	if !rem.IsZero() {
		return Msg{}, NewError(ErrorIoMismatch, "", "input coins and output coins must have equal values")
	}

	return Msg{MultiSend: &MultiSendMsg{
		Inputs:  []IO{{Address: from, Coins: s.Coins()}},
		Outputs: legs,
	}}, nil
}
