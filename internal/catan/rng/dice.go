package rng

import "github.com/btuckerc/traderoads/internal/catan/model"

// RollDice draws two independent dice, each uniform in 1..6, via s.
func RollDice(s *Stream) model.DiceRoll {
	return model.DiceRoll{D1: s.Intn(6) + 1, D2: s.Intn(6) + 1}
}
