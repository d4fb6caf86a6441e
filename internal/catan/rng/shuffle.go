package rng

import "github.com/btuckerc/traderoads/internal/catan/model"

// ShuffleDevDeck randomizes the order of an unshuffled development-card
// deck in place via s, so the top of the deck (index 0) is unpredictable.
func ShuffleDevDeck(s *Stream, deck []model.DevCardType) {
	s.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
}
