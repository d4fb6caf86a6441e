package model

import "github.com/btuckerc/traderoads/internal/catan/resource"

// Bank holds the shared resource pool and the development-card draw deck.
type Bank struct {
	Resources resource.Bundle
	// DevDeck is ordered top-first; DrawDevCard pops index 0.
	DevDeck []DevCardType
}

// NewBank returns a bank stocked with the standard 19-per-resource supply
// and the given (already-shuffled) development-card deck.
func NewBank(devDeck []DevCardType) Bank {
	resources := resource.NewBundle()
	for _, t := range resource.All() {
		resources.Add(t, StandardBankSupplyPerResource)
	}
	return Bank{
		Resources: resources,
		DevDeck:   append([]DevCardType(nil), devDeck...),
	}
}

// StandardBankSupplyPerResource is the bank's starting stock of each
// resource type.
const StandardBankSupplyPerResource = 19

// Clone returns a deep copy of the bank.
func (b Bank) Clone() Bank {
	return Bank{
		Resources: b.Resources.Clone(),
		DevDeck:   append([]DevCardType(nil), b.DevDeck...),
	}
}

// DrawDevCard removes and returns the top card, or ok=false if the deck is
// empty.
func (b *Bank) DrawDevCard() (DevCardType, bool) {
	if len(b.DevDeck) == 0 {
		return "", false
	}
	t := b.DevDeck[0]
	b.DevDeck = b.DevDeck[1:]
	return t, true
}
