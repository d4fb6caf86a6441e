package model

import "github.com/btuckerc/traderoads/internal/catan/resource"

// TradeProposal is an open domestic trade offer on the active turn.
type TradeProposal struct {
	ID        string
	ProposerID string
	Offered   resource.Bundle
	Requested resource.Bundle
	// TargetIDs restricts who may respond; nil means any other player.
	TargetIDs []string
	Accepters map[string]bool
	Rejecters map[string]bool
}

// NewTradeProposal returns a proposal with empty response sets.
func NewTradeProposal(id, proposerID string, offered, requested resource.Bundle, targetIDs []string) TradeProposal {
	return TradeProposal{
		ID:         id,
		ProposerID: proposerID,
		Offered:    offered.Clone(),
		Requested:  requested.Clone(),
		TargetIDs:  append([]string(nil), targetIDs...),
		Accepters:  make(map[string]bool),
		Rejecters:  make(map[string]bool),
	}
}

// Clone returns a deep copy.
func (t TradeProposal) Clone() TradeProposal {
	out := TradeProposal{
		ID:         t.ID,
		ProposerID: t.ProposerID,
		Offered:    t.Offered.Clone(),
		Requested:  t.Requested.Clone(),
		TargetIDs:  append([]string(nil), t.TargetIDs...),
		Accepters:  make(map[string]bool, len(t.Accepters)),
		Rejecters:  make(map[string]bool, len(t.Rejecters)),
	}
	for k := range t.Accepters {
		out.Accepters[k] = true
	}
	for k := range t.Rejecters {
		out.Rejecters[k] = true
	}
	return out
}

// IsTargeted reports whether playerID is an eligible responder.
func (t TradeProposal) IsTargeted(playerID string) bool {
	if len(t.TargetIDs) == 0 {
		return playerID != t.ProposerID
	}
	for _, id := range t.TargetIDs {
		if id == playerID {
			return true
		}
	}
	return false
}
