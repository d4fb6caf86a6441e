package intent

import "github.com/btuckerc/traderoads/internal/catan/resource"

// ProposeTrade opens a domestic trade offer on the active turn.
type ProposeTrade struct {
	Base
	Offered   resource.Bundle
	Requested resource.Bundle
	// TargetIDs restricts who may respond; empty means any other player.
	TargetIDs []string
}

func (ProposeTrade) Kind() Kind { return KindProposeTrade }

// AcceptTrade records the caller's acceptance of an open proposal; it does
// not by itself transfer resources (see ExecuteTrade).
type AcceptTrade struct {
	Base
	TradeID string
}

func (AcceptTrade) Kind() Kind { return KindAcceptTrade }

// RejectTrade records the caller's rejection of an open proposal.
type RejectTrade struct {
	Base
	TradeID string
}

func (RejectTrade) Kind() Kind { return KindRejectTrade }

// CancelTrade withdraws an open proposal; only the proposer may cancel.
type CancelTrade struct {
	Base
	TradeID string
}

func (CancelTrade) Kind() Kind { return KindCancelTrade }

// ExecuteTrade is sent by the proposer to finalize a trade with one of the
// accepters, atomically transferring both bundles.
type ExecuteTrade struct {
	Base
	TradeID    string
	AccepterID string
}

func (ExecuteTrade) Kind() Kind { return KindExecuteTrade }

// MaritimeTrade exchanges resources with the bank at the player's best
// qualifying ratio (harbor or default 4:1). The wire layer also accepts a
// supply_trade message as an alias for this same intent.
type MaritimeTrade struct {
	Base
	Given    resource.Type
	Received resource.Type
}

func (MaritimeTrade) Kind() Kind { return KindMaritimeTrade }
