package event

import "github.com/btuckerc/traderoads/internal/catan/resource"

// TradeProposed records a new open domestic trade offer.
type TradeProposed struct {
	TradeID    string
	ProposerID string
	Offered    resource.Bundle
	Requested  resource.Bundle
	TargetIDs  []string
}

func (TradeProposed) Kind() Kind { return KindTradeProposed }

// TradeAccepted records one responder's acceptance.
type TradeAccepted struct {
	TradeID  string
	PlayerID string
}

func (TradeAccepted) Kind() Kind { return KindTradeAccepted }

// TradeRejected records one responder's rejection.
type TradeRejected struct {
	TradeID  string
	PlayerID string
}

func (TradeRejected) Kind() Kind { return KindTradeRejected }

// TradeCancelReason distinguishes a manual cancel from an end-of-turn sweep.
type TradeCancelReason string

const (
	TradeCancelManual    TradeCancelReason = "manual"
	TradeCancelTurnEnded TradeCancelReason = "turn_ended"
)

// TradeCancelled records a proposal's withdrawal.
type TradeCancelled struct {
	TradeID string
	Reason  TradeCancelReason
}

func (TradeCancelled) Kind() Kind { return KindTradeCancelled }

// TradeExecuted records the atomic transfer between proposer and accepter.
type TradeExecuted struct {
	TradeID    string
	ProposerID string
	AccepterID string
	Offered    resource.Bundle
	Requested  resource.Bundle
}

func (TradeExecuted) Kind() Kind { return KindTradeExecuted }

// MaritimeTradeExecuted records a bank trade at the player's qualifying
// ratio.
type MaritimeTradeExecuted struct {
	PlayerID   string
	Given      resource.Type
	GivenCount int
	Received   resource.Type
}

func (MaritimeTradeExecuted) Kind() Kind { return KindMaritimeTradeExecuted }
