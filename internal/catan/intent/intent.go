// Package intent defines every client-driven game action as a distinct
// tagged-union member. Setup-phase placement and main-phase building are
// modeled as separate intents rather than a shared "is this free" flag, so
// the validator and reducer never need to infer phase from a boolean.
package intent

// Kind discriminates the intent variants for exhaustive switch dispatch in
// the validator and reducer.
type Kind string

const (
	KindPlaceSetupSettlement  Kind = "place_setup_settlement"
	KindPlaceSetupRoad        Kind = "place_setup_road"
	KindRollDice              Kind = "roll_dice"
	KindDiscardResources      Kind = "discard_resources"
	KindMoveRobber            Kind = "move_robber"
	KindStealResource         Kind = "steal_resource"
	KindBuildRoad             Kind = "build_road"
	KindBuildSettlement       Kind = "build_settlement"
	KindBuildCity             Kind = "build_city"
	KindBuyDevelopmentCard    Kind = "buy_development_card"
	KindPlayKnight            Kind = "play_knight"
	KindPlayRoadBuilding      Kind = "play_road_building"
	KindPlaceRoadBuildingRoad Kind = "place_road_building_road"
	KindPlayYearOfPlenty      Kind = "play_year_of_plenty"
	KindPlayMonopoly          Kind = "play_monopoly"
	KindProposeTrade          Kind = "propose_trade"
	KindAcceptTrade           Kind = "accept_trade"
	KindRejectTrade           Kind = "reject_trade"
	KindCancelTrade           Kind = "cancel_trade"
	KindExecuteTrade          Kind = "execute_trade"
	KindMaritimeTrade         Kind = "maritime_trade"
	KindEndTurn               Kind = "end_turn"
	KindPairedPassMarker      Kind = "paired_pass_marker"
)

// Intent is one client-driven game action.
type Intent interface {
	Kind() Kind
	// PlayerID returns the id of the connection that submitted the intent;
	// the validator's turn-ownership rule checks this against the active
	// player (with an exception for trade responses and the paired-turn
	// marker holder).
	PlayerID() string
}

// Base carries the submitting player's id, embedded by every concrete
// intent type.
type Base struct {
	ActorID string
}

// PlayerID returns the submitting player's id.
func (b Base) PlayerID() string { return b.ActorID }
