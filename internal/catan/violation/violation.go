// Package violation enumerates the reasons the validator can reject an
// intent. A violation is never a free-form string: clients classify and
// localize violations by kind.
package violation

// Kind is the exhaustive set of validator rejection reasons.
type Kind string

const (
	NotYourTurn                  Kind = "not_your_turn"
	MustRollFirst                Kind = "must_roll_first"
	AlreadyRolled                Kind = "already_rolled"
	MustMoveRobber               Kind = "must_move_robber"
	MustDiscardFirst             Kind = "must_discard_first"
	MustStealFirst               Kind = "must_steal_first"
	InsufficientResources        Kind = "insufficient_resources"
	NoSupplyRemaining            Kind = "no_supply_remaining"
	InvalidLocation              Kind = "invalid_location"
	ViolatesDistanceRule         Kind = "violates_distance_rule"
	NoAdjacentRoad               Kind = "no_adjacent_road"
	NoSettlementToUpgrade        Kind = "no_settlement_to_upgrade"
	LocationOccupied             Kind = "location_occupied"
	CannotTradeWithSelf          Kind = "cannot_trade_with_self"
	InvalidTradeRatio            Kind = "invalid_trade_ratio"
	NoSuchTradeProposal          Kind = "no_such_trade_proposal"
	TradeAlreadyAccepted         Kind = "trade_already_accepted"
	NotTargetOfTrade             Kind = "not_target_of_trade"
	NoDevCardToPlay              Kind = "no_dev_card_to_play"
	CannotPlayCardBoughtThisTurn Kind = "cannot_play_card_bought_this_turn"
	AlreadyPlayedDevCard         Kind = "already_played_dev_card"
	InvalidDevCardType           Kind = "invalid_dev_card_type"
	MustMoveRobberToNewHex       Kind = "must_move_robber_to_new_hex"
	NoEligibleVictim             Kind = "no_eligible_victim"
	VictimHasNoResources         Kind = "victim_has_no_resources"
	GameAlreadyEnded             Kind = "game_already_ended"
	InvalidAction                Kind = "invalid_action"
)

// Violation pairs a kind with a human-readable explanation; the kind alone
// is authoritative for client behavior, the message is for logs/debugging.
type Violation struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// New returns a violation with the given kind and message.
func New(kind Kind, message string) Violation {
	return Violation{Kind: kind, Message: message}
}

// Error implements the error interface so a Violation can be wrapped or
// compared with errors.Is-style helpers where convenient.
func (v Violation) Error() string {
	return string(v.Kind) + ": " + v.Message
}
