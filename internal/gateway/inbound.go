package gateway

import "github.com/btuckerc/traderoads/internal/catan/resource"

// Client message tags (§6 "client message catalog").
const (
	tagAuthenticate         = "authenticate"
	tagPing                 = "ping"
	tagCreateLobby          = "create_lobby"
	tagJoinLobby            = "join_lobby"
	tagLeaveLobby           = "leave_lobby"
	tagSelectColor          = "select_color"
	tagSetReady             = "set_ready"
	tagStartGame            = "start_game"
	tagGetSessionState      = "get_session_state"
	tagReconnect            = "reconnect"
	tagRollDice             = "roll_dice"
	tagDiscardResources     = "discard_resources"
	tagMoveRobber           = "move_robber"
	tagStealResource        = "steal_resource"
	tagBuildRoad            = "build_road"
	tagBuildSettlement      = "build_settlement"
	tagBuildCity            = "build_city"
	tagBuyDevelopmentCard   = "buy_development_card"
	tagPlayKnight           = "play_knight"
	tagPlayRoadBuilding     = "play_road_building"
	tagPlaceRoadBuildingRoad = "place_road_building_road"
	tagPlayYearOfPlenty     = "play_year_of_plenty"
	tagPlayMonopoly         = "play_monopoly"
	tagProposeTrade         = "propose_trade"
	tagAcceptTrade          = "accept_trade"
	tagRejectTrade          = "reject_trade"
	tagCancelTrade          = "cancel_trade"
	tagExecuteTrade         = "execute_trade"
	tagMaritimeTrade        = "maritime_trade"
	tagSupplyTrade          = "supply_trade"
	tagEndTurn              = "end_turn"
	tagPairedPassMarker     = "paired_pass_marker"
)

// authenticatePayload carries the identifier the gateway resolves against
// the user store; it issues or looks up an account the way the
// distillation's source treats "identifier" as a stable, caller-supplied
// handle (no password or passkey flow is in scope for this spec).
type authenticatePayload struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"display_name"`
}

type createLobbyPayload struct {
	Name           string `json:"name"`
	PlayerMode     string `json:"player_mode"`
	BeginnerLayout bool   `json:"beginner_layout"`
}

type joinLobbyPayload struct {
	Code string `json:"code"`
}

type selectColorPayload struct {
	Color string `json:"color"`
}

type setReadyPayload struct {
	Ready bool `json:"ready"`
}

type reconnectPayload struct {
	GameID   string `json:"game_id"`
	LastSeen int    `json:"last_seen"`
}

type moveRobberPayload struct {
	HexID string `json:"hex_id"`
}

type stealResourcePayload struct {
	VictimID string `json:"victim_id"`
}

type discardResourcesPayload struct {
	Resources resource.Bundle `json:"resources"`
}

type buildRoadPayload struct {
	EdgeID string `json:"edge_id"`
}

type buildSettlementPayload struct {
	NodeID string `json:"node_id"`
}

type buildCityPayload struct {
	NodeID string `json:"node_id"`
}

type playKnightPayload struct {
	DevCardID string  `json:"dev_card_id"`
	HexID     string  `json:"hex_id"`
	VictimID  *string `json:"victim_id,omitempty"`
}

type playRoadBuildingPayload struct {
	DevCardID string `json:"dev_card_id"`
}

type placeRoadBuildingRoadPayload struct {
	EdgeID string `json:"edge_id"`
}

type playYearOfPlentyPayload struct {
	DevCardID string        `json:"dev_card_id"`
	First     resource.Type `json:"first"`
	Second    resource.Type `json:"second"`
}

type playMonopolyPayload struct {
	DevCardID string        `json:"dev_card_id"`
	Resource  resource.Type `json:"resource"`
}

type proposeTradePayload struct {
	Offered   resource.Bundle `json:"offered"`
	Requested resource.Bundle `json:"requested"`
	TargetIDs []string        `json:"target_ids,omitempty"`
}

type tradeIDPayload struct {
	TradeID string `json:"trade_id"`
}

type executeTradePayload struct {
	TradeID    string `json:"trade_id"`
	AccepterID string `json:"accepter_id"`
}

type maritimeTradePayload struct {
	Given    resource.Type `json:"given"`
	Received resource.Type `json:"received"`
}
