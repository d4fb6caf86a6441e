package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/intent"
)

// decodeIntent maps an inbound game message (tag + raw payload) plus the
// submitting connection's actor id into a concrete intent.Intent. Malformed
// or unknown payloads return an error the caller turns into a
// malformed_message protocol_error.
func decodeIntent(actorID, tag string, payload json.RawMessage) (intent.Intent, error) {
	base := intent.Base{ActorID: actorID}

	switch tag {
	case tagRollDice:
		return intent.RollDice{Base: base}, nil

	case tagDiscardResources:
		var p discardResourcesPayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.DiscardResources{Base: base, Resources: p.Resources}, nil

	case tagMoveRobber:
		var p moveRobberPayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.MoveRobber{Base: base, HexID: board.HexID(p.HexID)}, nil

	case tagStealResource:
		var p stealResourcePayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.StealResource{Base: base, VictimID: p.VictimID}, nil

	case tagBuildRoad:
		var p buildRoadPayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.BuildRoad{Base: base, EdgeID: board.EdgeID(p.EdgeID)}, nil

	case tagBuildSettlement:
		var p buildSettlementPayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.BuildSettlement{Base: base, NodeID: board.NodeID(p.NodeID)}, nil

	case tagBuildCity:
		var p buildCityPayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.BuildCity{Base: base, NodeID: board.NodeID(p.NodeID)}, nil

	case tagBuyDevelopmentCard:
		return intent.BuyDevelopmentCard{Base: base}, nil

	case tagPlayKnight:
		var p playKnightPayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.PlayKnight{Base: base, DevCardID: p.DevCardID, HexID: board.HexID(p.HexID), VictimID: p.VictimID}, nil

	case tagPlayRoadBuilding:
		var p playRoadBuildingPayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.PlayRoadBuilding{Base: base, DevCardID: p.DevCardID}, nil

	case tagPlaceRoadBuildingRoad:
		var p placeRoadBuildingRoadPayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.PlaceRoadBuildingRoad{Base: base, EdgeID: board.EdgeID(p.EdgeID)}, nil

	case tagPlayYearOfPlenty:
		var p playYearOfPlentyPayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.PlayYearOfPlenty{Base: base, DevCardID: p.DevCardID, First: p.First, Second: p.Second}, nil

	case tagPlayMonopoly:
		var p playMonopolyPayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.PlayMonopoly{Base: base, DevCardID: p.DevCardID, Resource: p.Resource}, nil

	case tagProposeTrade:
		var p proposeTradePayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.ProposeTrade{Base: base, Offered: p.Offered, Requested: p.Requested, TargetIDs: p.TargetIDs}, nil

	case tagAcceptTrade:
		var p tradeIDPayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.AcceptTrade{Base: base, TradeID: p.TradeID}, nil

	case tagRejectTrade:
		var p tradeIDPayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.RejectTrade{Base: base, TradeID: p.TradeID}, nil

	case tagCancelTrade:
		var p tradeIDPayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.CancelTrade{Base: base, TradeID: p.TradeID}, nil

	case tagExecuteTrade:
		var p executeTradePayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.ExecuteTrade{Base: base, TradeID: p.TradeID, AccepterID: p.AccepterID}, nil

	case tagMaritimeTrade, tagSupplyTrade:
		var p maritimeTradePayload
		if err := unmarshal(payload, &p); err != nil {
			return nil, err
		}
		return intent.MaritimeTrade{Base: base, Given: p.Given, Received: p.Received}, nil

	case tagEndTurn:
		return intent.EndTurn{Base: base}, nil

	case tagPairedPassMarker:
		return intent.PairedPassMarker{Base: base}, nil

	default:
		return nil, fmt.Errorf("gateway: unrecognized game message tag %q", tag)
	}
}

func unmarshal(payload json.RawMessage, target any) error {
	if len(payload) == 0 {
		return fmt.Errorf("gateway: empty payload")
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("gateway: malformed payload: %w", err)
	}
	return nil
}
