package gateway

import (
	"encoding/json"
	"testing"

	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/resource"
)

func TestDecodeIntentBuildRoad(t *testing.T) {
	payload := json.RawMessage(`{"edge_id": "e1"}`)
	got, err := decodeIntent("p1", tagBuildRoad, payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := intent.BuildRoad{Base: intent.Base{ActorID: "p1"}, EdgeID: board.EdgeID("e1")}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDecodeIntentRollDiceIgnoresPayload(t *testing.T) {
	got, err := decodeIntent("p1", tagRollDice, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Kind() != intent.KindRollDice {
		t.Fatalf("expected roll_dice kind, got %s", got.Kind())
	}
	if got.PlayerID() != "p1" {
		t.Fatalf("expected actor p1, got %s", got.PlayerID())
	}
}

func TestDecodeIntentExecuteTrade(t *testing.T) {
	payload := json.RawMessage(`{"trade_id": "trade-1", "accepter_id": "p2"}`)
	got, err := decodeIntent("p1", tagExecuteTrade, payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := intent.ExecuteTrade{Base: intent.Base{ActorID: "p1"}, TradeID: "trade-1", AccepterID: "p2"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDecodeIntentMaritimeTradeAcceptsSupplyTradeAlias(t *testing.T) {
	payload := json.RawMessage(`{"given": "ore", "received": "grain"}`)
	got, err := decodeIntent("p1", tagSupplyTrade, payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := intent.MaritimeTrade{Base: intent.Base{ActorID: "p1"}, Given: resource.Ore, Received: resource.Grain}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDecodeIntentProposeTrade(t *testing.T) {
	payload := json.RawMessage(`{"offered": {"ore": 1}, "requested": {"grain": 1}, "target_ids": ["p2"]}`)
	got, err := decodeIntent("p1", tagProposeTrade, payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	trade, ok := got.(intent.ProposeTrade)
	if !ok {
		t.Fatalf("expected ProposeTrade, got %T", got)
	}
	if trade.Offered[resource.Ore] != 1 || trade.Requested[resource.Grain] != 1 {
		t.Fatalf("unexpected bundles: %+v", trade)
	}
	if len(trade.TargetIDs) != 1 || trade.TargetIDs[0] != "p2" {
		t.Fatalf("unexpected target ids: %+v", trade.TargetIDs)
	}
}

func TestDecodeIntentPlayKnightOptionalVictim(t *testing.T) {
	payload := json.RawMessage(`{"dev_card_id": "card-1", "hex_id": "hex-1"}`)
	got, err := decodeIntent("p1", tagPlayKnight, payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	knight, ok := got.(intent.PlayKnight)
	if !ok {
		t.Fatalf("expected PlayKnight, got %T", got)
	}
	if knight.VictimID != nil {
		t.Fatalf("expected nil victim id, got %v", *knight.VictimID)
	}
}

func TestDecodeIntentUnknownTagErrors(t *testing.T) {
	if _, err := decodeIntent("p1", "not_a_real_tag", json.RawMessage(`{}`)); err == nil {
		t.Fatal("expected error for unrecognized tag")
	}
}

func TestDecodeIntentMalformedPayloadErrors(t *testing.T) {
	if _, err := decodeIntent("p1", tagBuildRoad, json.RawMessage(`not json`)); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestDecodeIntentEmptyPayloadErrors(t *testing.T) {
	if _, err := decodeIntent("p1", tagBuildRoad, nil); err == nil {
		t.Fatal("expected error for empty payload on a payload-bearing tag")
	}
}
