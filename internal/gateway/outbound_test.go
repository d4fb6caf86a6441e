package gateway

import (
	"testing"

	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/resource"
)

func TestRedactResourceStolenHidesResourceFromBystanders(t *testing.T) {
	ev := event.New(5, event.ResourceStolen{ThiefID: "thief", VictimID: "victim", Resource: resource.Ore})

	bystander := redactForRecipient(ev, "bystander")
	payload, ok := bystander.Payload.(event.ResourceStolen)
	if !ok {
		t.Fatalf("expected ResourceStolen payload, got %T", bystander.Payload)
	}
	if payload.Resource != "" {
		t.Fatalf("expected resource to be redacted for a bystander, got %q", payload.Resource)
	}

	for _, recipient := range []string{"thief", "victim"} {
		wired := redactForRecipient(ev, recipient)
		p, ok := wired.Payload.(event.ResourceStolen)
		if !ok {
			t.Fatalf("expected ResourceStolen payload, got %T", wired.Payload)
		}
		if p.Resource != resource.Ore {
			t.Fatalf("expected resource visible to %s, got %q", recipient, p.Resource)
		}
	}
}

func TestRedactDevelopmentCardBoughtHidesCardTypeFromOthers(t *testing.T) {
	ev := event.New(3, event.DevelopmentCardBought{PlayerID: "buyer", CardID: "card-1", CardType: model.DevCardKnight})

	other := redactForRecipient(ev, "someone-else")
	payload, ok := other.Payload.(event.DevelopmentCardBought)
	if !ok {
		t.Fatalf("expected DevelopmentCardBought payload, got %T", other.Payload)
	}
	if payload.CardType != "" {
		t.Fatalf("expected card type to be redacted for a non-buyer, got %q", payload.CardType)
	}

	buyer := redactForRecipient(ev, "buyer")
	p, ok := buyer.Payload.(event.DevelopmentCardBought)
	if !ok {
		t.Fatalf("expected DevelopmentCardBought payload, got %T", buyer.Payload)
	}
	if p.CardType != model.DevCardKnight {
		t.Fatalf("expected card type visible to buyer, got %q", p.CardType)
	}
}

func TestRedactPassesThroughOtherEventKinds(t *testing.T) {
	ev := event.New(1, event.TurnStarted{PlayerID: "p1", Number: 1})
	wired := redactForRecipient(ev, "anyone")
	if wired.Payload != ev.Payload {
		t.Fatalf("expected pass-through payload, got %+v", wired.Payload)
	}
}

func TestRedactEventsAppliesToEachEvent(t *testing.T) {
	events := []event.Event{
		event.New(1, event.ResourceStolen{ThiefID: "thief", VictimID: "victim", Resource: resource.Wool}),
		event.New(2, event.TurnEnded{PlayerID: "thief", Number: 1}),
	}
	out := redactEvents(events, "bystander")
	if len(out) != 2 {
		t.Fatalf("expected 2 wire events, got %d", len(out))
	}
	stolen, ok := out[0].Payload.(event.ResourceStolen)
	if !ok || stolen.Resource != "" {
		t.Fatalf("expected redacted resource for bystander, got %+v", out[0].Payload)
	}
}
