package validate

import (
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/violation"
)

func validateProposeTrade(in intent.ProposeTrade, s *model.GameState) []violation.Violation {
	p, _ := s.Player(in.PlayerID())
	if !p.Resources.Contains(in.Offered) {
		return one(violation.InsufficientResources, "insufficient resources to offer")
	}
	return nil
}

func validateAcceptTrade(in intent.AcceptTrade, s *model.GameState) []violation.Violation {
	trade, ok := s.Turn.TradeByID(in.TradeID)
	if !ok {
		return one(violation.NoSuchTradeProposal, "no such open trade proposal")
	}
	var out []violation.Violation
	if trade.ProposerID == in.PlayerID() {
		out = append(out, violation.New(violation.CannotTradeWithSelf, "the proposer cannot accept their own trade"))
	}
	if !trade.IsTargeted(in.PlayerID()) {
		out = append(out, violation.New(violation.NotTargetOfTrade, "this player is not a target of the trade"))
	}
	if trade.Accepters[in.PlayerID()] {
		out = append(out, violation.New(violation.TradeAlreadyAccepted, "already accepted this trade"))
	}
	p, _ := s.Player(in.PlayerID())
	if !p.Resources.Contains(trade.Requested) {
		out = append(out, violation.New(violation.InsufficientResources, "insufficient resources to accept"))
	}
	return out
}

func validateRejectTrade(in intent.RejectTrade, s *model.GameState) []violation.Violation {
	trade, ok := s.Turn.TradeByID(in.TradeID)
	if !ok {
		return one(violation.NoSuchTradeProposal, "no such open trade proposal")
	}
	if trade.ProposerID == in.PlayerID() {
		return one(violation.CannotTradeWithSelf, "the proposer cannot reject their own trade")
	}
	if !trade.IsTargeted(in.PlayerID()) {
		return one(violation.NotTargetOfTrade, "this player is not a target of the trade")
	}
	return nil
}

func validateCancelTrade(in intent.CancelTrade, s *model.GameState) []violation.Violation {
	trade, ok := s.Turn.TradeByID(in.TradeID)
	if !ok {
		return one(violation.NoSuchTradeProposal, "no such open trade proposal")
	}
	if trade.ProposerID != in.PlayerID() {
		return one(violation.NotTargetOfTrade, "only the proposer may cancel a trade")
	}
	return nil
}

func validateExecuteTrade(in intent.ExecuteTrade, s *model.GameState) []violation.Violation {
	trade, ok := s.Turn.TradeByID(in.TradeID)
	if !ok {
		return one(violation.NoSuchTradeProposal, "no such open trade proposal")
	}
	var out []violation.Violation
	if trade.ProposerID != in.PlayerID() {
		out = append(out, violation.New(violation.NotTargetOfTrade, "only the proposer may execute a trade"))
	}
	if !trade.Accepters[in.AccepterID] {
		out = append(out, violation.New(violation.TradeAlreadyAccepted, "the named accepter has not accepted this trade"))
	}
	proposer, _ := s.Player(trade.ProposerID)
	accepter, accOK := s.Player(in.AccepterID)
	if !accOK {
		out = append(out, violation.New(violation.NotTargetOfTrade, "unknown accepter"))
	} else {
		if !proposer.Resources.Contains(trade.Offered) {
			out = append(out, violation.New(violation.InsufficientResources, "proposer no longer holds the offered bundle"))
		}
		if !accepter.Resources.Contains(trade.Requested) {
			out = append(out, violation.New(violation.InsufficientResources, "accepter no longer holds the requested bundle"))
		}
	}
	return out
}

func validateMaritimeTrade(in intent.MaritimeTrade, s *model.GameState) []violation.Violation {
	var out []violation.Violation
	p, _ := s.Player(in.PlayerID())
	ratio := s.Board.BestRatio(p.OccupiedNodes(), in.Given)
	if !p.Resources.Has(in.Given, ratio) {
		out = append(out, violation.New(violation.InsufficientResources, "insufficient resources for the maritime trade ratio"))
	}
	if !s.Bank.Resources.Has(in.Received, 1) {
		out = append(out, violation.New(violation.NoSupplyRemaining, "the bank has none of the requested resource"))
	}
	if ratio < 2 || ratio > 4 {
		out = append(out, violation.New(violation.InvalidTradeRatio, "no qualifying maritime ratio"))
	}
	return out
}
