package apply

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/model"
)

func applyTradeProposed(s *model.GameState, p event.TradeProposed) {
	trade := model.NewTradeProposal(p.TradeID, p.ProposerID, p.Offered, p.Requested, p.TargetIDs)
	s.Turn.OpenTrades = append(s.Turn.OpenTrades, trade)
}

func applyTradeAccepted(s *model.GameState, p event.TradeAccepted) {
	trade, ok := s.Turn.TradeByID(p.TradeID)
	if !ok {
		return
	}
	trade.Accepters[p.PlayerID] = true
}

func applyTradeRejected(s *model.GameState, p event.TradeRejected) {
	trade, ok := s.Turn.TradeByID(p.TradeID)
	if !ok {
		return
	}
	trade.Rejecters[p.PlayerID] = true
}

func applyTradeCancelled(s *model.GameState, p event.TradeCancelled) {
	s.Turn.RemoveTrade(p.TradeID)
}

func applyTradeExecuted(s *model.GameState, p event.TradeExecuted) {
	proposer, ok := s.Player(p.ProposerID)
	if !ok {
		return
	}
	accepter, ok := s.Player(p.AccepterID)
	if !ok {
		return
	}
	for t, n := range p.Offered {
		proposer.Resources.Add(t, -n)
		accepter.Resources.Add(t, n)
	}
	for t, n := range p.Requested {
		accepter.Resources.Add(t, -n)
		proposer.Resources.Add(t, n)
	}
	s.Turn.RemoveTrade(p.TradeID)
}

func applyMaritimeTradeExecuted(s *model.GameState, p event.MaritimeTradeExecuted) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	player.Resources.Add(p.Given, -p.GivenCount)
	s.Bank.Resources.Add(p.Given, p.GivenCount)
	player.Resources.Add(p.Received, 1)
	s.Bank.Resources.Add(p.Received, -1)
}
