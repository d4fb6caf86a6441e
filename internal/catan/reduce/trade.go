package reduce

import (
	"fmt"

	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
)

func reduceProposeTrade(s *model.GameState, in intent.ProposeTrade) []event.Payload {
	s.TradeSeq++
	id := fmt.Sprintf("t%d", s.TradeSeq)
	trade := model.NewTradeProposal(id, in.PlayerID(), in.Offered, in.Requested, in.TargetIDs)
	s.Turn.OpenTrades = append(s.Turn.OpenTrades, trade)

	return []event.Payload{event.TradeProposed{
		TradeID:    id,
		ProposerID: in.PlayerID(),
		Offered:    in.Offered.Clone(),
		Requested:  in.Requested.Clone(),
		TargetIDs:  append([]string(nil), in.TargetIDs...),
	}}
}

func reduceAcceptTrade(s *model.GameState, in intent.AcceptTrade) []event.Payload {
	trade, _ := s.Turn.TradeByID(in.TradeID)
	trade.Accepters[in.PlayerID()] = true
	return []event.Payload{event.TradeAccepted{TradeID: in.TradeID, PlayerID: in.PlayerID()}}
}

func reduceRejectTrade(s *model.GameState, in intent.RejectTrade) []event.Payload {
	trade, _ := s.Turn.TradeByID(in.TradeID)
	trade.Rejecters[in.PlayerID()] = true
	return []event.Payload{event.TradeRejected{TradeID: in.TradeID, PlayerID: in.PlayerID()}}
}

func reduceCancelTrade(s *model.GameState, in intent.CancelTrade) []event.Payload {
	s.Turn.RemoveTrade(in.TradeID)
	return []event.Payload{event.TradeCancelled{TradeID: in.TradeID, Reason: event.TradeCancelManual}}
}

func reduceExecuteTrade(s *model.GameState, in intent.ExecuteTrade) []event.Payload {
	trade, _ := s.Turn.TradeByID(in.TradeID)
	proposer, _ := s.Player(trade.ProposerID)
	accepter, _ := s.Player(in.AccepterID)

	for t, n := range trade.Offered {
		proposer.Resources.Add(t, -n)
		accepter.Resources.Add(t, n)
	}
	for t, n := range trade.Requested {
		accepter.Resources.Add(t, -n)
		proposer.Resources.Add(t, n)
	}
	s.Turn.RemoveTrade(in.TradeID)

	return []event.Payload{event.TradeExecuted{
		TradeID:    in.TradeID,
		ProposerID: trade.ProposerID,
		AccepterID: in.AccepterID,
		Offered:    trade.Offered.Clone(),
		Requested:  trade.Requested.Clone(),
	}}
}

func reduceMaritimeTrade(s *model.GameState, in intent.MaritimeTrade) []event.Payload {
	p, _ := s.Player(in.PlayerID())
	ratio := s.Board.BestRatio(p.OccupiedNodes(), in.Given)

	p.Resources.Add(in.Given, -ratio)
	s.Bank.Resources.Add(in.Given, ratio)
	p.Resources.Add(in.Received, 1)
	s.Bank.Resources.Add(in.Received, -1)

	return []event.Payload{event.MaritimeTradeExecuted{
		PlayerID:   in.PlayerID(),
		Given:      in.Given,
		GivenCount: ratio,
		Received:   in.Received,
	}}
}
