package apply

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/model"
)

func applyPlayerWon(s *model.GameState, p event.PlayerWon) {
	s.Turn.Phase = model.PhaseEnded
	winner := p.PlayerID
	s.WinnerID = &winner
}
