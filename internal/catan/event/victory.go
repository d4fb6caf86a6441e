package event

// VictoryPointRevealed records one previously hidden victory-point dev card
// being exposed as part of a winning player's point breakdown.
type VictoryPointRevealed struct {
	PlayerID string
	CardID   string
}

func (VictoryPointRevealed) Kind() Kind { return KindVictoryPointRevealed }

// PlayerWon ends the game. Breakdown keys are source labels (settlements,
// cities, longest_road, largest_army, development_cards) mapped to the
// point contribution from each.
type PlayerWon struct {
	PlayerID  string
	Breakdown map[string]int
}

func (PlayerWon) Kind() Kind { return KindPlayerWon }
