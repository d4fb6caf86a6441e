// Package award implements the shared tie-break rule behind both the
// longest-road and largest-army bonuses: a challenger must strictly exceed
// the incumbent (or, if unclaimed, reach the minimum qualifying value) to
// take the award; a tie leaves it unclaimed unless the incumbent is part of
// the tie, in which case they keep it.
package award

// Determine returns the new holder id and value for an award given the
// current holder (nil if unclaimed), the current value, the minimum
// qualifying value, and every candidate's value keyed by id. It returns
// changed=true only when the holder or value actually moves.
func Determine(values map[string]int, minQualify int, currentHolderID *string, currentValue int) (newHolderID *string, newValue int, changed bool) {
	best := 0
	var bestIDs []string
	for id, v := range values {
		if v < minQualify {
			continue
		}
		switch {
		case v > best:
			best = v
			bestIDs = []string{id}
		case v == best:
			bestIDs = append(bestIDs, id)
		}
	}

	if best == 0 {
		// Nobody qualifies; an existing holder keeps the award only if
		// their own value still clears the bar (it always will unless the
		// spec ever allows a value to regress below the minimum, which it
		// does not for roads or knights).
		return currentHolderID, currentValue, false
	}

	if len(bestIDs) == 1 {
		sole := bestIDs[0]
		if currentHolderID != nil && *currentHolderID == sole && currentValue == best {
			return currentHolderID, currentValue, false
		}
		if currentHolderID == nil || best > currentValue {
			return &bestIDs[0], best, true
		}
		return currentHolderID, currentValue, false
	}

	// Multiple candidates tie for the best value: the incumbent keeps the
	// award if they are part of the tie; otherwise it stays unclaimed.
	if currentHolderID != nil {
		for _, id := range bestIDs {
			if id == *currentHolderID {
				return currentHolderID, currentValue, false
			}
		}
	}
	return currentHolderID, currentValue, false
}
