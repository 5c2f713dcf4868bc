package room

import "sort"

// ReindexSeats assigns dense 0..n-1 order values preserving the players'
// relative seat order. The input slice is not modified.
func ReindexSeats(players []Player) []Player {
	reindexed := make([]Player, len(players))
	copy(reindexed, players)
	sort.SliceStable(reindexed, func(i, j int) bool {
		return reindexed[i].Order < reindexed[j].Order
	})
	for i := range reindexed {
		reindexed[i].Order = i
	}
	return reindexed
}

// RecomputeTurnOrder filters a previous turn order down to still-seated
// player ids, then appends seated ids the order did not yet contain, in seat
// order. This self-heals any drift between the turn order and the seat set.
func RecomputeTurnOrder(previous []string, seated []Player) []string {
	seatedSet := make(map[string]struct{}, len(seated))
	for _, p := range seated {
		seatedSet[p.ID] = struct{}{}
	}

	order := make([]string, 0, len(seated))
	inOrder := make(map[string]struct{}, len(seated))
	for _, id := range previous {
		if _, ok := seatedSet[id]; !ok {
			continue
		}
		if _, dup := inOrder[id]; dup {
			continue
		}
		order = append(order, id)
		inOrder[id] = struct{}{}
	}

	bySeat := make([]Player, len(seated))
	copy(bySeat, seated)
	sort.SliceStable(bySeat, func(i, j int) bool {
		return bySeat[i].Order < bySeat[j].Order
	})
	for _, p := range bySeat {
		if _, ok := inOrder[p.ID]; !ok {
			order = append(order, p.ID)
			inOrder[p.ID] = struct{}{}
		}
	}
	return order
}

// SnakeOrder returns the initial placement sequence: the turn order followed
// by its reverse.
func SnakeOrder(turnOrder []string) []string {
	snake := make([]string, 0, len(turnOrder)*2)
	snake = append(snake, turnOrder...)
	for i := len(turnOrder) - 1; i >= 0; i-- {
		snake = append(snake, turnOrder[i])
	}
	return snake
}

// PlayerIDs returns the ids of the given players in slice order.
func PlayerIDs(players []Player) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids
}

// UsedColors returns the colors held by the given players.
func UsedColors(players []Player) []Color {
	colors := make([]Color, len(players))
	for i, p := range players {
		colors[i] = p.Color
	}
	return colors
}
