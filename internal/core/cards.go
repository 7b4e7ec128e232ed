package core

// BuildCardGrid emits one card per key in keys order, each listing the
// items of that key in order. A key without items still gets a card.
func BuildCardGrid(title string, keys []string, items map[string][]string) CardGrid {
	grid := CardGrid{
		Title: title,
		Cards: make([]Card, 0, len(keys)),
	}

	for _, k := range keys {
		grid.Cards = append(grid.Cards, Card{
			Title: k,
			Items: append([]string(nil), items[k]...),
		})
	}

	return grid
}
