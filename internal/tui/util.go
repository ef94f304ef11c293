package tui

// squareCells returns the largest cell area inside w x h whose braille
// dots form a square: two dots per column, four per row.
func squareCells(w, h int) (int, int) {
	side := min(2*w, 4*h)
	return max(1, side/2), max(1, side/4)
}
