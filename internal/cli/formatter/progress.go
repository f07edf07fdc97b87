package formatter

import (
	"fmt"
	"strings"
)

const (
	fullCell  = "⬢"
	emptyCell = "⬡"
	// maxCells caps how many hexagons a comb row draws.
	maxCells = 16
)

// RenderComb draws done of total cells as a row of hexagons, with a count
// when the row would be too long.
func RenderComb(done, total int) string {
	if total < 1 {
		return Dim("no cells")
	}
	if done < 0 {
		done = 0
	}
	label := fmt.Sprintf(" %d/%d", done, total)
	if total > maxCells {
		filled := done * maxCells / total
		if filled > maxCells {
			filled = maxCells
		}
		return StyleHoney.Render(strings.Repeat(fullCell, filled)) +
			Dim(strings.Repeat(emptyCell, maxCells-filled)) + label
	}
	if done > total {
		done = total
	}
	return StyleHoney.Render(strings.Repeat(fullCell, done)) +
		Dim(strings.Repeat(emptyCell, total-done)) + label
}

// RenderProgress renders [████░░░░]  45% coloured by how far along it is.
func RenderProgress(pct float64, width int) string {
	pct = max(0, min(pct, 1))
	width = max(width, 2)

	filled := int(pct * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := StyleLeaf
	switch {
	case pct < 0.33:
		style = StyleBerry
	case pct < 0.66:
		style = StyleHoney
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
