package ui

import "image/color"

type legendRow struct {
	label string
	color color.RGBA
}

var legendLabels = []string{"solid", "eroded", "water", "water at bottom"}

var keyHelp = []string{
	"space  start",
	"c      cancel",
	"r      reset (new seed)",
	"s      reset (fixed seed)",
	"h      hide legend",
}

// legendRows pairs the palette entries with their meaning. Entries without a
// label are skipped.
func legendRows(palette []color.RGBA) []legendRow {
	rows := make([]legendRow, 0, len(palette))
	for i, c := range palette {
		if i >= len(legendLabels) {
			break
		}
		rows = append(rows, legendRow{label: legendLabels[i], color: c})
	}
	return rows
}
