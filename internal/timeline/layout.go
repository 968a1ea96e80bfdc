package timeline

import "fmt"

// Layout places an interval on a percentage-based day column. The same math
// serves persisted blocks and the live selection preview.
type Layout struct {
	TopPercent    float64 `json:"topPercent"`
	HeightPercent float64 `json:"heightPercent"`
}

// LayoutFor converts a minute interval to column percentages.
func LayoutFor(start int, end int) Layout {
	return Layout{
		TopPercent:    float64(start) / MinutesPerDay * 100,
		HeightPercent: float64(end-start) / MinutesPerDay * 100,
	}
}

// BlockLayout positions a block inside the day column.
func BlockLayout(block Block) Layout {
	return LayoutFor(block.StartTime, block.EndTime)
}

// FormatMinutes renders minutes since midnight as HH:MM for display.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
