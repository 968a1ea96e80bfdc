package timeline

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	// SlotMinutes is the fixed grid resolution of the day timeline.
	SlotMinutes = 30
	// SlotsPerDay is the number of grid slots covering 24 hours.
	SlotsPerDay = 48
	// MinutesPerDay bounds every block interval: 0 <= start < end <= 1440.
	MinutesPerDay = SlotsPerDay * SlotMinutes
)

// Block is one titled [StartTime, EndTime) interval inside a single day,
// measured in minutes since local midnight. Blocks are never persisted on
// their own; they travel inside the parent day's content document.
type Block struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartTime int    `json:"startTime"`
	EndTime   int    `json:"endTime"`
	Color     string `json:"color,omitempty"`
}

var palette = []string{
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#06B6D4",
	"#F97316",
	"#84CC16",
}

// DefaultColor is used when a stored block arrives without a color.
const DefaultColor = "#3B82F6"

// PaletteColor returns the deterministic creation color for the n-th block.
func PaletteColor(blockCount int) string {
	if blockCount < 0 {
		blockCount = 0
	}
	return palette[blockCount%len(palette)]
}

// dedupKey identifies a block for duplicate rejection: same interval plus the
// same title up to case and surrounding whitespace.
func dedupKey(block Block) string {
	return normalizeKey(block.StartTime, block.EndTime, block.Title)
}

func normalizeKey(start int, end int, title string) string {
	normalized := strings.ToLower(strings.TrimSpace(title))
	return strconv.Itoa(start) + "|" + strconv.Itoa(end) + "|" + normalized
}

// Commit appends a new block built from a confirmed drag selection. A blank
// title or a block matching an existing (start, end, title) key leaves the
// collection unchanged. The returned slice is the caller's new collection.
func Commit(blocks []Block, start int, end int, title string) []Block {
	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return blocks
	}
	if start < 0 || end > MinutesPerDay || end <= start {
		return blocks
	}

	candidateKey := normalizeKey(start, end, trimmedTitle)
	for _, existing := range blocks {
		if dedupKey(existing) == candidateKey {
			return blocks
		}
	}

	return append(blocks, Block{
		ID:        uuid.NewString(),
		Title:     trimmedTitle,
		StartTime: start,
		EndTime:   end,
		Color:     PaletteColor(len(blocks)),
	})
}

// Rename replaces a block's title in place. No duplicate re-check happens on
// rename; edits keep their identity even when the new title collides.
func Rename(blocks []Block, id string, title string) []Block {
	for index := range blocks {
		if blocks[index].ID == id {
			blocks[index].Title = title
			break
		}
	}
	return blocks
}

// Delete removes a block by id.
func Delete(blocks []Block, id string) []Block {
	filtered := make([]Block, 0, len(blocks))
	for _, block := range blocks {
		if block.ID != id {
			filtered = append(filtered, block)
		}
	}
	return filtered
}

// Dedup drops duplicate blocks, keeping first occurrences. It runs on every
// collection loaded from storage: content written by older clients may already
// contain duplicates, so the creation-time guard in Commit is not enough.
func Dedup(blocks []Block) []Block {
	if len(blocks) == 0 {
		return blocks
	}
	seen := make(map[string]struct{}, len(blocks))
	unique := make([]Block, 0, len(blocks))
	for _, block := range blocks {
		key := dedupKey(block)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, block)
	}
	return unique
}
