package timeline

import "testing"

func TestCommitAppendsBlockWithPaletteColor(t *testing.T) {
	blocks := Commit(nil, 540, 600, "Deep work")

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	block := blocks[0]
	if block.ID == "" {
		t.Fatal("expected a generated id")
	}
	if block.Title != "Deep work" {
		t.Fatalf("expected trimmed title, got %q", block.Title)
	}
	if block.StartTime != 540 || block.EndTime != 600 {
		t.Fatalf("expected interval [540,600), got [%d,%d)", block.StartTime, block.EndTime)
	}
	if block.Color != PaletteColor(0) {
		t.Fatalf("expected first palette color, got %q", block.Color)
	}

	blocks = Commit(blocks, 600, 660, "Review")
	if blocks[1].Color != PaletteColor(1) {
		t.Fatalf("expected second palette color, got %q", blocks[1].Color)
	}
}

func TestCommitRejectsBlankTitle(t *testing.T) {
	if blocks := Commit(nil, 540, 600, "   "); len(blocks) != 0 {
		t.Fatalf("expected no block for blank title, got %d", len(blocks))
	}
}

func TestCommitRejectsEmptyOrOutOfBoundsInterval(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
	}{
		{name: "zero duration", start: 540, end: 540},
		{name: "inverted", start: 600, end: 540},
		{name: "negative start", start: -30, end: 60},
		{name: "past midnight", start: 1440, end: 1470},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if blocks := Commit(nil, testCase.start, testCase.end, "Title"); len(blocks) != 0 {
				t.Fatalf("expected no block for [%d,%d)", testCase.start, testCase.end)
			}
		})
	}
}

func TestCommitDedupIsIdempotent(t *testing.T) {
	blocks := Commit(nil, 540, 600, "Morning run")
	blocks = Commit(blocks, 540, 600, "Morning run")
	blocks = Commit(blocks, 540, 600, "MORNING RUN")
	blocks = Commit(blocks, 540, 600, "  morning run  ")

	if len(blocks) != 1 {
		t.Fatalf("expected dedup to keep exactly 1 block, got %d", len(blocks))
	}
}

func TestCommitKeepsDistinctIntervalsAndTitles(t *testing.T) {
	blocks := Commit(nil, 540, 600, "Run")
	blocks = Commit(blocks, 540, 630, "Run")
	blocks = Commit(blocks, 540, 600, "Swim")

	if len(blocks) != 3 {
		t.Fatalf("expected 3 distinct blocks, got %d", len(blocks))
	}
}

func TestCommitAllowsOverlappingBlocks(t *testing.T) {
	blocks := Commit(nil, 540, 660, "Meeting")
	blocks = Commit(blocks, 600, 720, "Lunch prep")

	if len(blocks) != 2 {
		t.Fatalf("expected overlap to be permitted, got %d blocks", len(blocks))
	}
}

func TestRenameReplacesTitleWithoutDedupCheck(t *testing.T) {
	blocks := Commit(nil, 540, 600, "First")
	blocks = Commit(blocks, 540, 600, "Second")

	blocks = Rename(blocks, blocks[1].ID, "First")

	if len(blocks) != 2 {
		t.Fatalf("expected rename to keep both blocks, got %d", len(blocks))
	}
	if blocks[1].Title != "First" {
		t.Fatalf("expected renamed title, got %q", blocks[1].Title)
	}
}

func TestDeleteRemovesByID(t *testing.T) {
	blocks := Commit(nil, 540, 600, "Keep")
	blocks = Commit(blocks, 600, 660, "Drop")

	blocks = Delete(blocks, blocks[1].ID)

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block after delete, got %d", len(blocks))
	}
	if blocks[0].Title != "Keep" {
		t.Fatalf("expected remaining block to be Keep, got %q", blocks[0].Title)
	}

	unchanged := Delete(blocks, "missing-id")
	if len(unchanged) != 1 {
		t.Fatalf("expected delete of unknown id to be a no-op, got %d blocks", len(unchanged))
	}
}

func TestDedupFiltersStorageDuplicates(t *testing.T) {
	// Content loaded from storage may already contain duplicates written by
	// older clients; the render-time filter must drop them.
	stored := []Block{
		{ID: "a", Title: "Gym", StartTime: 420, EndTime: 480},
		{ID: "b", Title: " gym ", StartTime: 420, EndTime: 480},
		{ID: "c", Title: "GYM", StartTime: 420, EndTime: 480},
		{ID: "d", Title: "Gym", StartTime: 480, EndTime: 540},
	}

	unique := Dedup(stored)

	if len(unique) != 2 {
		t.Fatalf("expected 2 unique blocks, got %d", len(unique))
	}
	if unique[0].ID != "a" || unique[1].ID != "d" {
		t.Fatalf("expected first occurrences to win, got %q and %q", unique[0].ID, unique[1].ID)
	}
}

func TestPaletteColorCyclesDeterministically(t *testing.T) {
	first := PaletteColor(0)
	wrapped := PaletteColor(8)
	if first != wrapped {
		t.Fatalf("expected palette to wrap after 8 blocks: %q vs %q", first, wrapped)
	}
	if PaletteColor(-1) != first {
		t.Fatalf("expected negative count to fall back to first color")
	}
}
