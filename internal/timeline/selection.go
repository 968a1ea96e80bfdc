package timeline

// Selection models the drag gesture that creates a block: mouse down anchors
// the start slot, mouse move updates the end slot, mouse up produces a
// candidate interval. All state is local to the gesture; nothing is appended
// to a collection until the title is confirmed through Commit.
type Selection struct {
	active bool
	start  int
	end    int
}

// SlotFromPosition maps a pixel offset inside the day grid to minutes since
// midnight, rounding down to the enclosing 30-minute slot and clamping to the
// grid. gridHeight is the rendered height of the full 48-slot column.
func SlotFromPosition(relativeY float64, gridHeight float64) int {
	if gridHeight <= 0 {
		return 0
	}
	slotHeight := gridHeight / SlotsPerDay
	slot := int(relativeY / slotHeight)
	if slot < 0 {
		slot = 0
	}
	if slot > SlotsPerDay-1 {
		slot = SlotsPerDay - 1
	}
	return slot * SlotMinutes
}

// Begin enters the selecting state, anchoring both endpoints on the pressed slot.
func (selection *Selection) Begin(relativeY float64, gridHeight float64) {
	minutes := SlotFromPosition(relativeY, gridHeight)
	selection.active = true
	selection.start = minutes
	selection.end = minutes
}

// Update moves the free endpoint while the drag is in progress. The endpoint
// may travel above the anchor; ordering is resolved at End.
func (selection *Selection) Update(relativeY float64, gridHeight float64) {
	if !selection.active {
		return
	}
	selection.end = SlotFromPosition(relativeY, gridHeight)
}

// Cancel abandons the gesture without producing a candidate, mirroring the
// pointer leaving the grid mid-drag.
func (selection *Selection) Cancel() {
	selection.active = false
}

// Active reports whether a drag is in progress.
func (selection *Selection) Active() bool {
	return selection.active
}

// End finishes the gesture and returns the candidate interval. The end slot
// is inclusive, so 30 minutes are added past the last touched slot; a plain
// click therefore still yields one full slot. ok is false when no gesture was
// in progress or the adjusted interval is empty.
func (selection *Selection) End() (start int, end int, ok bool) {
	if !selection.active {
		return 0, 0, false
	}
	selection.active = false

	start = selection.start
	end = selection.end
	if end < start {
		start, end = end, start
	}
	end += SlotMinutes

	if end <= start {
		return 0, 0, false
	}
	return start, end, true
}

// PreviewLayout renders the live selection rectangle with the same inclusive
// end adjustment the finished gesture will get.
func (selection *Selection) PreviewLayout() (Layout, bool) {
	if !selection.active {
		return Layout{}, false
	}
	start := selection.start
	end := selection.end
	if end < start {
		start, end = end, start
	}
	return LayoutFor(start, end+SlotMinutes), true
}
