package timeline

import "testing"

// gridHeight of 960px gives 20px per slot, which keeps the pixel math in the
// tests easy to follow.
const testGridHeight = 960.0

// pixelForMinutes places a pointer y-offset inside the slot containing the
// given wall-clock minutes.
func pixelForMinutes(minutes int) float64 {
	return float64(minutes) / float64(MinutesPerDay) * testGridHeight
}

func TestSlotFromPositionQuantizesDownToSlot(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    int
	}{
		{name: "09:05 rounds to 09:00", minutes: 9*60 + 5, want: 540},
		{name: "09:50 rounds to 09:30", minutes: 9*60 + 50, want: 570},
		{name: "midnight", minutes: 0, want: 0},
		{name: "23:59 clamps to last slot", minutes: 23*60 + 59, want: 1410},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := SlotFromPosition(pixelForMinutes(testCase.minutes), testGridHeight)
			if got != testCase.want {
				t.Fatalf("expected %d minutes, got %d", testCase.want, got)
			}
		})
	}
}

func TestSlotFromPositionClampsOutOfGridPointers(t *testing.T) {
	if got := SlotFromPosition(-25, testGridHeight); got != 0 {
		t.Fatalf("expected pointer above grid to clamp to 0, got %d", got)
	}
	if got := SlotFromPosition(testGridHeight+100, testGridHeight); got != 1410 {
		t.Fatalf("expected pointer below grid to clamp to last slot, got %d", got)
	}
	if got := SlotFromPosition(100, 0); got != 0 {
		t.Fatalf("expected zero-height grid to yield 0, got %d", got)
	}
}

func TestDragFrom905To950YieldsNineToTen(t *testing.T) {
	selection := Selection{}
	selection.Begin(pixelForMinutes(9*60+5), testGridHeight)
	selection.Update(pixelForMinutes(9*60+50), testGridHeight)

	start, end, ok := selection.End()
	if !ok {
		t.Fatal("expected a candidate interval")
	}
	if start != 540 || end != 600 {
		t.Fatalf("expected 09:00-10:00 block, got [%d,%d)", start, end)
	}
}

func TestSingleClickYieldsOneFullSlot(t *testing.T) {
	selection := Selection{}
	selection.Begin(pixelForMinutes(14*60), testGridHeight)

	start, end, ok := selection.End()
	if !ok {
		t.Fatal("expected a candidate interval for a plain click")
	}
	if start != 840 || end != 870 {
		t.Fatalf("expected one 30-minute slot, got [%d,%d)", start, end)
	}
}

func TestUpwardDragNormalizesEndpoints(t *testing.T) {
	selection := Selection{}
	selection.Begin(pixelForMinutes(11*60), testGridHeight)
	selection.Update(pixelForMinutes(10*60), testGridHeight)

	start, end, ok := selection.End()
	if !ok {
		t.Fatal("expected a candidate interval")
	}
	if start != 600 || end != 690 {
		t.Fatalf("expected normalized [600,690), got [%d,%d)", start, end)
	}
}

func TestEndWithoutBeginProducesNothing(t *testing.T) {
	selection := Selection{}
	if _, _, ok := selection.End(); ok {
		t.Fatal("expected no candidate without an active gesture")
	}
}

func TestCancelAbandonsGesture(t *testing.T) {
	selection := Selection{}
	selection.Begin(pixelForMinutes(8*60), testGridHeight)
	selection.Cancel()

	if selection.Active() {
		t.Fatal("expected selection to be inactive after cancel")
	}
	if _, _, ok := selection.End(); ok {
		t.Fatal("expected no candidate after cancel")
	}
}

func TestPreviewLayoutAppliesInclusiveEnd(t *testing.T) {
	selection := Selection{}
	selection.Begin(pixelForMinutes(9*60), testGridHeight)
	selection.Update(pixelForMinutes(9*60+30), testGridHeight)

	preview, ok := selection.PreviewLayout()
	if !ok {
		t.Fatal("expected a preview while selecting")
	}

	// The preview covers the same interval End() will produce: [540,600).
	want := LayoutFor(540, 600)
	if preview != want {
		t.Fatalf("expected preview %+v, got %+v", want, preview)
	}

	selection.Cancel()
	if _, ok := selection.PreviewLayout(); ok {
		t.Fatal("expected no preview when idle")
	}
}
