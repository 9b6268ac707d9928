package racer

import "testing"

func TestLaneForX(t *testing.T) {
	const w = 240 // Thirds at 80 and 160

	tests := []struct {
		name string
		x    int
		want int
	}{
		{"left third", 10, 0},
		{"last left pixel", 79, 0},
		{"first center pixel", 80, 1},
		{"center", 120, 1},
		{"last center pixel", 159, 1},
		{"first right pixel", 160, 2},
		{"right third", 239, 2},
		{"clamped below", -50, 0},
		{"clamped above", 500, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LaneForX(tt.x, w); got != tt.want {
				t.Errorf("LaneForX(%d, %d) = %d, want %d", tt.x, w, got, tt.want)
			}
		})
	}
}

func TestLaneForXDegenerateFrame(t *testing.T) {
	if got := LaneForX(100, 0); got != DefaultLane {
		t.Errorf("Zero frame width should yield the center lane, got %d", got)
	}
	if got := LaneForX(100, -5); got != DefaultLane {
		t.Errorf("Negative frame width should yield the center lane, got %d", got)
	}
}

func TestLaneForXUnevenWidth(t *testing.T) {
	// A width that does not divide by three still covers every pixel.
	const w = 100
	for x := 0; x < w; x++ {
		lane := LaneForX(x, w)
		if lane < 0 || lane >= LaneCount {
			t.Fatalf("LaneForX(%d, %d) = %d out of range", x, w, lane)
		}
	}
}
