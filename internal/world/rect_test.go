package world

import "testing"

func TestRectCenter(t *testing.T) {
	tests := []struct {
		rect  Rect
		wantX int
		wantY int
	}{
		{NewRect(0, 0, 4, 4), 2, 2},
		{NewRect(20, 15, 10, 15), 25, 22},
		{NewRect(1, 1, 3, 2), 2, 2},
		{NewRect(5, 7, 2, 2), 6, 8},
	}

	for _, tt := range tests {
		x, y := tt.rect.Center()
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("%+v.Center() = (%d,%d), want (%d,%d)", tt.rect, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(10, 10, 5, 5) // x 10..15, y 10..15

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", NewRect(12, 12, 5, 5), true},
		{"contained", NewRect(11, 11, 2, 2), true},
		{"shared edge", NewRect(15, 10, 5, 5), true},
		{"shared corner", NewRect(15, 15, 3, 3), true},
		{"gap of one", NewRect(16, 10, 5, 5), false},
		{"far away", NewRect(40, 40, 5, 5), false},
		{"above", NewRect(10, 0, 5, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectInterior(t *testing.T) {
	r := NewRect(2, 3, 4, 3) // x 2..6, y 3..6

	if got := r.InteriorArea(); got != 6 {
		t.Errorf("InteriorArea() = %d, want 6", got)
	}
	if !r.InInterior(3, 4) || !r.InInterior(5, 5) {
		t.Error("interior cells should be inside")
	}
	for _, p := range []Point{{2, 4}, {6, 4}, {3, 3}, {3, 6}} {
		if r.InInterior(p.X, p.Y) {
			t.Errorf("border cell %+v reported as interior", p)
		}
	}
}
