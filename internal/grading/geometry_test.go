package grading

import "testing"

func TestPointInZone(t *testing.T) {
	const eps = 1e-6
	tests := []struct {
		name            string
		x, y, zx, zy, r float64
		want            bool
	}{
		{"dead center", 10, 10, 10, 10, 5, true},
		{"on the raw radius", 15, 10, 10, 10, 5, true},
		{"just inside tolerance", 10 + 5*1.2 - eps, 10, 10, 10, 5, true},
		{"exactly on tolerance", 16, 10, 10, 10, 5, true},
		{"just outside tolerance", 10 + 5*1.2 + eps, 10, 10, 10, 5, false},
		{"diagonal inside", 13, 14, 10, 10, 5, true},
		{"far away", 100, 100, 10, 10, 5, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointInZone(tc.x, tc.y, tc.zx, tc.zy, tc.r); got != tc.want {
				t.Fatalf("PointInZone(%v,%v,%v,%v,%v) = %v, want %v", tc.x, tc.y, tc.zx, tc.zy, tc.r, got, tc.want)
			}
		})
	}
}
