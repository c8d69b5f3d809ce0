package stats

import "testing"

func TestPercentile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	tests := []struct {
		p    int
		want float64
	}{
		{0, 10},
		{50, 60},
		{95, 100},
		{100, 100},
	}
	for _, tt := range tests {
		if got := Percentile(sorted, tt.p); got != tt.want {
			t.Errorf("Percentile(p=%d) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPercentileEmpty(t *testing.T) {
	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("Percentile(nil) = %v, want 0", got)
	}
}

func TestPercentileSingle(t *testing.T) {
	single := []float64{42}
	for _, p := range []int{0, 50, 100} {
		if got := Percentile(single, p); got != 42 {
			t.Errorf("Percentile(p=%d) = %v, want 42", p, got)
		}
	}
}
