package stats

import (
	"testing"
	"time"
)

func TestAverageTimeDividesByTileCount(t *testing.T) {
	r := Report{TotalTime: 10 * time.Second, TileCount: 5}
	if got, want := r.AverageTime(), 2*time.Second; got != want {
		t.Errorf("AverageTime() = %s, want %s", got, want)
	}
}

func TestAverageTimeOfZeroTilesIsZero(t *testing.T) {
	r := Report{TotalTime: 10 * time.Second, TileCount: 0}
	if got := r.AverageTime(); got != 0 {
		t.Errorf("AverageTime() = %s, want 0", got)
	}
}
