package exam

import "testing"

func TestComputeTier_Thresholds(t *testing.T) {
	tests := []struct {
		name     string
		points   float64
		mastered int
		want     Tier
	}{
		{"zero", 0, 0, TierNovice},
		{"points without mastery", 450, 0, TierNovice},
		{"mastery without points", 120, 3, TierNovice},
		{"advanced boundary", 300, 1, TierAdvanced},
		{"just below advanced points", 299.5, 1, TierNovice},
		{"expert boundary", 500, 2, TierExpert},
		{"expert points, too few mastered", 650, 1, TierAdvanced},
		{"master boundary", 700, 3, TierMaster},
		{"master points, expert mastery", 800, 2, TierExpert},
		{"legend boundary", 900, 4, TierLegend},
		{"legend points, master mastery", 1200, 3, TierMaster},
		{"well past legend", 1402.5, 5, TierLegend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTier(tt.points, tt.mastered); got != tt.want {
				t.Errorf("ComputeTier(%v, %d) = %s, want %s",
					tt.points, tt.mastered, got.Label(), tt.want.Label())
			}
		})
	}
}

func TestComputeTier_MonotonicInPoints(t *testing.T) {
	for mastered := 0; mastered <= 5; mastered++ {
		prev := TierNovice
		for points := 0.0; points <= 1500; points += 25 {
			got := ComputeTier(points, mastered)
			if got < prev {
				t.Fatalf("tier decreased from %s to %s at points=%v mastered=%d",
					prev.Label(), got.Label(), points, mastered)
			}
			prev = got
		}
	}
}

func TestComputeTier_MonotonicInMastered(t *testing.T) {
	for points := 0.0; points <= 1500; points += 100 {
		prev := TierNovice
		for mastered := 0; mastered <= 6; mastered++ {
			got := ComputeTier(points, mastered)
			if got < prev {
				t.Fatalf("tier decreased from %s to %s at points=%v mastered=%d",
					prev.Label(), got.Label(), points, mastered)
			}
			prev = got
		}
	}
}
