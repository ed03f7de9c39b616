package model

import "testing"

func TestTierFor_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  Tier
	}{
		{score: 100, want: TierExcellent},
		{score: 90, want: TierExcellent},
		{score: 89, want: TierGood},
		{score: 75, want: TierGood},
		{score: 74, want: TierAcceptable},
		{score: 60, want: TierAcceptable},
		{score: 59, want: TierPoor},
		{score: 40, want: TierPoor},
		{score: 39, want: TierVeryPoor},
		{score: 0, want: TierVeryPoor},
	}

	for _, tt := range tests {
		if got := TierFor(tt.score); got != tt.want {
			t.Errorf("TierFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestBatchReport_ValidRate(t *testing.T) {
	t.Parallel()

	empty := BatchReport{}
	if got := empty.ValidRate(); got != 0 {
		t.Errorf("ValidRate() on empty batch = %f, want 0", got)
	}

	report := BatchReport{Total: 5, Valid: 4}
	if got := report.ValidRate(); got != 0.8 {
		t.Errorf("ValidRate() = %f, want 0.8", got)
	}
}
