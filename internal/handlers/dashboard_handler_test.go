package handlers

import (
	"testing"
	"time"
)

func TestBuildGrowth(t *testing.T) {
	day := func(d int, hour int) time.Time {
		return time.Date(2025, 6, d, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		signups []time.Time
		want    []GrowthPoint
	}{
		{
			name:    "No signups",
			signups: nil,
			want:    []GrowthPoint{},
		},
		{
			name:    "One per day",
			signups: []time.Time{day(1, 9), day(2, 9), day(3, 9)},
			want: []GrowthPoint{
				{Date: "2025-06-01", Count: 1},
				{Date: "2025-06-02", Count: 2},
				{Date: "2025-06-03", Count: 3},
			},
		},
		{
			name:    "Several on the same day collapse to one point",
			signups: []time.Time{day(1, 9), day(1, 12), day(1, 18), day(3, 9)},
			want: []GrowthPoint{
				{Date: "2025-06-01", Count: 3},
				{Date: "2025-06-03", Count: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildGrowth(tt.signups)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d points, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("point %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
