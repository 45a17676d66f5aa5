package cache

import (
	"testing"
	"time"
)

func TestTimeUntilNext8AM(t *testing.T) {
	t.Parallel()

	duration := TimeUntilNext8AM()

	// Duration should always be positive and at most 24 hours
	if duration <= 0 {
		t.Errorf("expected positive duration, got %v", duration)
	}
	if duration > 24*time.Hour {
		t.Errorf("expected duration less than 24 hours, got %v", duration)
	}
}

func TestUntilNext8AM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"before 8am JST", time.Date(2024, 6, 3, 6, 30, 0, 0, jst), 90 * time.Minute},
		{"exactly 8am JST rolls to tomorrow", time.Date(2024, 6, 3, 8, 0, 0, 0, jst), 24 * time.Hour},
		{"after 8am JST", time.Date(2024, 6, 3, 20, 0, 0, 0, jst), 12 * time.Hour},
		{"UTC input is converted", time.Date(2024, 6, 2, 22, 0, 0, 0, time.UTC), 1 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := untilNext8AM(tt.now); got != tt.want {
				t.Errorf("untilNext8AM(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
