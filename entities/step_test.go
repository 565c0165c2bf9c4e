package entities

import (
	"testing"
	"time"
)

func TestDurationDescribe(t *testing.T) {
	cases := []struct {
		duration time.Duration
		want     string
	}{
		{0, "0:00:00"},
		{45 * time.Second, "0:00:45"},
		{90 * time.Second, "0:01:30"},
		{2*time.Hour + 5*time.Minute + 3*time.Second, "2:05:03"},
		{25 * time.Hour, "25:00:00"},
	}
	for _, c := range cases {
		step := Step{Duration: c.duration}
		if got := step.DurationDescribe(); got != c.want {
			t.Fatalf("DurationDescribe(%v) = %q, want %q", c.duration, got, c.want)
		}
	}
}
