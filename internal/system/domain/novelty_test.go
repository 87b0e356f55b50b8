package domain

import (
	"testing"
	"time"
)

func TestNovelty(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name          string
		createdAt     time.Time
		wantNew       bool
		wantRemaining int
	}{
		{"created today", now, true, 60},
		{"created yesterday", now.AddDate(0, 0, -1), true, 59},
		{"one day left", now.AddDate(0, 0, -59), true, 1},
		{"window just expired", now.AddDate(0, 0, -60), false, 0},
		{"long expired", now.AddDate(0, 0, -200), false, 0},
		{"future timestamp", now.AddDate(0, 0, 3), false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isNew, remaining := Novelty(tc.createdAt, now)
			if isNew != tc.wantNew {
				t.Errorf("isNew = %v, want %v", isNew, tc.wantNew)
			}
			if remaining != tc.wantRemaining {
				t.Errorf("remaining = %d, want %d", remaining, tc.wantRemaining)
			}
		})
	}
}

func TestNoveltyPartialDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// 59 days and 23 hours elapsed still counts as day 59.
	isNew, remaining := Novelty(now.Add(-59*24*time.Hour-23*time.Hour), now)
	if !isNew {
		t.Fatal("expected system to still be new")
	}
	if remaining != 1 {
		t.Fatalf("remaining = %d, want 1", remaining)
	}
}
