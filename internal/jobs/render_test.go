package jobs

import (
	"strings"
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

	t.Run("no history", func(t *testing.T) {
		d := Render(nil, StateNoHistory, now)
		if d.Headline != "First run in progress" {
			t.Errorf("headline = %q", d.Headline)
		}
		if d.IconKey != IconFirstRun {
			t.Errorf("icon = %q, want %q", d.IconKey, IconFirstRun)
		}
	})

	t.Run("running", func(t *testing.T) {
		st := &Status{StartedAt: now.Add(-83 * time.Second)}
		d := Render(st, StateRunning, now)
		if d.Headline != "Running for 1m23s" {
			t.Errorf("headline = %q", d.Headline)
		}
		if d.IconKey != IconRunning {
			t.Errorf("icon = %q, want %q", d.IconKey, IconRunning)
		}
	})

	t.Run("running without record", func(t *testing.T) {
		d := Render(nil, StateRunning, now)
		if d.Headline != "Running for 0s" {
			t.Errorf("headline = %q", d.Headline)
		}
	})

	t.Run("fresh success", func(t *testing.T) {
		fin := now.Add(-2 * time.Minute)
		st := &Status{StartedAt: fin.Add(-3 * time.Second), FinishedAt: &fin, Outcome: OutcomeSuccess, Duration: 3 * time.Second}
		d := Render(st, StateFresh, now)
		want := "Last succeeded 2m0s ago (" + fin.Format("15:04:05") + ")"
		if d.Headline != want {
			t.Errorf("headline = %q, want %q", d.Headline, want)
		}
		if d.Detail != "ran for 3s" {
			t.Errorf("detail = %q", d.Detail)
		}
		if d.IconKey != IconSuccess {
			t.Errorf("icon = %q, want %q", d.IconKey, IconSuccess)
		}
	})

	t.Run("failed", func(t *testing.T) {
		fin := now.Add(-30 * time.Second)
		st := &Status{StartedAt: fin.Add(-time.Second), FinishedAt: &fin, Outcome: OutcomeFailure, Duration: time.Second}
		d := Render(st, StateFailed, now)
		if !strings.HasPrefix(d.Headline, "Last failed 30s ago (") {
			t.Errorf("headline = %q", d.Headline)
		}
		if !strings.HasSuffix(d.Headline, "), retrying") {
			t.Errorf("headline = %q", d.Headline)
		}
		if d.IconKey != IconFailure {
			t.Errorf("icon = %q, want %q", d.IconKey, IconFailure)
		}
	})
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{-5 * time.Second, "0s"},
		{999 * time.Millisecond, "1s"},
		{45 * time.Second, "45s"},
		{60 * time.Second, "1m0s"},
		{83 * time.Second, "1m23s"},
		{59*time.Minute + 59*time.Second, "59m59s"},
		{time.Hour, "1h0m"},
		{2*time.Hour + 14*time.Minute + 9*time.Second, "2h14m"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
