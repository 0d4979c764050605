package main

import (
	"strings"
	"testing"
	"time"

	"github.com/milk9111/catburglar/storage"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61500 * time.Millisecond, "1:02"},
		{300 * time.Second, "5:00"},
	}
	for _, c := range cases {
		if got := formatDuration(c.in); got != c.want {
			t.Fatalf("formatDuration(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRenderRuns(t *testing.T) {
	if out := renderRuns(nil); !strings.Contains(out, "No runs recorded yet.") {
		t.Fatalf("empty output = %q", out)
	}

	out := renderRuns([]storage.Run{
		{Duration: 300 * time.Second, Escaped: true, Seed: 7, Enemies: 200, PlayedAt: time.Unix(0, 0)},
		{Duration: 42 * time.Second, Seed: 8, Enemies: 20, PlayedAt: time.Unix(0, 0)},
	})
	for _, want := range []string{"Rank", "5:00", "escaped", "0:42", "caught", "200"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderBest(t *testing.T) {
	if out := renderBest(storage.Run{}, false); !strings.Contains(out, "No runs") {
		t.Fatalf("no-run output = %q", out)
	}
	out := renderBest(storage.Run{Duration: 90 * time.Second, Seed: 3, Enemies: 12}, true)
	if !strings.Contains(out, "1:30") || !strings.Contains(out, "seed 3") {
		t.Fatalf("best output = %q", out)
	}
}
