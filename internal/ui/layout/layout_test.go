package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestHeaderShowsStatusWhenWide(t *testing.T) {
	h := RenderHeader("New Lesson", "http://localhost:8000/generate", 140)
	if !strings.Contains(h, "New Lesson") {
		t.Error("title missing from header")
	}
	if !strings.Contains(h, "http://localhost:8000/generate") {
		t.Error("expected endpoint in wide header")
	}
}

func TestHeaderDropsStatusWhenCompact(t *testing.T) {
	h := RenderHeader("New Lesson", "http://localhost:8000/generate", 80)
	if strings.Contains(h, "localhost") {
		t.Error("status should be hidden at compact width")
	}
}

func TestHeaderTruncatesLongStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		width  int
	}{
		{"ascii", "http://" + strings.Repeat("a", 200) + "/generate", 120},
		{"wide runes", "http://" + strings.Repeat("例え", 20) + ".jp/generate", 100},
		{"wide runes at wide terminal", "http://" + strings.Repeat("例え", 60) + ".jp/generate", 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := RenderHeader("New Lesson", tt.status, tt.width)
			if !strings.Contains(h, "…") {
				t.Error("expected long status to be truncated")
			}
			if got := lipgloss.Height(h); got != 3 {
				t.Errorf("expected single-row header, got height %d", got)
			}
		})
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("narrow terminal should be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}
