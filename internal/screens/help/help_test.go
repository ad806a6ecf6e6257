package help

import (
	"strings"
	"testing"
)

func TestViewListsBindingsAndEndpoint(t *testing.T) {
	s := New("http://localhost:8000/generate")
	view := s.View(100, 30)

	for _, want := range []string{"Enter", "Generate the lesson", "Space", "http://localhost:8000/generate"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in help view", want)
		}
	}
}

func TestKeyHintsOfferBack(t *testing.T) {
	hints := New("").KeyHints()
	if len(hints) == 0 || hints[0].Key != "Esc" {
		t.Errorf("expected Esc as first hint, got %+v", hints)
	}
}
