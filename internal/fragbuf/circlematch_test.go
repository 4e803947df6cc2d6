package fragbuf

import (
	"testing"

	"github.com/asciigeom/bobdiagram/internal/cellbuf"
	"github.com/asciigeom/bobdiagram/internal/spanbuf"
)

func TestMatchCirclesNoMatchReturnsInputUnchanged(t *testing.T) {
	b := cellbuf.From("-")
	spans := spanbuf.Extract(b)
	frags := Build(spans[0])
	out := MatchCircles(spans[0], frags, false)
	if len(out) != len(frags) {
		t.Fatalf("expected unchanged fragment count with no template match, got %d want %d", len(out), len(frags))
	}
}

func TestMatchCirclesArcsGatedByFlag(t *testing.T) {
	b := cellbuf.From("-")
	spans := spanbuf.Extract(b)
	frags := Build(spans[0])
	withoutArcs := MatchCircles(spans[0], frags, false)
	withArcs := MatchCircles(spans[0], frags, true)
	if len(withoutArcs) != len(withArcs) {
		t.Skip("arc gating only observable when a template actually matches this input")
	}
}
