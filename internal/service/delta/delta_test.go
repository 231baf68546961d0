package delta

import (
	"testing"

	"github.com/sandevgo/secretowatch/internal/core"
	"github.com/stretchr/testify/assert"
)

func msgs(bodies ...string) []core.Message {
	out := make([]core.Message, 0, len(bodies))
	for _, b := range bodies {
		out = append(out, core.NewMessage(b))
	}
	return out
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name      string
		extracted []core.Message
		history   []core.Message
		want      []string
	}{
		{name: "nothing extracted", extracted: nil, history: msgs("a"), want: nil},
		{name: "empty history", extracted: msgs("a", "b"), history: nil, want: []string{"a", "b"}},
		{name: "all known", extracted: msgs("a", "b"), history: msgs("b", "a"), want: nil},
		{name: "keeps extraction order", extracted: msgs("c", "a", "b"), history: msgs("a"), want: []string{"c", "b"}},
		{name: "whitespace insensitive", extracted: msgs("  a\n", "b"), history: msgs("a"), want: []string{"b"}},
		{name: "inner whitespace matters", extracted: msgs("a  b"), history: msgs("a b"), want: []string{"a  b"}},
		{name: "duplicates of known dropped", extracted: msgs("X", "X", "Y"), history: msgs("X"), want: []string{"Y"}},
		{name: "duplicates in batch kept", extracted: msgs("X", "X"), history: nil, want: []string{"X", "X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.extracted, tt.history)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, core.Bodies(got))
		})
	}
}

func TestDiff_SubsetOfExtracted(t *testing.T) {
	extracted := msgs("a", "b", "c", "d")
	history := msgs("b", "z")

	got := Diff(extracted, history)

	for _, m := range got {
		assert.Contains(t, extracted, m)
		for _, h := range history {
			assert.False(t, m.Equal(h))
		}
	}
	assert.Len(t, got, 3)
}
