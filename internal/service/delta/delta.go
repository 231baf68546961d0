package delta

import (
	"github.com/samber/lo"
	"github.com/sandevgo/secretowatch/internal/core"
)

// Diff returns the extracted messages that are not in history, in
// extraction order. Messages are compared by Key. Duplicates inside
// extracted are kept as long as they are not in history.
func Diff(extracted, history []core.Message) []core.Message {
	if len(extracted) == 0 {
		return nil
	}

	known := lo.SliceToMap(history, func(m core.Message) (string, struct{}) {
		return m.Key(), struct{}{}
	})

	fresh := lo.Filter(extracted, func(m core.Message, _ int) bool {
		_, ok := known[m.Key()]
		return !ok
	})
	if len(fresh) == 0 {
		return nil
	}
	return fresh
}
