package desktop

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/gen2brain/beeep"
	"github.com/sandevgo/secretowatch/pkg/log"
)

// Most notification daemons cut long bodies anyway.
const maxBodyRunes = 1000

type Notifier struct {
	send func(title, body string) error
}

func NewNotifier() *Notifier {
	return &Notifier{
		send: func(title, body string) error {
			return beeep.Notify(title, body, "")
		},
	}
}

func (n *Notifier) Notify(ctx context.Context, title, body string) error {
	if err := n.send(title, truncate(body, maxBodyRunes)); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	log.FromCtx(ctx).Debug().Str("title", title).Msg("desktop notification sent")
	return nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
