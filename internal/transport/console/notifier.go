package console

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sandevgo/secretowatch/pkg/log"
)

// Notifier prints notifications to a writer. It is the fallback for
// headless hosts without a notification daemon.
type Notifier struct {
	out io.Writer
}

func NewNotifier(out io.Writer) *Notifier {
	if out == nil {
		out = os.Stdout
	}
	return &Notifier{out: out}
}

func (n *Notifier) Notify(ctx context.Context, title, body string) error {
	log.FromCtx(ctx).Info().Str("title", title).Msg("new messages")
	if _, err := fmt.Fprintf(n.out, "== %s ==\n%s\n\n", title, body); err != nil {
		return fmt.Errorf("console notification: %w", err)
	}
	return nil
}
