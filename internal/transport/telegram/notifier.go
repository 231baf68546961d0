package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sandevgo/secretowatch/internal/core"
	"github.com/sandevgo/secretowatch/pkg/conv"
	"github.com/sandevgo/secretowatch/pkg/log"
	"github.com/sandevgo/secretowatch/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

// Notifier sends notifications to a single Telegram chat.
type Notifier struct {
	sender  *sender
	chat    tele.ChatID
	retrier *retry.Retrier
}

// NewNotifier creates a send-only bot. The token is checked against the
// Bot API once here.
func NewNotifier(cfg core.TelegramConfig) (*Notifier, error) {
	b, err := tele.NewBot(tele.Settings{
		Token:  cfg.GetTelegramToken(),
		Client: newHTTPClient(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return newNotifier(b, cfg.GetTelegramChatID(), retry.NewDefaultRetrier()), nil
}

func newNotifier(bot messageSender, chatID int64, retrier *retry.Retrier) *Notifier {
	return &Notifier{
		sender:  newSender(bot),
		chat:    tele.ChatID(chatID),
		retrier: retrier,
	}
}

func (n *Notifier) Notify(ctx context.Context, title, body string) error {
	md := fmt.Sprintf("**%s**\n\n%s", conv.EscapeMarkdown(title), conv.EscapeMarkdown(body))

	err := n.retrier.Do(ctx, func() error {
		err := n.sender.sendMarkdown(ctx, n.chat, md, false)
		if isPermanent(err) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("telegram notification: %w", err)
	}

	log.FromCtx(ctx).Debug().Int64("chat_id", int64(n.chat)).Msg("telegram notification sent")
	return nil
}

func isPermanent(err error) bool {
	return errors.Is(err, tele.ErrUnauthorized) ||
		errors.Is(err, tele.ErrChatNotFound) ||
		errors.Is(err, tele.ErrBlockedByUser)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
