package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sandevgo/secretowatch/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type sent struct {
	to   string
	text string
	opts []interface{}
}

type fakeBot struct {
	sent []sent
	errs []error
}

func (f *fakeBot) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	f.sent = append(f.sent, sent{to: to.Recipient(), text: what.(string), opts: opts})
	return &tele.Message{}, nil
}

func fastRetrier() *retry.Retrier {
	return retry.NewRetrier(&retry.Config{
		MaxRetries:    2,
		BackoffFactor: 1,
		InitialDelay:  time.Millisecond,
		MaxDelay:      time.Millisecond,
	})
}

func TestNotifier_Notify(t *testing.T) {
	bot := &fakeBot{}
	n := newNotifier(bot, 42, fastRetrier())

	require.NoError(t, n.Notify(context.Background(), "New Secreto(s)!", "you are *great*\n\n<3 from [me]"))

	require.Len(t, bot.sent, 1)
	assert.Equal(t, "42", bot.sent[0].to)
	assert.Contains(t, bot.sent[0].text, "<strong>New Secreto(s)!</strong>")
	assert.Contains(t, bot.sent[0].text, "you are *great*")
	assert.Contains(t, bot.sent[0].text, "&lt;3 from [me]")
	assert.Contains(t, bot.sent[0].opts, tele.ModeHTML)
	assert.NotContains(t, bot.sent[0].opts, tele.Silent)
}

func TestNotifier_RetriesTransientErrors(t *testing.T) {
	bot := &fakeBot{errs: []error{errors.New("connection reset"), nil}}
	n := newNotifier(bot, 42, fastRetrier())

	require.NoError(t, n.Notify(context.Background(), "t", "b"))
	assert.Len(t, bot.sent, 1)
}

func TestNotifier_PermanentErrors(t *testing.T) {
	for _, cause := range []error{tele.ErrUnauthorized, tele.ErrChatNotFound, tele.ErrBlockedByUser} {
		t.Run(cause.Error(), func(t *testing.T) {
			bot := &fakeBot{errs: []error{cause, nil}}
			n := newNotifier(bot, 42, fastRetrier())

			err := n.Notify(context.Background(), "t", "b")
			assert.ErrorIs(t, err, cause)
			assert.Empty(t, bot.sent, "permanent errors must not be retried")
		})
	}
}

func TestSender_LongMessageIsChunked(t *testing.T) {
	bot := &fakeBot{}
	s := newSender(bot)

	line := strings.Repeat("x", 99)
	md := strings.Repeat(line+"\n\n", 100)

	require.NoError(t, s.sendMarkdown(context.Background(), tele.ChatID(1), md, false))

	require.Greater(t, len(bot.sent), 1)
	for i, m := range bot.sent {
		assert.LessOrEqual(t, len(m.text), maxTelegramMsgLen)
		if i > 0 {
			assert.Contains(t, m.opts, tele.Silent)
		}
	}
}

func TestSplitHTML(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   []string
	}{
		{name: "short", text: "hello", maxLen: 10, want: []string{"hello"}},
		{name: "split on newline", text: "aaaa\nbbbb", maxLen: 6, want: []string{"aaaa", "bbbb"}},
		{name: "hard split", text: "abcdefgh", maxLen: 3, want: []string{"abc", "def", "gh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitHTML(tt.text, tt.maxLen))
		})
	}
}
