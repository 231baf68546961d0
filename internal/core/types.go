package core

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	AppName       = "secreto"
	AppUserAgent  = "SecretoWatch/0.1"
	RepositoryURL = "https://github.com/sandevgo/secretowatch"
	AppVersion    = "0.1.0"
)

// Message is one extracted block of text. Two messages are the same
// message when their bodies match after trimming surrounding whitespace.
type Message struct {
	Body string `json:"body"`
}

func NewMessage(body string) Message {
	return Message{Body: body}
}

// Key is the value messages are compared by.
func (m Message) Key() string {
	return strings.TrimSpace(m.Body)
}

func (m Message) Equal(other Message) bool {
	return m.Key() == other.Key()
}

func Bodies(msgs []Message) []string {
	return lo.Map(msgs, func(m Message, _ int) string {
		return m.Body
	})
}

// AppendOrder controls the order in which a batch of new messages is
// written to the history file.
type AppendOrder string

const (
	// AppendReverse writes the most recently found message first.
	AppendReverse AppendOrder = "reverse"
	AppendForward AppendOrder = "forward"
)

func ParseAppendOrder(s string) (AppendOrder, error) {
	switch AppendOrder(strings.ToLower(strings.TrimSpace(s))) {
	case AppendReverse, "":
		return AppendReverse, nil
	case AppendForward:
		return AppendForward, nil
	default:
		return "", fmt.Errorf("unknown append order %q", s)
	}
}
