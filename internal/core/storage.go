package core

import "context"

// MessageStore keeps every message ever recorded. It is append only.
type MessageStore interface {
	Load(ctx context.Context) ([]Message, error)
	Append(ctx context.Context, msgs []Message, order AppendOrder) error
}
