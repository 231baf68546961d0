package core

import "context"

type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type Extractor interface {
	Extract(document string) ([]Message, error)
}

// Notifier delivers a notification to the user. Delivery is best effort.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}
