package core

import "time"

type WatchConfig interface {
	GetURL() string
	GetSelector() string
	GetStorePath() string
	GetInterval() time.Duration
	GetFetchTimeout() time.Duration
	GetAppendOrder() AppendOrder
	GetNotifyTitle() string
}

type TelegramConfig interface {
	GetTelegramToken() string
	GetTelegramChatID() int64
}
