package flatfile

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sandevgo/secretowatch/internal/core"
	"github.com/sandevgo/secretowatch/pkg/log"
)

// Store is the message history kept in a single text file. It does no
// locking: callers run at most one Load/Append sequence at a time.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the whole history. A missing file is an empty history; the
// file is not created until the first Append.
func (s *Store) Load(ctx context.Context) ([]core.Message, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.FromCtx(ctx).Debug().Str("path", s.path).Msg("history file not found, starting empty")
			return nil, nil
		}
		return nil, &core.StoreIOError{Op: "open", Path: s.path, Err: err}
	}
	defer f.Close()

	msgs, err := Decode(f)
	if err != nil {
		return nil, &core.StoreIOError{Op: "read", Path: s.path, Err: err}
	}

	log.FromCtx(ctx).Debug().Int("count", len(msgs)).Msg("loaded message history")
	return msgs, nil
}

// Append adds msgs to the end of the file in the given order. The batch is
// written with a single write call.
func (s *Store) Append(ctx context.Context, msgs []core.Message, order core.AppendOrder) error {
	if len(msgs) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &core.StoreIOError{Op: "mkdir", Path: s.path, Err: err}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return &core.StoreIOError{Op: "open", Path: s.path, Err: err}
	}

	tail, err := readTail(f, int64(len(recordSeparator)))
	if err != nil {
		f.Close()
		return &core.StoreIOError{Op: "read", Path: s.path, Err: err}
	}

	data := append([]byte(separatorFor(tail)), Encode(ordered(msgs, order))...)
	if _, err := f.Write(data); err != nil {
		f.Close()
		return &core.StoreIOError{Op: "append", Path: s.path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &core.StoreIOError{Op: "close", Path: s.path, Err: err}
	}

	log.FromCtx(ctx).Debug().Int("count", len(msgs)).Str("order", string(order)).Msg("appended messages")
	return nil
}

func readTail(f *os.File, n int64) ([]byte, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := info.Size()
	if size == 0 {
		return nil, nil
	}
	if size < n {
		n = size
	}

	tail := make([]byte, n)
	if _, err := f.ReadAt(tail, size-n); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return tail, nil
}

func ordered(msgs []core.Message, order core.AppendOrder) []core.Message {
	if order == core.AppendForward {
		return msgs
	}

	reversed := make([]core.Message, len(msgs))
	for i, m := range msgs {
		reversed[len(msgs)-1-i] = m
	}
	return reversed
}
