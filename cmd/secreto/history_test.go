package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/sandevgo/secretowatch/internal/core"
	"github.com/sandevgo/secretowatch/internal/storage/flatfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintHistory(t *testing.T) {
	ctx := context.Background()
	store := flatfile.NewStore(filepath.Join(t.TempDir(), "messages.txt"))

	var out bytes.Buffer
	require.NoError(t, printHistory(ctx, &out, store, 0))
	assert.Contains(t, out.String(), "no messages recorded yet")

	msgs := []core.Message{core.NewMessage("first"), core.NewMessage("second"), core.NewMessage("third")}
	require.NoError(t, store.Append(ctx, msgs, core.AppendForward))

	out.Reset()
	require.NoError(t, printHistory(ctx, &out, store, 2))
	assert.NotContains(t, out.String(), "first")
	assert.Contains(t, out.String(), "second")
	assert.Contains(t, out.String(), "third")
	assert.Contains(t, out.String(), "MESSAGE")
}
