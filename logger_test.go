package vecmask

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("Delete", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferLogger(&buf)

		l.LogDelete(ctx, 5, true, nil)
		assert.Contains(t, buf.String(), `"msg":"delete completed"`)
		assert.Contains(t, buf.String(), `"changed":true`)

		buf.Reset()
		l.LogDelete(ctx, 5, false, errors.New("boom"))
		assert.Contains(t, buf.String(), `"msg":"delete failed"`)
		assert.Contains(t, buf.String(), `"error":"boom"`)
	})

	t.Run("Restore", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferLogger(&buf)

		l.LogRestore(ctx, 5, false, nil)
		assert.Contains(t, buf.String(), `"msg":"restore completed"`)
		assert.Contains(t, buf.String(), `"changed":false`)
	})

	t.Run("WithFields", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferLogger(&buf).WithSize(128).WithID(3)

		l.LogMerge(ctx, 128, nil)
		out := buf.String()
		assert.Contains(t, out, `"size":128`)
		assert.Contains(t, out, `"id":3`)
		assert.Contains(t, out, `"msg":"merge completed"`)
	})

	t.Run("Scan", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferLogger(&buf)

		l.LogScan(ctx, 10, 2, nil)
		assert.Contains(t, buf.String(), `"visited":10`)
		assert.Contains(t, buf.String(), `"excluded":2`)

		buf.Reset()
		l.LogScan(ctx, 4, 0, context.Canceled)
		assert.Contains(t, buf.String(), `"msg":"scan failed"`)
	})

	t.Run("Noop", func(t *testing.T) {
		l := NoopLogger()
		assert.False(t, l.Enabled(ctx, slog.LevelError))
		l.LogDelete(ctx, 1, true, nil)
	})
}

func TestMask_Logging(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	m := New(16, WithLogger(newBufferLogger(&buf)))

	require.NoError(t, m.Delete(ctx, 1))
	require.Error(t, m.Delete(ctx, 16))
	require.NoError(t, m.Scan(ctx, func(uint32) bool { return true }))

	out := buf.String()
	assert.Contains(t, out, `"msg":"delete completed"`)
	assert.Contains(t, out, `"msg":"delete failed"`)
	assert.Contains(t, out, `"msg":"scan completed"`)
	assert.Contains(t, out, `"visited":15`)
	assert.Contains(t, out, "Tombstone snapshot taken")
	assert.Contains(t, out, `"size":16`)
}
