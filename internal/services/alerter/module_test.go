package alerter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	messages []string
	err      error
}

func (r *recordingSender) SendAlert(_ context.Context, message string) error {
	r.messages = append(r.messages, message)
	return r.err
}

func TestService_SendAlert_WithoutClientLogs(t *testing.T) {
	var buf bytes.Buffer
	svc := New(nil, "natal_bot", slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, svc.SendAlert(context.Background(), "chart failed"))
	assert.Contains(t, buf.String(), "alerter not configured")
	assert.Contains(t, buf.String(), "chart failed")
}

func TestService_SendAlert_PrefixesSource(t *testing.T) {
	rec := &recordingSender{}
	svc := &Service{sender: rec, source: "natal_bot", log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	require.NoError(t, svc.SendAlert(context.Background(), "chart failed"))
	assert.Equal(t, []string{"[natal_bot] chart failed"}, rec.messages)
}

func TestService_SendAlert_PropagatesError(t *testing.T) {
	rec := &recordingSender{err: errors.New("telegram down")}
	svc := &Service{sender: rec, log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	err := svc.SendAlert(context.Background(), "chart failed")
	require.Error(t, err)
	assert.Equal(t, []string{"chart failed"}, rec.messages)
}
