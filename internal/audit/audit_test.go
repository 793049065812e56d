package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureBackend struct {
	channel string
	data    []byte
	attrs   map[string]string
	err     error
	closed  bool
}

func (c *captureBackend) Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error) {
	c.channel = channel
	c.data = data
	c.attrs = attrs
	return "msg-1", c.err
}

func (c *captureBackend) Close() error {
	c.closed = true
	return nil
}

func TestRecorder_PublishesEncodedEvent(t *testing.T) {
	backend := &captureBackend{}
	recorder := NewRecorder(backend, "audit-events", zerolog.Nop())

	recorder.Record(context.Background(), Event{
		Entity: "order",
		Action: "create",
		Method: "OrderHandler.CreateOrder",
		Path:   "/api/orders",
	})

	assert.Equal(t, "audit-events", backend.channel)
	assert.Equal(t, map[string]string{"entity": "order", "action": "create"}, backend.attrs)

	var event Event
	require.NoError(t, json.Unmarshal(backend.data, &event))
	assert.Equal(t, "OrderHandler.CreateOrder", event.Method)
	assert.False(t, event.At.IsZero(), "timestamp is filled in when missing")
}

func TestRecorder_DefaultChannel(t *testing.T) {
	backend := &captureBackend{}
	recorder := NewRecorder(backend, "", zerolog.Nop())

	recorder.Record(context.Background(), Event{Entity: "user", Action: "delete"})

	assert.Equal(t, "audit-events", backend.channel)
}

func TestRecorder_BackendFailureIsLoggedNotReturned(t *testing.T) {
	var buf bytes.Buffer
	backend := &captureBackend{err: errors.New("broker down")}
	recorder := NewRecorder(backend, "audit-events", zerolog.New(&buf))

	recorder.Record(context.Background(), Event{Entity: "user", Action: "create"})

	assert.Contains(t, buf.String(), "failed to publish audit event")
}

func TestRecorder_NilBackendLogsOnly(t *testing.T) {
	var buf bytes.Buffer
	recorder := NewRecorder(nil, "", zerolog.New(&buf))

	recorder.Record(context.Background(), Event{Entity: "user", Action: "update"})

	assert.Contains(t, buf.String(), "audit event")
	assert.NoError(t, recorder.Close())
}

func TestRecorder_CloseReleasesBackend(t *testing.T) {
	backend := &captureBackend{}
	recorder := NewRecorder(backend, "audit-events", zerolog.Nop())

	require.NoError(t, recorder.Close())
	assert.True(t, backend.closed)
}
