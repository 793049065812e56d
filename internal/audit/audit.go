// Package audit publishes events for successfully completed mutating
// operations. Publication is best-effort: a broker failure is logged
// and never fails the request that produced the event.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// Event describes one successful mutation.
type Event struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	Method string    `json:"method"`
	Path   string    `json:"path"`
	At     time.Time `json:"at"`
}

// Backend publishes a serialized event to the named channel and
// returns a broker-assigned message id.
type Backend interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
	Close() error
}

// Recorder serializes events and hands them to a backend. With a nil
// backend events are written to the log only.
type Recorder struct {
	backend Backend
	channel string
	log     zerolog.Logger
}

func NewRecorder(backend Backend, channel string, log zerolog.Logger) *Recorder {
	if channel == "" {
		channel = "audit-events"
	}
	return &Recorder{backend: backend, channel: channel, log: log}
}

// Record emits the event. Failures are logged, not returned.
func (r *Recorder) Record(ctx context.Context, event Event) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	if r.backend == nil {
		r.log.Info().
			Str("entity", event.Entity).
			Str("action", event.Action).
			Str("method", event.Method).
			Msg("audit event")
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to encode audit event")
		return
	}

	attrs := map[string]string{"entity": event.Entity, "action": event.Action}
	if _, err := r.backend.Publish(ctx, r.channel, data, attrs); err != nil {
		r.log.Error().Err(err).Str("channel", r.channel).Msg("failed to publish audit event")
	}
}

// Close releases the backend, if any.
func (r *Recorder) Close() error {
	if r.backend == nil {
		return nil
	}
	return r.backend.Close()
}
