// Package notify announces finished builds on a NATS subject.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/DavideDaniel/research/internal/foundation/errors"
	"github.com/DavideDaniel/research/internal/logfields"
)

// BuildCompleted is the event published after every successful build.
type BuildCompleted struct {
	BuildID     string    `json:"build_id"`
	Site        string    `json:"site"`
	Pages       int       `json:"pages"`
	Articles    int       `json:"articles"`
	Routes      int       `json:"routes"`
	ContentHash string    `json:"content_hash"`
	DurationMS  int64     `json:"duration_ms"`
	FinishedAt  time.Time `json:"finished_at"`
}

// Notifier publishes build events.
type Notifier interface {
	Publish(ctx context.Context, ev BuildCompleted) error
	Close() error
}

// NoopNotifier is used when no NATS URL is configured.
type NoopNotifier struct{}

func (NoopNotifier) Publish(context.Context, BuildCompleted) error { return nil }
func (NoopNotifier) Close() error                                 { return nil }

// publisher is the subset of *nats.Conn the notifier needs.
type publisher interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Close()
}

// NATSNotifier publishes BuildCompleted events as JSON.
type NATSNotifier struct {
	conn    publisher
	subject string
}

// New returns a NATS notifier, or NoopNotifier when url is empty.
func New(url, subject string) (Notifier, error) {
	if url == "" {
		return NoopNotifier{}, nil
	}
	conn, err := nats.Connect(url,
		nats.Name("sitemeta"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(3),
	)
	if err != nil {
		return nil, errors.NotifyError("failed to connect to NATS").
			WithCause(err).WithContext("url", url).Build()
	}
	slog.Info("NATS notifier connected", logfields.URL(url), logfields.Subject(subject))
	return newNATSNotifier(conn, subject), nil
}

func newNATSNotifier(conn publisher, subject string) *NATSNotifier {
	return &NATSNotifier{conn: conn, subject: subject}
}

// Publish sends ev and waits for the server to acknowledge the flush.
func (n *NATSNotifier) Publish(ctx context.Context, ev BuildCompleted) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to encode build event").Build()
	}
	if err := n.conn.Publish(n.subject, data); err != nil {
		return errors.NotifyError("failed to publish build event").WithCause(err).
			WithContext("subject", n.subject).Build()
	}
	if err := n.conn.FlushWithContext(ctx); err != nil {
		return errors.NotifyError("failed to flush build event").WithCause(err).
			WithContext("subject", n.subject).Build()
	}
	return nil
}

// Close closes the connection.
func (n *NATSNotifier) Close() error {
	n.conn.Close()
	return nil
}
