package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"keyword-service/analyzer/core"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// NatsPublisher sends events as JSON to "<subject>.<event type>".
type NatsPublisher struct {
	subj string
	conn *nats.Conn
	log  *slog.Logger
}

func NewNatsPublisher(address, subj string, log *slog.Logger) (*NatsPublisher, error) {
	if subj == "" {
		return nil, fmt.Errorf("empty subject specified")
	}
	nc, err := nats.Connect(address,
		nats.Name("Keyword analyzer"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(10),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Warn("disconnected from NATS", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("reconnected to NATS", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Info("connection to NATS closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed connect to broker: %w", err)
	}
	log.Debug("connected to broker as publisher", "address", address, "subject", subj, "url", nc.ConnectedUrl())
	return &NatsPublisher{
		subj: subj,
		conn: nc,
		log:  log,
	}, nil
}

func (np *NatsPublisher) Close() {
	np.conn.Close()
}

func (np *NatsPublisher) Subject(event core.EventType) string {
	return np.subj + "." + string(event)
}

func (np *NatsPublisher) Publish(event core.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	subj := np.Subject(event.Type)
	if err := np.conn.Publish(subj, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	if err := np.conn.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}
	np.log.Debug("message published successfully", "subject", subj, "event_id", event.ID)
	return nil
}

// Ping reports whether the broker connection is up.
func (np *NatsPublisher) Ping(context.Context) error {
	if !np.conn.IsConnected() {
		return core.ErrServiceUnavailable
	}
	return nil
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(core.Event) error {
	return nil
}
