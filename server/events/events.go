package events

import (
	"encoding/json"

	"github.com/charmbracelet/log"

	"blackjack/events"
	"blackjack/server/connection"
)

// EventEnvelope wraps an event with its name for client consumption
type EventEnvelope struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher forwards engine events to the client session that owns them.
type Dispatcher struct {
	connMgr *connection.Manager
	logger  *log.Logger
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(connMgr *connection.Manager, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		connMgr: connMgr,
		logger:  logger.WithPrefix("dispatcher"),
	}
}

// HandlerFor returns an event handler bound to one client session. Every
// event the session's engine emits is enveloped and pushed down its socket.
func (d *Dispatcher) HandlerFor(clientID string) events.EventHandler {
	return func(event events.Event) {
		payload, err := json.Marshal(event)
		if err != nil {
			d.logger.Error("failed to marshal event payload", "event", event.EventName(), "err", err)
			return
		}

		envelope := EventEnvelope{
			Name:    event.EventName(),
			Payload: payload,
		}

		data, err := json.Marshal(envelope)
		if err != nil {
			d.logger.Error("failed to marshal event envelope", "event", event.EventName(), "err", err)
			return
		}

		if !d.connMgr.SendToClient(clientID, data) {
			d.logger.Debug("dropping event for disconnected client", "client", clientID, "event", event.EventName())
		}
	}
}
