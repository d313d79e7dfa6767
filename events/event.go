package events

import "reflect"

// Event is the interface that all domain events must implement.
type Event interface {
	EventName() string // Returns a unique name for the event type
}

// EventHandler is a callback notified of every event the engine emits.
type EventHandler func(event Event)

// GetRoundID extracts the RoundID field from an event, if present.
func GetRoundID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	field := val.FieldByName("RoundID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
