package events

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/eaglebank/account-grpc/internal/models"
)

// Event types
const (
	AccountSaved = "account.saved"
)

// Stream names
const (
	AccountEventsStream = "account.events"
)

// DefaultStreamMaxLen is the approximate number of entries kept in
// account.events when no limit is configured.
const DefaultStreamMaxLen = 10000

// Event is the envelope written to a stream under the "event" field.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// AccountSavedEvent carries the persistence form of the saved account. Solde
// is the decimal text of the stored balance ("NaN", "+Inf" and "-Inf"
// included), which JSON numbers cannot hold.
type AccountSavedEvent struct {
	ID           string `json:"id"`
	Solde        string `json:"solde"`
	DateCreation string `json:"dateCreation"`
	Type         string `json:"type"`
}

func NewAccountSavedEvent(a models.Account) AccountSavedEvent {
	return AccountSavedEvent{
		ID:           a.ID,
		Solde:        strconv.FormatFloat(a.Solde, 'f', -1, 64),
		DateCreation: a.DateCreation,
		Type:         a.Type,
	}
}

// Balance parses Solde back into the stored float64.
func (e AccountSavedEvent) Balance() (float64, error) {
	v, err := strconv.ParseFloat(e.Solde, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid solde %q: %w", e.Solde, err)
	}
	return v, nil
}

// EncodeEvent renders the envelope stored under a stream entry's "event"
// field.
func EncodeEvent(eventType string, data any, at time.Time) (string, error) {
	payload, err := json.Marshal(Event{
		Type:      eventType,
		Timestamp: at,
		Data:      data,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}
	return string(payload), nil
}

// DecodeMessage extracts the Event envelope from a stream entry's values.
func DecodeMessage(values map[string]any) (Event, error) {
	eventData, ok := values["event"].(string)
	if !ok {
		return Event{}, fmt.Errorf("invalid message format")
	}

	var event Event
	if err := json.Unmarshal([]byte(eventData), &event); err != nil {
		return Event{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return event, nil
}

// DecodeData re-decodes the generic Data payload of an event into out.
func DecodeData(event Event, out any) error {
	raw, err := json.Marshal(event.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s event: %w", event.Type, err)
	}
	return nil
}
