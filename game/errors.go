package game

import (
	"fmt"
	"strings"
)

// ConfigurationError rejects a run before it starts: unknown strategy, invalid mode and so on.
type ConfigurationError struct {
	Field   string
	Value   string
	Options []string // Accepted values, when the field is an enumeration
	Reason  string
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if len(e.Options) > 0 {
		msg += fmt.Sprintf(" (registered: %s)", strings.Join(e.Options, ", "))
	}
	return msg
}

// InputValidationError rejects missing or malformed inputs before any state is built.
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// DataLookupError is a non-fatal anomaly: a card was not found in the zone an action expected.
type DataLookupError struct {
	Action ActionType `json:"action"`
	CardID string     `json:"cardId"`
	Zone   string     `json:"zone"`
}

func (e *DataLookupError) Error() string {
	return fmt.Sprintf("%s: card %q not found in %s", e.Action, e.CardID, e.Zone)
}
