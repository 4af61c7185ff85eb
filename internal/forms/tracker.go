package forms

import (
	"time"

	"go.uber.org/zap"
)

const (
	EventFormView         = "form_view"
	EventFieldInteraction = "form_field_interaction"
)

// Tracker records form analytics events. A nil Tracker is valid and drops
// every event.
type Tracker interface {
	Track(event string, props map[string]any)
}

// Track forwards to t when it is configured.
func Track(t Tracker, event string, props map[string]any) {
	if t == nil {
		return
	}
	if props == nil {
		props = map[string]any{}
	}
	if _, ok := props["timestamp"]; !ok {
		props["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	}
	t.Track(event, props)
}

// LogTracker writes events to the structured log.
type LogTracker struct {
	Log *zap.Logger
}

func (l LogTracker) Track(event string, props map[string]any) {
	if l.Log == nil {
		return
	}
	l.Log.Info("form event", zap.String("event", event), zap.Any("props", props))
}
