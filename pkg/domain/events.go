package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventDispatch EventType = "dispatch"
	EventReject   EventType = "reject"
)

// DispatchEvent describes one action applied (or rejected) by the store.
type DispatchEvent struct {
	Timestamp time.Time  `json:"timestamp"`
	Type      EventType  `json:"type"`
	Action    ActionType `json:"action"`

	// Changed is false when the action was an identity transition.
	Changed bool `json:"changed"`

	// Lists is the number of lists after the transition.
	Lists int `json:"lists"`

	// Err holds the lookup or bounds failure for rejected actions.
	Err error `json:"-"`
}

// LifecycleHooks defines callbacks for store observability.
type LifecycleHooks struct {
	OnDispatch func(context.Context, *DispatchEvent)
	OnReject   func(context.Context, *DispatchEvent)
}
