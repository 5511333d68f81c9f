package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Envelope is the serialized form of an action.
type Envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// DecodeAction parses a JSON action envelope.
func DecodeAction(data []byte) (domain.Action, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var env Envelope
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("invalid action envelope: %w", err)
	}
	return FromEnvelope(env)
}

// FromEnvelope converts a decoded envelope into a domain action.
// The payload is expected in the generic form produced by encoding/json
// (string, map[string]any, json.Number or float64, nil).
func FromEnvelope(env Envelope) (domain.Action, error) {
	if env.Type == "" {
		return nil, &ValidationError{Key: "type", Reason: "required"}
	}
	return ActionFromPayload(domain.ActionType(env.Type), env.Payload)
}

// ActionFromPayload builds the action of the given type from a generic payload.
// ADD_LIST accepts either a bare string or {"text": ...}.
func ActionFromPayload(typ domain.ActionType, payload any) (domain.Action, error) {
	switch typ {
	case domain.ActionAddList:
		if text, ok := payload.(string); ok {
			return domain.AddList{Text: text}, nil
		}
		var a domain.AddList
		if err := decodePayload(payload, &a, "text"); err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
		return a, nil

	case domain.ActionAddTask:
		var a domain.AddTask
		if err := decodePayload(payload, &a, "taskId"); err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
		return a, nil

	case domain.ActionMoveList:
		var a domain.MoveList
		if err := decodePayload(payload, &a, "dragIndex", "hoverIndex"); err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
		return a, nil

	case domain.ActionSetDraggedItem:
		if payload == nil {
			return domain.SetDraggedItem{}, nil
		}
		var item domain.DragItem
		if err := decodePayload(payload, &item, "type", "id"); err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
		if item.Type != domain.DragList && item.Type != domain.DragTask {
			return nil, fmt.Errorf("%s: %w", typ, &ValidationError{Key: "type", Reason: "must be LIST or TASK", Value: item.Type})
		}
		return domain.SetDraggedItem{Item: &item}, nil

	default:
		return domain.Unrecognized{Type: string(typ)}, nil
	}
}

// decodePayload decodes a generic map into out, rejecting unknown keys and
// reporting every missing required key.
func decodePayload(payload any, out any, required ...string) error {
	if _, ok := payload.(map[string]any); !ok {
		return &ValidationError{Key: "payload", Reason: "expected an object", Value: payload}
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		Metadata:    &md,
		ErrorUnused: true,
		TagName:     "mapstructure",
		DecodeHook:  wholeNumberHook,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(payload); err != nil {
		return &ValidationError{Key: "payload", Reason: err.Error(), Value: payload}
	}

	var errs []error
	for _, key := range required {
		if !slices.Contains(md.Keys, key) {
			errs = append(errs, &ValidationError{Key: key, Reason: "required"})
		}
	}
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// EncodeAction serializes an action into its envelope form.
func EncodeAction(a domain.Action) ([]byte, error) {
	env, err := ToEnvelope(a)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// ToEnvelope converts a domain action into its envelope.
func ToEnvelope(a domain.Action) (Envelope, error) {
	switch v := a.(type) {
	case domain.AddList:
		return Envelope{Type: string(v.Kind()), Payload: v.Text}, nil
	case domain.AddTask:
		return Envelope{Type: string(v.Kind()), Payload: v}, nil
	case domain.MoveList:
		return Envelope{Type: string(v.Kind()), Payload: v}, nil
	case domain.SetDraggedItem:
		if v.Item == nil {
			return Envelope{Type: string(v.Kind())}, nil
		}
		return Envelope{Type: string(v.Kind()), Payload: v.Item}, nil
	case nil:
		return Envelope{}, fmt.Errorf("cannot encode nil action")
	default:
		return Envelope{Type: string(a.Kind())}, nil
	}
}

// wholeNumberHook refuses to truncate fractional numbers into int fields.
// JSON-RPC clients send every number as float64.
func wholeNumberHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return data, nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}
	return data, nil
}
