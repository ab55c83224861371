package kafka

import (
	"fmt"
	"sync"
	"time"

	"pancakelab/internal/core/domain/model/order"

	"github.com/linkedin/goavro/v2"
)

// OrderEventSchema is the Avro schema of every record on the order events topic.
const OrderEventSchema = `{
  "type": "record",
  "name": "OrderEvent",
  "namespace": "pancakelab.orders",
  "fields": [
    {"name": "id", "type": "string"},
    {"name": "type", "type": "string"},
    {"name": "order_id", "type": "string"},
    {"name": "pancake_id", "type": ["null", "string"], "default": null},
    {"name": "ingredient", "type": ["null", "string"], "default": null},
    {"name": "status", "type": "string"},
    {"name": "pancakes", "type": "int"},
    {"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-micros"}}
  ]
}`

// EventEncoder turns order events into Avro binary.
type EventEncoder struct {
	codec *goavro.Codec
	mu    sync.Mutex
}

// NewEventEncoder compiles OrderEventSchema.
func NewEventEncoder() (*EventEncoder, error) {
	codec, err := goavro.NewCodec(OrderEventSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to create avro codec: %w", err)
	}
	return &EventEncoder{codec: codec}, nil
}

// Encode returns the Avro binary form of event.
func (e *EventEncoder) Encode(event order.Event) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	binary, err := e.codec.BinaryFromNative(nil, toNative(event))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s event to avro binary: %w", event.Type, err)
	}
	return binary, nil
}

// Decode returns the native goavro form of an encoded event.
func (e *EventEncoder) Decode(binary []byte) (map[string]any, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	native, _, err := e.codec.NativeFromBinary(binary)
	if err != nil {
		return nil, fmt.Errorf("failed to decode avro binary: %w", err)
	}

	record, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decoded avro value is %T, not a record", native)
	}
	return record, nil
}

// toNative maps the event onto goavro's native form. Optional fields are
// unions and must be wrapped as {"string": value}.
func toNative(event order.Event) map[string]any {
	native := map[string]any{
		"id":          event.ID.String(),
		"type":        string(event.Type),
		"order_id":    event.OrderID.String(),
		"pancake_id":  nil,
		"ingredient":  nil,
		"status":      event.Status.String(),
		"pancakes":    int32(event.Pancakes),
		"occurred_at": event.OccurredAt.UTC().Truncate(time.Microsecond),
	}

	if event.HasPancake() {
		native["pancake_id"] = map[string]any{"string": event.PancakeID.String()}
	}
	if event.Ingredient != "" {
		native["ingredient"] = map[string]any{"string": event.Ingredient}
	}

	return native
}
