package lazyhandle

import "reflect"

// EventBus is a minimal type-safe event dispatcher for decoupled
// communication between the subsystems that share a handle table. Handles
// travel inside event payloads in place of raw pointers; receivers
// re-validate them against the table before use.
//
// Publishing to a type with no subscribers is a no-op. The bus is not safe
// for concurrent use, matching the tables it carries events for.
type EventBus struct {
	handlers map[reflect.Type][]any
}

// Subscribe registers fn to be called for every published event of type T,
// in subscription order.
func Subscribe[T any](bus *EventBus, fn func(T)) {
	t := reflect.TypeFor[T]()
	if bus.handlers == nil {
		bus.handlers = make(map[reflect.Type][]any)
	}
	bus.handlers[t] = append(bus.handlers[t], fn)
}

// Publish delivers event synchronously to every handler subscribed to type
// T, in the order they subscribed.
func Publish[T any](bus *EventBus, event T) {
	for _, h := range bus.handlers[reflect.TypeFor[T]()] {
		h.(func(T))(event)
	}
}
