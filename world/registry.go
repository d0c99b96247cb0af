package world

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNilHandler is returned when attaching a nil touch handler.
var ErrNilHandler = errors.New("touch handler is nil")

// TouchHandler is called when an actor enters the cell of the node the
// handler is attached to.
type TouchHandler func(actorID uuid.UUID)

// TouchRegistry holds the on-enter hook slot for each hazard and
// pickup node of a scene. The engine attaches its own damage or
// collection behavior and detaches it again, e.g. once a pickup is
// collected. Safe for concurrent use; the engine's loop and the
// service run in different goroutines.
type TouchRegistry struct {
	handlers map[uuid.UUID]TouchHandler
	sync.RWMutex
}

// NewTouchRegistry creates an empty registry.
func NewTouchRegistry() *TouchRegistry {
	return &TouchRegistry{handlers: make(map[uuid.UUID]TouchHandler)}
}

// Attach installs the handler for the given node ID, replacing any
// previous one.
func (r *TouchRegistry) Attach(id uuid.UUID, handler TouchHandler) error {
	if handler == nil {
		return ErrNilHandler
	}
	r.Lock()
	defer r.Unlock()
	r.handlers[id] = handler
	return nil
}

// Detach removes the handler for the given node ID, if any.
func (r *TouchRegistry) Detach(id uuid.UUID) {
	r.Lock()
	defer r.Unlock()
	delete(r.handlers, id)
}

// Touch fires the handler attached to the given node ID and reports
// whether one was attached. The handler runs outside the registry
// lock so it may detach itself.
func (r *TouchRegistry) Touch(id, actorID uuid.UUID) bool {
	r.RLock()
	handler, ok := r.handlers[id]
	r.RUnlock()
	if !ok {
		return false
	}
	handler(actorID)
	return true
}
