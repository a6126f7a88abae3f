package entities

import (
	"github.com/google/uuid"

	"echoshift/pkg/engine/world"
)

// Registry is an in-memory Spawner that keeps every live entity.
type Registry struct {
	byID  map[uuid.UUID]*Entity
	order []*Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[uuid.UUID]*Entity)}
}

// Spawn creates and registers a new entity.
func (r *Registry) Spawn(prefab string, pos world.Position, parent string) *Entity {
	e := &Entity{
		ID:       uuid.New(),
		Prefab:   prefab,
		Position: pos,
		Parent:   parent,
	}
	r.byID[e.ID] = e
	r.order = append(r.order, e)
	return e
}

// Despawn removes e from the registry.
func (r *Registry) Despawn(e *Entity) {
	if !e.Alive() {
		return
	}
	e.despawned = true
	delete(r.byID, e.ID)

	for i, other := range r.order {
		if other == e {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get looks up a live entity by ID.
func (r *Registry) Get(id uuid.UUID) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.byID)
}

// All returns live entities in spawn order.
func (r *Registry) All() []*Entity {
	return append([]*Entity(nil), r.order...)
}

// InContainer returns the live entities spawned under parent, in spawn order.
func (r *Registry) InContainer(parent string) []*Entity {
	var out []*Entity
	for _, e := range r.order {
		if e.Parent == parent {
			out = append(out, e)
		}
	}
	return out
}

// At returns the live entities standing on pos.
func (r *Registry) At(pos world.Position) []*Entity {
	var out []*Entity
	for _, e := range r.order {
		if e.Position == pos {
			out = append(out, e)
		}
	}
	return out
}
