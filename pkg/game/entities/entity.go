package entities

import (
	"github.com/google/uuid"

	"echoshift/pkg/engine/world"
)

// Container names group spawned entities the way a scene tree would.
const (
	ContainerProps   = "Props"
	ContainerEnemies = "Enemies"
	ContainerLoot    = "Loot"
	ContainerAgents  = "Agents"
)

// Entity is a handle to something spawned into the dungeon.
type Entity struct {
	ID       uuid.UUID
	Prefab   string
	Position world.Position
	Parent   string

	// Data holds component state attached by the spawning system,
	// e.g. a destructible prop.
	Data any

	despawned bool
}

// Alive reports whether the entity has not been despawned.
func (e *Entity) Alive() bool {
	return e != nil && !e.despawned
}

// Spawner is the entity-spawning surface generation code calls into.
type Spawner interface {
	// Spawn instantiates prefab at pos under the named parent container.
	Spawn(prefab string, pos world.Position, parent string) *Entity
	// Despawn destroys e. Despawning a nil or already despawned entity is a no-op.
	Despawn(e *Entity)
}
