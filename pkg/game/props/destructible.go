package props

import (
	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/dungeon"
	"echoshift/pkg/game/entities"
)

// Destructible is the durability of a breakable prop.
type Destructible struct {
	Health    int
	MaxHealth int

	destroyed  bool
	prop       *Prop
	entity     *entities.Entity
	room       *dungeon.Room
	placer     *Placer
	lootPrefab string
}

func newDestructible(prop *Prop, e *entities.Entity, room *dungeon.Room, pl *Placer, lootPrefab string) *Destructible {
	return &Destructible{
		Health:     prop.Health,
		MaxHealth:  prop.Health,
		prop:       prop,
		entity:     e,
		room:       room,
		placer:     pl,
		lootPrefab: lootPrefab,
	}
}

// Destroyed reports whether the prop has been broken.
func (d *Destructible) Destroyed() bool {
	return d.destroyed
}

// TakeDamage lowers durability. When it reaches zero the prop breaks once:
// each loot entry is rolled against its drop chance, successful rolls spawn a
// pickup on the prop's tile and the prop is despawned. The spawned drops are
// returned.
func (d *Destructible) TakeDamage(amount int) []*entities.Entity {
	if d.destroyed {
		return nil
	}

	d.Health -= amount
	if d.Health > 0 {
		return nil
	}
	d.destroyed = true

	var drops []*entities.Entity
	at := d.entity.Position
	if d.lootPrefab != "" {
		for _, item := range d.prop.Loot {
			if d.placer.src.Float64() <= item.DropChance {
				drops = append(drops, d.spawnLoot(item, at))
			}
		}
	}

	d.room.RemoveProp(d.entity)
	d.placer.spawner.Despawn(d.entity)
	return drops
}

func (d *Destructible) spawnLoot(item entities.LootItem, at world.Position) *entities.Entity {
	e := d.placer.spawner.Spawn(d.lootPrefab, at, entities.ContainerLoot)
	e.Data = &entities.Pickup{Item: item}
	d.room.Drops = append(d.room.Drops, e)
	return e
}
