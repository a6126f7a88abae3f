package entities

import (
	"fmt"
	"strings"
)

// LootType is what a loot pickup grants.
type LootType int

const (
	LootCoin LootType = iota
	LootHealth
)

func (t LootType) String() string {
	switch t {
	case LootCoin:
		return "coin"
	case LootHealth:
		return "health"
	default:
		return "unknown"
	}
}

// MarshalText encodes the loot type by name.
func (t LootType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a loot type name.
func (t *LootType) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "coin":
		*t = LootCoin
	case "health":
		*t = LootHealth
	default:
		return fmt.Errorf("unknown loot type %q", string(text))
	}
	return nil
}

// LootItem is one entry of a breakable prop's loot table.
type LootItem struct {
	Name       string   `yaml:"name"`
	Type       LootType `yaml:"type"`
	Value      int      `yaml:"value"`
	DropChance float64  `yaml:"drop_chance"`
}

// Pickup is the component attached to a spawned loot drop.
type Pickup struct {
	Item LootItem
}
