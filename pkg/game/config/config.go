// Package config loads generation settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"echoshift/pkg/game/agents"
	"echoshift/pkg/game/generator"
	"echoshift/pkg/game/props"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvSeed         = "ECHOSHIFT_SEED"
	EnvStrategy     = "ECHOSHIFT_STRATEGY"
	EnvCornerChance = "ECHOSHIFT_CORNER_CHANCE"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// PropsConfig configures prop placement.
type PropsConfig struct {
	CornerChance   float64 `yaml:"corner_placement_chance"`
	PropPrefab     string  `yaml:"prop_prefab"`
	LootDropPrefab string  `yaml:"loot_drop_prefab"`
	// Catalog is an optional prop catalog file. Empty uses the built-in one.
	Catalog string `yaml:"catalog"`
}

// Config is everything needed to generate one dungeon.
type Config struct {
	Strategy string `yaml:"strategy"`
	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`

	generator.Params `yaml:",inline"`

	Props  PropsConfig   `yaml:"props"`
	Agents agents.Params `yaml:"agents"`
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		Strategy: generator.CorridorFirstName,
		Params: generator.Params{
			RandomWalk: generator.RandomWalkParams{
				Iterations:    10,
				WalkLength:    10,
				StartRandomly: true,
			},
			CorridorFirst: generator.CorridorFirstParams{
				CorridorLength: 14,
				CorridorCount:  5,
				RoomPercent:    0.8,
			},
			RoomsFirst: generator.RoomsFirstParams{
				MinRoomWidth:  4,
				MinRoomHeight: 4,
				DungeonWidth:  20,
				DungeonHeight: 20,
				Offset:        1,
			},
		},
		Props: PropsConfig{
			CornerChance:   0.7,
			PropPrefab:     "prop",
			LootDropPrefab: "loot",
		},
		Agents: agents.Params{
			PlayerPrefab:     "player",
			PortalPrefab:     "portal",
			EnemyPrefabs:     []string{"slime", "skeleton"},
			RoomEnemiesCount: []int{0, 2, 3, 3, 4},
		},
	}
}

// Decode reads YAML from r over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// Load reads the YAML file at path over the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// ApplyEnv overrides fields from the ECHOSHIFT_* environment variables.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvStrategy); ok && v != "" {
		c.Strategy = v
	}
	if v, ok := lookup(EnvCornerChance); ok && v != "" {
		chance, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvCornerChance, err)
		}
		c.Props.CornerChance = chance
	}
	return nil
}

// Validate checks ranges and the strategy name.
func (c *Config) Validate() error {
	if _, err := generator.NewStrategy(c.Strategy, c.Params); err != nil {
		return err
	}

	rw := c.RandomWalk
	if rw.Iterations <= 0 || rw.WalkLength <= 0 {
		return fmt.Errorf("%w: random_walk iterations and walk_length must be positive", ErrInvalid)
	}

	cf := c.CorridorFirst
	if cf.CorridorLength <= 0 || cf.CorridorCount <= 0 {
		return fmt.Errorf("%w: corridor_first corridor_length and corridor_count must be positive", ErrInvalid)
	}
	if cf.RoomPercent < 0.1 || cf.RoomPercent > 1 {
		return fmt.Errorf("%w: corridor_first room_percent %v outside [0.1, 1]", ErrInvalid, cf.RoomPercent)
	}

	rf := c.RoomsFirst
	if rf.MinRoomWidth <= 0 || rf.MinRoomHeight <= 0 || rf.DungeonWidth <= 0 || rf.DungeonHeight <= 0 {
		return fmt.Errorf("%w: rooms_first sizes must be positive", ErrInvalid)
	}
	if rf.Offset < 0 || rf.Offset > 10 {
		return fmt.Errorf("%w: rooms_first offset %d outside [0, 10]", ErrInvalid, rf.Offset)
	}

	if c.Props.CornerChance < 0 || c.Props.CornerChance > 1 {
		return fmt.Errorf("%w: props corner_placement_chance %v outside [0, 1]", ErrInvalid, c.Props.CornerChance)
	}
	for i, n := range c.Agents.RoomEnemiesCount {
		if n < 0 {
			return fmt.Errorf("%w: agents room_enemies_count[%d] is negative", ErrInvalid, i)
		}
	}
	return nil
}

// PropsContext returns the placement context for the prop manager.
func (c *Config) PropsContext() props.Context {
	return props.Context{
		PropPrefab:     c.Props.PropPrefab,
		LootDropPrefab: c.Props.LootDropPrefab,
		CornerChance:   c.Props.CornerChance,
	}
}

// Catalog loads the configured prop catalog, or the built-in one.
func (c *Config) Catalog() ([]*props.Prop, error) {
	if c.Props.Catalog == "" {
		return props.DefaultCatalog(), nil
	}
	return props.LoadCatalogFile(c.Props.Catalog)
}
