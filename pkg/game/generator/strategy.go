package generator

import (
	"errors"
	"fmt"
	"sort"

	"echoshift/pkg/engine/rng"
	"echoshift/pkg/engine/world"
	"echoshift/pkg/game/dungeon"
)

var (
	// ErrNoRooms is returned when a layout strategy has nothing to build rooms in.
	ErrNoRooms = errors.New("generator: no rooms produced")
	// ErrUnknownStrategy is returned for a strategy name that is not registered.
	ErrUnknownStrategy = errors.New("generator: unknown strategy")
)

// Strategy lays out rooms and the path between them.
type Strategy interface {
	Name() string
	// Build fills an empty layout. It must not paint or spawn anything.
	Build(src rng.Source, layout *dungeon.Layout) error
}

// Params holds the settings for every strategy; each reads its own section.
type Params struct {
	Start         world.Position      `yaml:"start"`
	RandomWalk    RandomWalkParams    `yaml:"random_walk"`
	CorridorFirst CorridorFirstParams `yaml:"corridor_first"`
	RoomsFirst    RoomsFirstParams    `yaml:"rooms_first"`
}

// Strategy names.
const (
	RandomWalkName    = "random-walk"
	CorridorFirstName = "corridor-first"
	RoomsFirstName    = "rooms-first"
)

var strategies = map[string]func(Params) Strategy{
	RandomWalkName: func(p Params) Strategy {
		return &RandomWalkStrategy{Start: p.Start, Walk: p.RandomWalk}
	},
	CorridorFirstName: func(p Params) Strategy {
		return &CorridorFirstStrategy{Start: p.Start, Params: p.CorridorFirst, Walk: p.RandomWalk}
	},
	RoomsFirstName: func(p Params) Strategy {
		return &RoomsFirstStrategy{Start: p.Start, Params: p.RoomsFirst}
	},
}

// NewStrategy returns the named strategy configured from p.
func NewStrategy(name string, p Params) (Strategy, error) {
	build, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return build(p), nil
}

// StrategyNames lists the registered strategy names in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RandomWalkStrategy builds a single room from one random walk and no path.
type RandomWalkStrategy struct {
	Start world.Position
	Walk  RandomWalkParams
}

func (s *RandomWalkStrategy) Name() string {
	return RandomWalkName
}

func (s *RandomWalkStrategy) Build(src rng.Source, layout *dungeon.Layout) error {
	floor := RunRandomWalk(src, s.Walk, s.Start)
	layout.AddRoom(dungeon.NewRoom(s.Start, floor))
	return nil
}
