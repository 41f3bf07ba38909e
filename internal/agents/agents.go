// Package agents implements the agents taking turns in an episode: the
// temporal-difference learning player, the tile-dropping environment and the
// non-learning baseline players.
//
// Agents are built from configuration strings of the form
// "module:key=value,...", e.g. "td:alpha=0.1,init,save=weights.bin" or
// "env:seed=42". Each module registers itself under its keyword.
package agents

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/janpfeifer/td2048/internal/generics"
	"github.com/janpfeifer/td2048/internal/parameters"
	"github.com/janpfeifer/td2048/internal/state"
	"github.com/pkg/errors"
)

// Agent is anything that can take a turn in an episode.
//
// The episode driver invokes agents strictly in alternation: no agent calls
// another agent, and every agent is single-owner of whatever state it keeps.
type Agent interface {
	fmt.Stringer

	// Name and Role identify the agent in logs and reports.
	Name() string
	Role() string

	// OpenEpisode resets any per-episode state. Only one episode is active
	// at a time.
	OpenEpisode()

	// CloseEpisode ends the current episode; learning agents apply their
	// update here.
	CloseEpisode()

	// TakeAction returns the agent's action for the given board, or the
	// no-op action if it has nothing to play. The board is read-only for
	// the agent: any afterstate it needs is computed on a private copy.
	TakeAction(board *state.Board) state.Action

	// Close releases the agent at the end of a run, persisting state if so
	// configured. The owner must call it deterministically; nothing is
	// saved by garbage collection.
	Close() error
}

// Builder creates an agent from its already-split parameters. Builders pop
// every parameter they understand; leftovers are reported as errors by New.
type Builder func(params parameters.Params) (Agent, error)

var modules = map[string]Builder{}

// RegisterModule makes an agent module available to New under the keyword.
func RegisterModule(keyword string, builder Builder) {
	modules[keyword] = builder
}

// New creates an agent from a configuration string: the module keyword,
// optionally followed by a colon and a comma-separated list of parameters.
func New(config string) (Agent, error) {
	moduleName := config
	params := parameters.Params{}
	if name, rest, found := strings.Cut(config, ":"); found {
		moduleName = name
		params = parameters.NewFromConfigString(rest)
	}
	builder, ok := modules[moduleName]
	if !ok {
		return nil, errors.Errorf("unknown agent module %q", moduleName)
	}
	agent, err := builder(params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create agent %q", moduleName)
	}
	if len(params) > 0 {
		return nil, errors.Errorf("unknown parameters %q for agent %q",
			strings.Join(slices.Collect(generics.SortedKeys(params)), ","), moduleName)
	}
	return agent, nil
}

// base carries the identification labels every agent accepts, and provides
// the no-op episode hooks.
type base struct {
	name, role string
}

func newBase(params parameters.Params, defaultName, defaultRole string) (base, error) {
	name, err := parameters.PopParamOr(params, "name", defaultName)
	if err != nil {
		return base{}, err
	}
	role, err := parameters.PopParamOr(params, "role", defaultRole)
	if err != nil {
		return base{}, err
	}
	return base{name: name, role: role}, nil
}

func (b *base) Name() string   { return b.name }
func (b *base) Role() string   { return b.role }
func (b *base) String() string { return fmt.Sprintf("%s(%s)", b.name, b.role) }
func (b *base) OpenEpisode()   {}
func (b *base) CloseEpisode()  {}
func (b *base) Close() error   { return nil }

// newRNG builds an agent's private random source, seeded from the "seed"
// parameter when present, or from entropy otherwise. Randomness is never
// shared across agents.
func newRNG(params parameters.Params) (*rand.Rand, error) {
	if _, found := params["seed"]; !found {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), nil
	}
	seed, err := parameters.PopParamOr(params, "seed", uint64(0))
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewPCG(seed, 0)), nil
}
