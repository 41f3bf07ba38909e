package agents

import (
	"math/rand/v2"

	"github.com/janpfeifer/td2048/internal/parameters"
	"github.com/janpfeifer/td2048/internal/state"
)

func init() {
	RegisterModule("env", newEnviron)
}

// Environ is the random environment: after every player move it drops a new
// tile into a uniformly chosen empty cell -- rank 1 (a "2" tile) nine times
// out of ten, rank 2 (a "4" tile) otherwise.
//
// Parameters: seed for its private random source, plus name/role labels.
type Environ struct {
	base
	rng   *rand.Rand
	space [state.NumCells]int
}

var _ Agent = (*Environ)(nil)

func newEnviron(params parameters.Params) (Agent, error) {
	b, err := newBase(params, "random", "environment")
	if err != nil {
		return nil, err
	}
	rng, err := newRNG(params)
	if err != nil {
		return nil, err
	}
	e := &Environ{base: b, rng: rng}
	for i := range e.space {
		e.space[i] = i
	}
	return e, nil
}

// TakeAction shuffles the cell positions and returns a placement on the first
// empty one found, or the no-op action if the board is full.
func (e *Environ) TakeAction(board *state.Board) state.Action {
	e.rng.Shuffle(len(e.space), func(i, j int) {
		e.space[i], e.space[j] = e.space[j], e.space[i]
	})
	for _, pos := range e.space {
		if board.Cell(pos) != 0 {
			continue
		}
		rank := state.CellRank(2)
		if e.rng.IntN(10) != 0 {
			rank = 1
		}
		return state.PlaceAction(pos, rank)
	}
	return state.Action{}
}
