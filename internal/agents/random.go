package agents

import (
	"math/rand/v2"

	"github.com/janpfeifer/td2048/internal/parameters"
	"github.com/janpfeifer/td2048/internal/state"
)

func init() {
	RegisterModule("random", newRandom)
}

// Random plays a uniformly random legal slide. Useful as a floor when
// comparing players.
//
// Parameters: seed, plus name/role labels.
type Random struct {
	base
	rng  *rand.Rand
	dirs [state.NumDirections]state.Direction
}

var _ Agent = (*Random)(nil)

func newRandom(params parameters.Params) (Agent, error) {
	b, err := newBase(params, "dummy", "player")
	if err != nil {
		return nil, err
	}
	rng, err := newRNG(params)
	if err != nil {
		return nil, err
	}
	return &Random{base: b, rng: rng, dirs: state.Directions}, nil
}

// TakeAction shuffles the directions and returns the first legal one, tested
// on a private copy of the board.
func (r *Random) TakeAction(board *state.Board) state.Action {
	r.rng.Shuffle(len(r.dirs), func(i, j int) {
		r.dirs[i], r.dirs[j] = r.dirs[j], r.dirs[i]
	})
	for _, dir := range r.dirs {
		after := *board
		if after.Slide(dir) != state.IllegalMove {
			return state.SlideAction(dir)
		}
	}
	return state.Action{}
}
