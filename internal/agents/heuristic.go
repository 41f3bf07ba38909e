package agents

import (
	"github.com/janpfeifer/td2048/internal/parameters"
	"github.com/janpfeifer/td2048/internal/state"
)

func init() {
	RegisterModule("heuristic", newHeuristic)
}

// heuristicOrder is the fixed order in which candidate directions are tried;
// the first of two equally-scored directions wins.
var heuristicOrder = [state.NumDirections]state.Direction{state.Up, state.Left, state.Right, state.Down}

// heuristicWeights scale the raw slide reward per direction, biasing play
// toward keeping large tiles in the top-right.
var heuristicWeights = [state.NumDirections]state.Reward{
	state.Up:    6,
	state.Right: 7,
	state.Down:  3,
	state.Left:  3,
}

// Heuristic is a non-learning baseline player: greedy on the immediate slide
// reward scaled by fixed per-direction weights. It keeps no state across
// calls and never touches a value function.
type Heuristic struct {
	base
}

var _ Agent = (*Heuristic)(nil)

func newHeuristic(params parameters.Params) (Agent, error) {
	b, err := newBase(params, "heuristic", "player")
	if err != nil {
		return nil, err
	}
	return &Heuristic{base: b}, nil
}

// TakeAction tries every direction on a private copy of the board and picks
// the one with the highest weighted reward; a legal slide with zero reward
// still beats no slide at all.
func (h *Heuristic) TakeAction(board *state.Board) state.Action {
	bestDir := -1
	best := state.IllegalMove
	for _, dir := range heuristicOrder {
		after := *board
		reward := after.Slide(dir)
		if reward == state.IllegalMove {
			continue
		}
		if scaled := reward * heuristicWeights[dir]; scaled > best {
			bestDir = int(dir)
			best = scaled
		}
	}
	if bestDir < 0 {
		return state.Action{}
	}
	return state.SlideAction(state.Direction(bestDir))
}
