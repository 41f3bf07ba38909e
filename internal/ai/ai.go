// Package ai defines the interfaces a value-function model must implement to
// drive and train the playing agents.
package ai

import (
	"fmt"

	"github.com/janpfeifer/td2048/internal/state"
)

// ValueScorer estimates the future score obtainable from an afterstate --
// the board right after a slide, before the environment drops the next tile.
type ValueScorer interface {
	fmt.Stringer

	// Value of the given afterstate. It is a pure function of the board
	// content and the current model parameters.
	Value(board *state.Board) float32
}

// ValueLearner is a ValueScorer whose estimate can be nudged toward a target
// and persisted between runs.
type ValueLearner interface {
	ValueScorer

	// Adjust moves the estimate for board toward target by alpha times the
	// error, and returns the error (target minus value) before the update.
	Adjust(board *state.Board, target, alpha float32) float32

	// Save the model parameters to path.
	Save(path string) error

	// Load the model parameters from path, replacing the current ones.
	Load(path string) error
}
