// Package ntuple implements a pure Go n-tuple network value function: a set
// of lookup tables, each indexed by a packed combination of 4 cell ranks,
// whose lookups are summed into the board estimate. The model is linear in
// its (one-hot) features, so a single shared learning rate applied to every
// indexed entry is plain gradient descent on the squared error.
package ntuple

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/td2048/internal/ai"
	"github.com/janpfeifer/td2048/internal/state"
)

const (
	// PatternSize is the number of cells feeding each table.
	PatternSize = 4

	// NumPatterns is the number of tables: the 4 rows of the board plus the
	// 4 columns (the same windows in the transposed orientation).
	NumPatterns = 8

	// TableSize is 25^4: every combination of PatternSize ranks in [0, 25).
	TableSize = int(state.MaxRank) * int(state.MaxRank) * int(state.MaxRank) * int(state.MaxRank)
)

// patterns hardwires which 4 cells feed which table. The assignment is part
// of the persisted weight scheme: training and evaluation must use the exact
// same one, or saved weight files become meaningless.
var patterns = [NumPatterns][PatternSize]int{
	{0, 1, 2, 3},
	{4, 5, 6, 7},
	{8, 9, 10, 11},
	{12, 13, 14, 15},
	{0, 4, 8, 12},
	{1, 5, 9, 13},
	{2, 6, 10, 14},
	{3, 7, 11, 15},
}

// Network is the n-tuple value function: NumPatterns independent weight
// tables of TableSize float32 entries each.
//
// A Network is owned and mutated by a single learning agent; there is no
// locking discipline because there is no concurrent access.
type Network struct {
	tables [][]float32
}

// Assert Network is an ai.ValueLearner (and therefore an ai.ValueScorer).
var _ ai.ValueLearner = (*Network)(nil)

// NewZero creates a Network with all entries initialized to zero.
func NewZero() *Network {
	tables := make([][]float32, NumPatterns)
	for i := range tables {
		tables[i] = make([]float32, TableSize)
	}
	return &Network{tables: tables}
}

// Value of the board: the sum of one lookup per pattern table.
func (n *Network) Value(board *state.Board) float32 {
	var sum float32
	for k, pattern := range patterns {
		sum += n.tables[k][packIndex(board, pattern)]
	}
	return sum
}

// Adjust moves Value(board) toward target: it adds alpha*(target-Value) to
// each of the NumPatterns indexed entries -- the same delta broadcast to all
// tables. It returns the error before the update.
func (n *Network) Adjust(board *state.Board, target, alpha float32) float32 {
	err := target - n.Value(board)
	delta := alpha * err
	for k, pattern := range patterns {
		n.tables[k][packIndex(board, pattern)] += delta
	}
	return err
}

// String implements fmt.Stringer.
func (n *Network) String() string {
	return fmt.Sprintf("ntuple(%d tables of %d entries)", len(n.tables), TableSize)
}

// packIndex packs the 4 designated cell ranks into one base-25 integer:
// r0*25^3 + r1*25^2 + r2*25 + r3.
func packIndex(board *state.Board, pattern [PatternSize]int) int {
	idx := 0
	for _, pos := range pattern {
		rank := board.Cell(pos)
		if rank >= state.MaxRank {
			exceptions.Panicf("ntuple: cell %d holds rank %d, beyond the %d the weight tables cover", pos, rank, state.MaxRank-1)
		}
		idx = idx*int(state.MaxRank) + int(rank)
	}
	return idx
}
