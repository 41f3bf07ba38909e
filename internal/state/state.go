// Package state holds the board representation of the sliding-tile puzzle and
// its transition model: compress-and-merge slides per direction, tile
// placements and the reward accounting that drives learning.
package state

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
)

// CellRank is the exponent-like label stored in a board cell: 0 is empty, and
// rank r displays as the tile 2^r (rank 1 is the "2" tile, rank 2 the "4").
type CellRank uint8

const (
	// BoardSize is the width (= height) of the square grid.
	BoardSize = 4

	// NumCells on the board.
	NumCells = BoardSize * BoardSize

	// MaxRank is the exclusive upper bound on cell ranks: ranks combine as
	// base-25 digits in the value-function index arithmetic, so a cell must
	// never hold a rank >= 25.
	MaxRank CellRank = 25
)

// Direction of a slide.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// NumDirections a tile can slide to.
const NumDirections = 4

// Directions enumerates all slide directions in their canonical order. The
// order matters: agents break ties by it.
var Directions = [NumDirections]Direction{Up, Right, Down, Left}

var directionNames = [NumDirections]string{"up", "right", "down", "left"}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Reward earned by applying an action to a board: the sum of the displayed
// values of the tiles created by merges. Placements always earn 0.
type Reward int

// IllegalMove is the sentinel Reward returned by actions that change nothing.
// It must be checked before trusting the resulting board.
const IllegalMove Reward = -1

// Board is the 4x4 grid of cell ranks, in row-major order.
//
// Board is a value type: assignment copies the whole grid, so agents can keep
// afterstate snapshots without sharing mutable state with the episode driver.
type Board [NumCells]CellRank

// Cell returns the rank at position i (0 to 15, row-major).
func (b *Board) Cell(i int) CellRank {
	return b[i]
}

// SetCell stores the given rank at position i.
func (b *Board) SetCell(i int, rank CellRank) {
	if rank >= MaxRank {
		exceptions.Panicf("state.Board: rank %d at cell %d is beyond the maximum of %d supported by the value function", rank, i, MaxRank-1)
	}
	b[i] = rank
}

// Tile returns the displayed tile value at position i: 2^rank, or 0 for an
// empty cell.
func (b *Board) Tile(i int) int {
	if b[i] == 0 {
		return 0
	}
	return 1 << b[i]
}

// LargestRank on the board. Zero means the board is empty.
func (b *Board) LargestRank() CellRank {
	var largest CellRank
	for _, rank := range b {
		if rank > largest {
			largest = rank
		}
	}
	return largest
}

// Slide compresses and merges the tiles toward the given direction, mutating
// the board in place.
//
// It returns the sum of the displayed values of the tiles created by merges,
// or IllegalMove if the slide changes nothing -- in which case the board is
// left untouched. Slide is deterministic: it is a pure function of the board
// content and the direction.
func (b *Board) Slide(dir Direction) Reward {
	switch dir {
	case Up:
		b.transpose()
		reward := b.slideLeft()
		b.transpose()
		return reward
	case Right:
		b.reflectHorizontal()
		reward := b.slideLeft()
		b.reflectHorizontal()
		return reward
	case Down:
		b.transpose()
		b.reflectHorizontal()
		reward := b.slideLeft()
		b.reflectHorizontal()
		b.transpose()
		return reward
	case Left:
		return b.slideLeft()
	}
	exceptions.Panicf("state.Board.Slide: invalid direction %d", dir)
	return IllegalMove
}

// slideLeft is the canonical slide; the other directions are played by
// mirroring the board around it. Each row is compressed to the left, merging
// at most once per resulting tile: two rank-r tiles become one rank-(r+1)
// tile worth 2^(r+1) reward.
func (b *Board) slideLeft() Reward {
	prev := *b
	score := Reward(0)
	for r := 0; r < BoardSize; r++ {
		row := b[r*BoardSize : (r+1)*BoardSize]
		top := 0
		hold := CellRank(0)
		for c := 0; c < BoardSize; c++ {
			rank := row[c]
			if rank == 0 {
				continue
			}
			row[c] = 0
			if hold != 0 {
				if rank == hold {
					merged := rank + 1
					row[top] = merged
					top++
					score += Reward(1) << merged
					hold = 0
				} else {
					row[top] = hold
					top++
					hold = rank
				}
			} else {
				hold = rank
			}
		}
		if hold != 0 {
			row[top] = hold
		}
	}
	if *b == prev {
		return IllegalMove
	}
	return score
}

func (b *Board) transpose() {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < r; c++ {
			b[r*BoardSize+c], b[c*BoardSize+r] = b[c*BoardSize+r], b[r*BoardSize+c]
		}
	}
}

func (b *Board) reflectHorizontal() {
	for r := 0; r < BoardSize; r++ {
		row := b[r*BoardSize : (r+1)*BoardSize]
		for c := 0; c < BoardSize/2; c++ {
			row[c], row[BoardSize-1-c] = row[BoardSize-1-c], row[c]
		}
	}
}

// String returns the board as a grid of displayed tile values.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			_, _ = fmt.Fprintf(&sb, "%6d", b.Tile(r*BoardSize+c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
