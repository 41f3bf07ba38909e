package state_test

import (
	"testing"

	. "github.com/janpfeifer/td2048/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row returns a board whose first row holds the given ranks, all other cells
// empty.
func row(ranks ...CellRank) Board {
	var b Board
	copy(b[:], ranks)
	return b
}

func TestSlideLeftMerges(t *testing.T) {
	for _, test := range []struct {
		name   string
		before Board
		after  Board
		reward Reward
	}{
		{"single pair", row(1, 1, 0, 0), row(2, 0, 0, 0), 4},
		{"pair with gap", row(1, 0, 0, 1), row(2, 0, 0, 0), 4},
		{"two pairs", row(1, 1, 1, 1), row(2, 2, 0, 0), 8},
		{"merge does not cascade", row(1, 1, 2, 0), row(2, 2, 0, 0), 4},
		{"leading tile kept", row(2, 1, 1, 0), row(2, 2, 0, 0), 4},
		{"relocation only", row(0, 1, 0, 0), row(1, 0, 0, 0), 0},
		{"higher ranks", row(5, 5, 0, 0), row(6, 0, 0, 0), 64},
	} {
		t.Run(test.name, func(t *testing.T) {
			b := test.before
			reward := b.Slide(Left)
			assert.Equal(t, test.reward, reward)
			assert.Equal(t, test.after, b)
		})
	}
}

func TestSlideIllegalLeavesBoardUntouched(t *testing.T) {
	// Tiles already packed to the left, nothing to merge.
	b := row(1, 2, 3, 0)
	before := b
	assert.Equal(t, IllegalMove, b.Slide(Left))
	assert.Equal(t, before, b)

	// A full board with no equal neighbors: every direction is illegal.
	full := Board{
		1, 2, 1, 2,
		2, 1, 2, 1,
		1, 2, 1, 2,
		2, 1, 2, 1,
	}
	for _, dir := range Directions {
		b := full
		assert.Equal(t, IllegalMove, b.Slide(dir), "direction %s", dir)
		assert.Equal(t, full, b, "direction %s", dir)
	}
}

func TestSlideDirections(t *testing.T) {
	// A single tile at row 1, column 1 ends up against the chosen wall.
	var single Board
	single.SetCell(5, 3)
	for _, test := range []struct {
		dir  Direction
		cell int
	}{
		{Up, 1},
		{Right, 7},
		{Down, 13},
		{Left, 4},
	} {
		b := single
		reward := b.Slide(test.dir)
		assert.Equal(t, Reward(0), reward, "direction %s", test.dir)
		assert.Equal(t, CellRank(3), b.Cell(test.cell), "direction %s", test.dir)
		assert.Equal(t, CellRank(0), b.Cell(5), "direction %s", test.dir)
	}
}

func TestSlideIsDeterministic(t *testing.T) {
	b := Board{
		1, 0, 1, 2,
		0, 2, 2, 0,
		3, 3, 0, 1,
		0, 1, 1, 2,
	}
	for _, dir := range Directions {
		b1, b2 := b, b
		r1 := b1.Slide(dir)
		r2 := b2.Slide(dir)
		assert.Equal(t, r1, r2, "direction %s", dir)
		assert.Equal(t, b1, b2, "direction %s", dir)
	}
}

func TestTileValues(t *testing.T) {
	b := row(0, 1, 2, 11)
	assert.Equal(t, 0, b.Tile(0))
	assert.Equal(t, 2, b.Tile(1))
	assert.Equal(t, 4, b.Tile(2))
	assert.Equal(t, 2048, b.Tile(3))
	assert.Equal(t, CellRank(11), b.LargestRank())
}

func TestActionApply(t *testing.T) {
	var b Board
	place := PlaceAction(9, 2)
	require.Equal(t, Reward(0), place.Apply(&b))
	assert.Equal(t, CellRank(2), b.Cell(9))

	// Placing on a non-empty cell is illegal and changes nothing.
	before := b
	assert.Equal(t, IllegalMove, PlaceAction(9, 1).Apply(&b))
	assert.Equal(t, before, b)

	// The no-op action never applies.
	var none Action
	assert.True(t, none.IsNone())
	assert.Equal(t, IllegalMove, none.Apply(&b))
	assert.Equal(t, before, b)

	// Slide actions route through Board.Slide.
	b = row(1, 1, 0, 0)
	assert.Equal(t, Reward(4), SlideAction(Left).Apply(&b))
	assert.Equal(t, row(2, 0, 0, 0), b)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "slide(up)", SlideAction(Up).String())
	assert.Equal(t, "place(4 at cell 3)", PlaceAction(3, 2).String())
	assert.Equal(t, "none", Action{}.String())
}
