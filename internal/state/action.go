package state

import "fmt"

// ActionType tags the Action union.
type ActionType uint8

const (
	// ActionNone is the no-op returned by an agent with nothing to play.
	ActionNone ActionType = iota
	// ActionSlide slides the whole board toward a direction.
	ActionSlide
	// ActionPlace drops a new tile on an empty cell.
	ActionPlace
)

// Action is the protocol between agents and the episode driver: a slide
// chosen by a player, a placement chosen by the environment, or nothing.
// The zero value is the no-op action.
type Action struct {
	Type      ActionType
	Direction Direction // Set for ActionSlide.
	Pos       int       // Set for ActionPlace.
	Rank      CellRank  // Set for ActionPlace.
}

// SlideAction returns the action sliding the board toward dir.
func SlideAction(dir Direction) Action {
	return Action{Type: ActionSlide, Direction: dir}
}

// PlaceAction returns the action placing a tile of the given rank at pos.
func PlaceAction(pos int, rank CellRank) Action {
	return Action{Type: ActionPlace, Pos: pos, Rank: rank}
}

// IsNone reports whether the action is the no-op.
func (a Action) IsNone() bool {
	return a.Type == ActionNone
}

// Apply the action to the board, returning the reward earned or IllegalMove.
// Placing on a non-empty cell is illegal and leaves the board untouched; the
// no-op action is always illegal.
func (a Action) Apply(b *Board) Reward {
	switch a.Type {
	case ActionSlide:
		return b.Slide(a.Direction)
	case ActionPlace:
		if b.Cell(a.Pos) != 0 {
			return IllegalMove
		}
		b.SetCell(a.Pos, a.Rank)
		return 0
	}
	return IllegalMove
}

// String returns a short description of the action.
func (a Action) String() string {
	switch a.Type {
	case ActionSlide:
		return fmt.Sprintf("slide(%s)", a.Direction)
	case ActionPlace:
		return fmt.Sprintf("place(%d at cell %d)", 1<<a.Rank, a.Pos)
	}
	return "none"
}
