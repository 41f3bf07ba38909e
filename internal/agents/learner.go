package agents

import (
	"github.com/chewxy/math32"
	"github.com/janpfeifer/td2048/internal/ai"
	"github.com/janpfeifer/td2048/internal/ai/ntuple"
	"github.com/janpfeifer/td2048/internal/parameters"
	"github.com/janpfeifer/td2048/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

func init() {
	RegisterModule("td", newLearner)
}

// Learner is the temporal-difference learning player: it selects slides by
// one-step afterstate lookahead over its value function, records the episode
// trajectory, and updates the value function with a backward TD(0) sweep when
// the episode closes.
//
// Parameters: alpha (learning rate, default 0 meaning no learning), init
// (allocate zeroed weight tables), load=<path> and save=<path> for weight
// persistence, plus the usual name/role labels. At least one of init or load
// is required.
type Learner struct {
	base
	alpha    float32
	net      ai.ValueLearner
	savePath string

	// Episode trajectory: afterstate snapshots and the rewards earned
	// reaching them, in chronological order. Owned exclusively by this
	// agent, cleared at OpenEpisode and consumed at CloseEpisode.
	rewards []state.Reward
	history []state.Board
}

var _ Agent = (*Learner)(nil)

func newLearner(params parameters.Params) (Agent, error) {
	b, err := newBase(params, "td", "player")
	if err != nil {
		return nil, err
	}
	alpha, err := parameters.PopParamOr(params, "alpha", float32(0))
	if err != nil {
		return nil, err
	}
	initTables, err := parameters.PopParamOr(params, "init", false)
	if err != nil {
		return nil, err
	}
	loadPath, err := parameters.PopParamOr(params, "load", "")
	if err != nil {
		return nil, err
	}
	savePath, err := parameters.PopParamOr(params, "save", "")
	if err != nil {
		return nil, err
	}

	l := &Learner{base: b, alpha: alpha, savePath: savePath}
	if initTables {
		l.net = ntuple.NewZero()
	}
	if loadPath != "" {
		if l.net == nil {
			l.net = ntuple.NewZero()
		}
		if err := l.net.Load(loadPath); err != nil {
			return nil, err
		}
	}
	if l.net == nil {
		return nil, errors.New(`learner needs weight tables: configure "init" or "load=<path>"`)
	}
	return l, nil
}

// OpenEpisode clears the trajectory.
func (l *Learner) OpenEpisode() {
	l.rewards = l.rewards[:0]
	l.history = l.history[:0]
}

// TakeAction evaluates the afterstate of all four slides on private copies of
// the board and picks the direction maximizing reward + Value(afterstate).
// Directions are tried in their canonical order and a later one only replaces
// the current best on strict improvement, so ties keep the first found.
//
// The chosen reward and afterstate snapshot are appended to the trajectory.
// If no direction is legal it returns the no-op action and records nothing.
func (l *Learner) TakeAction(board *state.Board) state.Action {
	bestDir := -1
	bestReward := state.IllegalMove
	bestValue := float32(-math32.MaxFloat32)
	var bestAfter state.Board
	for _, dir := range state.Directions {
		after := *board
		reward := after.Slide(dir)
		if reward == state.IllegalMove {
			continue
		}
		value := l.net.Value(&after)
		if float32(reward)+value > float32(bestReward)+bestValue {
			bestDir = int(dir)
			bestReward = reward
			bestValue = value
			bestAfter = after
		}
	}
	if bestDir < 0 {
		return state.Action{}
	}
	l.rewards = append(l.rewards, bestReward)
	l.history = append(l.history, bestAfter)
	return state.SlideAction(state.Direction(bestDir))
}

// CloseEpisode performs the backward TD(0) sweep over the trajectory.
//
// The terminal afterstate is adjusted toward 0 first (no future reward
// follows it); then, for t from n-2 down to 0, afterstate t is adjusted
// toward rewards[t+1] + Value(history[t+1]). Value(history[t+1]) is read
// after that afterstate's own adjustment: the in-place, end-to-start ordering
// is part of the trained-weight semantics and must not be reordered.
//
// With an empty trajectory or alpha == 0 (frozen weights) nothing changes.
func (l *Learner) CloseEpisode() {
	if len(l.history) == 0 || l.alpha == 0 {
		return
	}
	last := len(l.history) - 1
	l.net.Adjust(&l.history[last], 0, l.alpha)
	for t := last - 1; t >= 0; t-- {
		target := float32(l.rewards[t+1]) + l.net.Value(&l.history[t+1])
		l.net.Adjust(&l.history[t], target, l.alpha)
	}
	if klog.V(3).Enabled() {
		klog.Infof("%s: TD sweep over %d afterstates done", l, len(l.history))
	}
}

// Close persists the weight tables if a save path was configured.
func (l *Learner) Close() error {
	if l.savePath == "" {
		return nil
	}
	return l.net.Save(l.savePath)
}
