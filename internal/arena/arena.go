// Package arena drives episodes between a playing agent and the environment
// agent, and aggregates per-block statistics over many episodes.
package arena

import (
	"github.com/janpfeifer/td2048/internal/agents"
	"github.com/janpfeifer/td2048/internal/state"
	"k8s.io/klog/v2"
)

// StepFunc observes each applied action. board is the state right after the
// action took effect; it must not be retained past the call.
type StepFunc func(step int, board *state.Board, action state.Action, reward state.Reward)

// Result summarizes one finished episode.
type Result struct {
	// Score is the sum of the slide rewards earned by the player.
	Score int

	// Moves the player made.
	Moves int

	// LargestRank reached on the final board.
	LargestRank state.CellRank

	// Final board when the episode ended.
	Final state.Board
}

// RunEpisode plays a single episode from an empty board until no further
// action applies, and returns its summary.
//
// The environment acts on the first two steps (the two initial tiles), after
// which player and environment strictly alternate. Agents never see each
// other: both only observe the board owned by this driver. The episode ends
// when the agent to act returns the no-op action or its action turns out
// illegal; both agents then get their CloseEpisode call -- which is where the
// learning player applies its TD sweep.
//
// observe may be nil.
func RunEpisode(player, env agents.Agent, observe StepFunc) Result {
	var board state.Board
	player.OpenEpisode()
	env.OpenEpisode()

	var result Result
	for step := 0; ; step++ {
		who := env
		if step >= 2 && step%2 == 0 {
			who = player
		}
		action := who.TakeAction(&board)
		if action.IsNone() {
			break
		}
		reward := action.Apply(&board)
		if reward == state.IllegalMove {
			klog.V(2).Infof("%s returned inapplicable %s at step %d, ending episode", who, action, step)
			break
		}
		if action.Type == state.ActionSlide {
			result.Score += int(reward)
			result.Moves++
		}
		if observe != nil {
			observe(step, &board, action, reward)
		}
	}

	player.CloseEpisode()
	env.CloseEpisode()

	result.Final = board
	result.LargestRank = board.LargestRank()
	if klog.V(2).Enabled() {
		klog.Infof("Episode finished: score=%d, moves=%d, largest tile=%d",
			result.Score, result.Moves, 1<<result.LargestRank)
	}
	return result
}
