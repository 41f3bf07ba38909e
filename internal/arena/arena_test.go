package arena_test

import (
	"testing"

	"github.com/janpfeifer/td2048/internal/agents"
	"github.com/janpfeifer/td2048/internal/arena"
	"github.com/janpfeifer/td2048/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgents(t *testing.T, playerConfig, envConfig string) (player, env agents.Agent) {
	t.Helper()
	player, err := agents.New(playerConfig)
	require.NoError(t, err)
	env, err = agents.New(envConfig)
	require.NoError(t, err)
	return
}

func TestRunEpisodeIsDeterministicUnderSeed(t *testing.T) {
	// The heuristic player is deterministic and stateless; with a seeded
	// environment the whole episode replays identically.
	player1, env1 := newAgents(t, "heuristic", "env:seed=3")
	player2, env2 := newAgents(t, "heuristic", "env:seed=3")

	result1 := arena.RunEpisode(player1, env1, nil)
	result2 := arena.RunEpisode(player2, env2, nil)
	assert.Equal(t, result1, result2)
	assert.Greater(t, result1.Moves, 0)
}

func TestRunEpisodeEndsWithNoLegalMove(t *testing.T) {
	player, env := newAgents(t, "heuristic", "env:seed=9")
	result := arena.RunEpisode(player, env, nil)

	// The final board must be dead for the player: every slide illegal.
	for _, dir := range state.Directions {
		b := result.Final
		assert.Equal(t, state.IllegalMove, b.Slide(dir), "direction %s", dir)
	}
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.Greater(t, int(result.LargestRank), 0)
}

func TestRunEpisodeObserverSeesEveryAppliedAction(t *testing.T) {
	player, env := newAgents(t, "heuristic", "env:seed=1")

	slides, placements := 0, 0
	result := arena.RunEpisode(player, env, func(step int, board *state.Board, action state.Action, reward state.Reward) {
		switch action.Type {
		case state.ActionSlide:
			slides++
			assert.GreaterOrEqual(t, reward, state.Reward(0))
		case state.ActionPlace:
			placements++
			assert.Equal(t, state.Reward(0), reward)
		}
	})
	assert.Equal(t, result.Moves, slides)
	// Two initial tiles, then one placement after each player move.
	assert.GreaterOrEqual(t, placements, 2)
}

func TestRunEpisodeWithLearner(t *testing.T) {
	player, env := newAgents(t, "td:init,alpha=0.1", "env:seed=5")

	// The learner must survive consecutive episodes: trajectories are
	// cleared at open, the value function carries over.
	result1 := arena.RunEpisode(player, env, nil)
	result2 := arena.RunEpisode(player, env, nil)
	assert.Greater(t, result1.Moves, 0)
	assert.Greater(t, result2.Moves, 0)
}

func TestStats(t *testing.T) {
	stats := arena.NewStats()
	assert.Equal(t, "no episodes", stats.Report())

	stats.Add(arena.Result{Score: 100, Moves: 60, LargestRank: 3})
	stats.Add(arena.Result{Score: 300, Moves: 90, LargestRank: 4})
	stats.Add(arena.Result{Score: 200, Moves: 80, LargestRank: 4})
	assert.Equal(t, 3, stats.NumEpisodes())
	assert.InDelta(t, 200.0, stats.MeanScore(), 1e-9)

	report := stats.Report()
	assert.Contains(t, report, "episodes=3")
	assert.Contains(t, report, "max=300")
	// Largest-tile shares: one episode ended at 8, two at 16.
	assert.Contains(t, report, "8\t33.3%")
	assert.Contains(t, report, "16\t66.7%")

	stats.Reset()
	assert.Zero(t, stats.NumEpisodes())
}
