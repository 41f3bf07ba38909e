// Play watches a single episode of the configured player against the
// environment, rendering the board on the terminal.
package main

import (
	"flag"
	"fmt"

	"github.com/janpfeifer/must"
	"github.com/janpfeifer/td2048/internal/agents"
	"github.com/janpfeifer/td2048/internal/arena"
	"github.com/janpfeifer/td2048/internal/state"
	"github.com/janpfeifer/td2048/internal/ui/cli"
	"k8s.io/klog/v2"
)

var (
	flagPlayer = flag.String("player", "heuristic",
		"Configuration string for the playing agent, e.g. \"td:load=weights.bin\".")
	flagEnv = flag.String("env", "env",
		"Configuration string for the environment agent, e.g. \"env:seed=42\".")
	flagQuiet = flag.Bool("quiet", false,
		"Only print the final board and summary, not every step.")
	flagClear = flag.Bool("clear", false, "Clear the screen before each board.")
	flagColor = flag.Bool("color", true, "Colorize the board.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	player := must.M1(agents.New(*flagPlayer))
	env := must.M1(agents.New(*flagEnv))
	ui := cli.New(*flagColor, *flagClear)

	var observe arena.StepFunc
	if !*flagQuiet {
		observe = func(step int, board *state.Board, action state.Action, reward state.Reward) {
			fmt.Printf("step %d: %s (reward=%d)\n", step, action, reward)
			ui.PrintBoard(board)
			fmt.Println()
		}
	}

	result := arena.RunEpisode(player, env, observe)
	ui.PrintBoard(&result.Final)
	ui.PrintSummary(result.Score, result.Moves, result.LargestRank)

	must.M(player.Close())
	must.M(env.Close())
}
