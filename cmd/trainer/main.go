// Trainer runs the train/evaluate loop: it alternates turns between the
// configured playing agent and the environment agent for a number of
// episodes, reporting statistics per block and closing the agents
// deterministically at the end (which is what triggers a configured weight
// save).
//
// Examples:
//
//	trainer --player="td:alpha=0.1,init,save=weights.bin" --total=100000
//	trainer --player="td:load=weights.bin" --env="env:seed=7" --total=1000
package main

import (
	"flag"
	"fmt"

	"github.com/janpfeifer/must"
	"github.com/janpfeifer/td2048/internal/agents"
	"github.com/janpfeifer/td2048/internal/arena"
	"github.com/janpfeifer/td2048/internal/ui/cli"
	"k8s.io/klog/v2"
)

var (
	flagPlayer = flag.String("player", "td:alpha=0.1,init",
		"Configuration string for the playing agent.")
	flagEnv = flag.String("env", "env",
		"Configuration string for the environment agent.")
	flagTotal = flag.Int("total", 1000, "Total number of episodes to run.")
	flagBlock = flag.Int("block", 1000, "Number of episodes per statistics block.")
	flagPrint = flag.Bool("print", false,
		"Print the final board of the last episode of each block.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagTotal <= 0 {
		klog.Fatalf("Invalid --total=%d", *flagTotal)
	}
	if *flagBlock <= 0 {
		klog.Fatalf("Invalid --block=%d", *flagBlock)
	}

	player := must.M1(agents.New(*flagPlayer))
	env := must.M1(agents.New(*flagEnv))
	klog.Infof("Running %s against %s for %d episodes", player, env, *flagTotal)

	ui := cli.New(true, false)
	stats := arena.NewStats()
	var last arena.Result
	for episode := 1; episode <= *flagTotal; episode++ {
		last = arena.RunEpisode(player, env, nil)
		stats.Add(last)
		if episode%*flagBlock == 0 || episode == *flagTotal {
			fmt.Printf("%d\t%s\n", episode, stats.Report())
			if *flagPrint {
				ui.PrintBoard(&last.Final)
			}
			stats.Reset()
		}
	}

	must.M(player.Close())
	must.M(env.Close())
}
