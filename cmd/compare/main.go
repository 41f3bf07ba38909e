// Compare evaluates two player configurations over the same number of
// episodes and reports their statistics side by side. Episodes run in
// parallel, each worker owning its own agent pair, so only frozen-weight
// configurations make sense here (e.g. "td:load=weights.bin", "heuristic").
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sync"

	"github.com/janpfeifer/must"
	"github.com/janpfeifer/td2048/internal/agents"
	"github.com/janpfeifer/td2048/internal/arena"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

var (
	flagAIs = [2]*string{
		flag.String("ai0", "heuristic", "Configuration string for the first player."),
		flag.String("ai1", "random", "Configuration string for the second player."),
	}
	flagEnv = flag.String("env", "env",
		"Configuration string for the environment agent.")
	flagNumEpisodes = flag.Int("num_episodes", 100, "Episodes to run per player.")
	flagParallelism = flag.Int("parallelism", 0,
		"Workers running episodes simultaneously. Defaults to GOMAXPROCS.")
)

// evaluate runs the given player configuration for the configured number of
// episodes, spread over parallel workers. Each worker builds its own agent
// pair: agents are single-owner, nothing is shared across workers.
func evaluate(config string, parallelism int) (*arena.Stats, error) {
	work := make(chan int, *flagNumEpisodes)
	for i := 0; i < *flagNumEpisodes; i++ {
		work <- i
	}
	close(work)

	var mu sync.Mutex
	stats := arena.NewStats()
	var g errgroup.Group
	for w := 0; w < parallelism; w++ {
		g.Go(func() error {
			player, err := agents.New(config)
			if err != nil {
				return err
			}
			env, err := agents.New(*flagEnv)
			if err != nil {
				return err
			}
			for range work {
				result := arena.RunEpisode(player, env, nil)
				mu.Lock()
				stats.Add(result)
				mu.Unlock()
			}
			if err := player.Close(); err != nil {
				return err
			}
			return env.Close()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagNumEpisodes <= 0 {
		klog.Fatalf("Invalid --num_episodes=%d", *flagNumEpisodes)
	}
	parallelism := *flagParallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	var results [2]*arena.Stats
	for i, config := range flagAIs {
		klog.Infof("Evaluating %q over %d episodes (parallelism=%d)",
			*config, *flagNumEpisodes, parallelism)
		results[i] = must.M1(evaluate(*config, parallelism))
		fmt.Printf("ai%d (%s):\n%s\n\n", i, *config, results[i].Report())
	}
	fmt.Printf("mean scores: ai0=%.1f vs ai1=%.1f\n",
		results[0].MeanScore(), results[1].MeanScore())
}
