package arena

import (
	"fmt"
	"slices"
	"strings"

	"github.com/janpfeifer/td2048/internal/generics"
	"github.com/janpfeifer/td2048/internal/state"
)

// Stats accumulates episode results for one reporting block.
type Stats struct {
	numEpisodes int
	totalScore  int
	totalMoves  int
	maxScore    int

	// rankCounts tallies, per rank, the episodes whose largest tile ended at
	// exactly that rank.
	rankCounts map[state.CellRank]int
}

// NewStats returns an empty accumulator.
func NewStats() *Stats {
	return &Stats{rankCounts: make(map[state.CellRank]int)}
}

// Add one episode result.
func (s *Stats) Add(result Result) {
	s.numEpisodes++
	s.totalScore += result.Score
	s.totalMoves += result.Moves
	if result.Score > s.maxScore {
		s.maxScore = result.Score
	}
	s.rankCounts[result.LargestRank]++
}

// NumEpisodes accumulated so far.
func (s *Stats) NumEpisodes() int {
	return s.numEpisodes
}

// MeanScore over the accumulated episodes.
func (s *Stats) MeanScore() float64 {
	if s.numEpisodes == 0 {
		return 0
	}
	return float64(s.totalScore) / float64(s.numEpisodes)
}

// Reset the accumulator for the next block.
func (s *Stats) Reset() {
	*s = Stats{rankCounts: make(map[state.CellRank]int)}
}

// Report returns a one-block summary: mean/max score, mean moves, and for
// each largest tile reached the share of episodes that ended there together
// with the cumulative share that reached at least that tile.
func (s *Stats) Report() string {
	if s.numEpisodes == 0 {
		return "no episodes"
	}
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "episodes=%d mean=%.1f max=%d moves=%.1f\n",
		s.numEpisodes, s.MeanScore(), s.maxScore, float64(s.totalMoves)/float64(s.numEpisodes))

	ranks := slices.Collect(generics.SortedKeys(s.rankCounts))
	// Cumulative counts from the largest rank down: reaching tile 2^r implies
	// having reached every smaller one.
	remaining := s.numEpisodes
	lines := generics.SliceMap(ranks, func(rank state.CellRank) string {
		count := s.rankCounts[rank]
		line := fmt.Sprintf("\t%d\t%.1f%%\t(>=%.1f%%)",
			1<<rank,
			100*float64(count)/float64(s.numEpisodes),
			100*float64(remaining)/float64(s.numEpisodes))
		remaining -= count
		return line
	})
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}
