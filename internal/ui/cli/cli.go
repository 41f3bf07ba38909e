// Package cli renders the puzzle board on the terminal.
package cli

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/td2048/internal/state"
	"golang.org/x/term"
)

// CharsPerColumn is the rendered width of one board cell.
const CharsPerColumn = 7

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s after removing its color/control sequences.
func displayWidth(s string) int {
	return len(ansiFilter.ReplaceAllString(s, ""))
}

func printCentered(block string) {
	lines := strings.Split(block, "\n")
	terminalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	blockWidth := 0
	for _, line := range lines {
		if w := displayWidth(line); w > blockWidth {
			blockWidth = w
		}
	}
	indent := (terminalWidth - blockWidth) / 2
	if indent < 0 {
		indent = 0
	}
	for _, line := range lines {
		if len(line) == 0 {
			fmt.Println()
			continue
		}
		fmt.Printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}

func centerString(s string, fit int) string {
	if len(s) >= fit {
		return s
	}
	marginLeft := (fit - len(s)) / 2
	marginRight := fit - len(s) - marginLeft
	return strings.Repeat(" ", marginLeft) + s + strings.Repeat(" ", marginRight)
}

// tileColors maps tile ranks to background colors, roughly following the
// classic palette: pale for small tiles, orange to red as they grow.
var tileColors = map[state.CellRank]lipgloss.Color{
	1:  lipgloss.Color("255"),
	2:  lipgloss.Color("253"),
	3:  lipgloss.Color("222"),
	4:  lipgloss.Color("215"),
	5:  lipgloss.Color("209"),
	6:  lipgloss.Color("203"),
	7:  lipgloss.Color("227"),
	8:  lipgloss.Color("226"),
	9:  lipgloss.Color("220"),
	10: lipgloss.Color("214"),
	11: lipgloss.Color("208"),
}

var emptyCellStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("238")).
	Foreground(lipgloss.Color("244"))

// UI prints boards and episode summaries to stdout.
type UI struct {
	color, clearScreen bool
}

// New creates a UI. color disables itself gracefully when the terminal does
// not support it (lipgloss handles the degradation).
func New(color, clearScreen bool) *UI {
	return &UI{color: color, clearScreen: clearScreen}
}

// PrintBoard renders the board centered on the terminal.
func (ui *UI) PrintBoard(b *state.Board) {
	if ui.clearScreen {
		fmt.Print("\033c")
	}
	var sb strings.Builder
	for r := 0; r < state.BoardSize; r++ {
		for c := 0; c < state.BoardSize; c++ {
			sb.WriteString(ui.cell(b.Cell(r*state.BoardSize + c)))
		}
		sb.WriteByte('\n')
	}
	printCentered(sb.String())
}

// PrintSummary prints the end-of-episode line.
func (ui *UI) PrintSummary(score, moves int, largest state.CellRank) {
	summary := fmt.Sprintf(" score=%d  moves=%d  largest tile=%d ", score, moves, 1<<largest)
	if ui.color {
		summary = lipgloss.NewStyle().
			Background(lipgloss.Color("13")).
			Foreground(lipgloss.Color("0")).
			Render(summary)
	}
	printCentered(summary)
}

func (ui *UI) cell(rank state.CellRank) string {
	label := "."
	if rank != 0 {
		label = strconv.Itoa(1 << rank)
	}
	text := centerString(label, CharsPerColumn)
	if !ui.color {
		return text
	}
	if rank == 0 {
		return emptyCellStyle.Render(text)
	}
	color, ok := tileColors[rank]
	if !ok {
		// Beyond the palette everything is celebration red.
		color = lipgloss.Color("196")
	}
	return lipgloss.NewStyle().
		Background(color).
		Foreground(lipgloss.Color("0")).
		Render(text)
}
