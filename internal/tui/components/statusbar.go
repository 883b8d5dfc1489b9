package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/allbin/go-msmouse/internal/tui/colors"
)

// DriverState mirrors the lifecycle phases the status bar can show.
type DriverState int

const (
	StateIdle DriverState = iota
	StateProbing
	StatePolling
	StateStopped
	StateError
)

func (s DriverState) String() string {
	switch s {
	case StateProbing:
		return "PROBING"
	case StatePolling:
		return "POLLING"
	case StateStopped:
		return "STOPPED"
	case StateError:
		return "ERROR"
	default:
		return "IDLE"
	}
}

type StatusBar struct {
	portPath   string
	state      DriverState
	err        error
	width      int
	eventCount uint64
	paused     bool
}

func NewStatusBar(portPath string) *StatusBar {
	return &StatusBar{
		portPath: portPath,
		state:    StateIdle,
	}
}

func (sb *StatusBar) SetState(state DriverState, err error) {
	sb.state = state
	sb.err = err
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func (sb *StatusBar) SetEventCount(count uint64) {
	sb.eventCount = count
}

func (sb *StatusBar) SetPaused(paused bool) {
	sb.paused = paused
}

// View renders the full-width status bar: state chip, port with health
// indicator, line parameters, event count and wall clock.
func (sb *StatusBar) View(timestamp string) string {
	terminalWidth := sb.width
	if terminalWidth <= 0 {
		terminalWidth = 80
	}

	// Section 1: State chip, colored by lifecycle phase
	var chipColor lipgloss.Color
	switch sb.state {
	case StatePolling:
		chipColor = colors.Green
	case StateProbing:
		chipColor = colors.Yellow
	case StateError:
		chipColor = colors.Red
	default:
		chipColor = colors.Blue
	}
	chipText := sb.state.String()
	if sb.paused && sb.state == StatePolling {
		chipColor = colors.Peach
		chipText = "PAUSED"
	}
	chip := lipgloss.NewStyle().
		Foreground(colors.Base).
		Background(chipColor).
		Bold(true).
		Padding(0, 1).
		Render(chipText)

	// Section 2: Port path
	port := lipgloss.NewStyle().
		Foreground(colors.Mauve).
		Bold(true).
		Padding(0, 1).
		Render(sb.portPath)

	// Section 3: Single character health indicator
	var indicator string
	var indicatorStyle lipgloss.Style
	switch {
	case sb.err != nil:
		indicatorStyle = lipgloss.NewStyle().Foreground(colors.Red)
		indicator = "✗"
	case sb.state == StatePolling:
		indicatorStyle = lipgloss.NewStyle().Foreground(colors.Green)
		indicator = "●"
	case sb.state == StateProbing:
		indicatorStyle = lipgloss.NewStyle().Foreground(colors.Yellow)
		indicator = "○"
	default:
		indicatorStyle = lipgloss.NewStyle().Foreground(colors.Red)
		indicator = "○"
	}
	healthIndicator := indicatorStyle.Render(indicator)

	// Section 4: Fixed line parameters, the protocol allows no others
	lineInfo := lipgloss.NewStyle().
		Foreground(colors.Subtext0).
		Padding(0, 1).
		Render("⚡ 1200 baud 7N1 RTS+DTR")

	// Section 5: Event count
	countInfo := lipgloss.NewStyle().
		Foreground(colors.Subtext1).
		Padding(0, 1).
		Render(fmt.Sprintf("%d events", sb.eventCount))

	// Section 6: Wall clock
	timeInfo := lipgloss.NewStyle().
		Foreground(colors.Subtext1).
		Padding(0, 1).
		Render(timestamp)

	divider := lipgloss.NewStyle().
		Foreground(colors.Surface2).
		Padding(0, 1).
		Render("│")

	leftSide := lipgloss.JoinHorizontal(lipgloss.Left, chip, port, healthIndicator, divider)
	rightSide := lipgloss.JoinHorizontal(lipgloss.Left, lineInfo, divider, countInfo, divider, timeInfo)

	leftWidth := lipgloss.Width(leftSide)
	rightWidth := lipgloss.Width(rightSide)
	spacerWidth := terminalWidth - leftWidth - rightWidth
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	statusBarStyle := lipgloss.NewStyle().
		Foreground(colors.Text).
		Background(colors.Surface0).
		Width(terminalWidth)

	content := lipgloss.JoinHorizontal(lipgloss.Left, leftSide, spacer, rightSide)
	return statusBarStyle.Render(content)
}
