package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"

	"github.com/allbin/go-msmouse/internal/tui/colors"
)

const (
	columnKeySeq     = "seq"
	columnKeyTime    = "time"
	columnKeyDX      = "dx"
	columnKeyDY      = "dy"
	columnKeyButtons = "buttons"

	// maxEvents bounds memory for long watch sessions
	maxEvents = 1000
)

type EventTable struct {
	table  table.Model
	events []EventReceivedMsg
	follow bool
}

func NewEventTable(width, height int) *EventTable {
	if width < 60 {
		width = 60
	}
	if height < 5 {
		height = 5
	}

	columns := []table.Column{
		table.NewColumn(columnKeySeq, "#", 8),
		table.NewColumn(columnKeyTime, "Time", 14),
		table.NewColumn(columnKeyDX, "dX", 6),
		table.NewColumn(columnKeyDY, "dY", 6),
		table.NewFlexColumn(columnKeyButtons, "Buttons", 1),
	}

	t := table.New(columns).
		WithTargetWidth(width).
		WithPageSize(height).
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(colors.Text).
			BorderForeground(colors.Surface1).
			Align(lipgloss.Right)).
		HeaderStyle(lipgloss.NewStyle().
			Foreground(colors.Text).
			Bold(true)).
		Focused(true)

	return &EventTable{
		table:  t,
		events: make([]EventReceivedMsg, 0),
		follow: true,
	}
}

func (et *EventTable) SetSize(width, height int) {
	if width < 60 {
		width = 60
	}
	if height < 5 {
		height = 5
	}
	et.table = et.table.WithTargetWidth(width).WithPageSize(height)
}

func (et *EventTable) AddEvent(msg EventReceivedMsg) {
	et.events = append(et.events, msg)
	if len(et.events) > maxEvents {
		et.events = et.events[len(et.events)-maxEvents:]
	}
	et.refresh()
}

func (et *EventTable) Clear() {
	et.events = et.events[:0]
	et.refresh()
}

func (et *EventTable) Count() int {
	return len(et.events)
}

func (et *EventTable) refresh() {
	rows := make([]table.Row, len(et.events))
	for i, msg := range et.events {
		rows[i] = et.eventRow(msg)
	}
	et.table = et.table.WithRows(rows)
	if et.follow {
		et.table = et.table.WithCurrentPage(et.table.MaxPages())
	}
}

func (et *EventTable) eventRow(msg EventReceivedMsg) table.Row {
	ev := msg.Event

	deltaStyle := lipgloss.NewStyle().Foreground(colors.Subtext1)
	if ev.DX != 0 || ev.DY != 0 {
		deltaStyle = lipgloss.NewStyle().Foreground(colors.Sky)
	}
	buttonStyle := lipgloss.NewStyle().Foreground(colors.Subtext0)
	if ev.Buttons != 0 {
		buttonStyle = lipgloss.NewStyle().Foreground(colors.Peach).Bold(true)
	}

	return table.NewRow(table.RowData{
		columnKeySeq:     fmt.Sprintf("%d", msg.Seq),
		columnKeyTime:    ev.Timestamp.Format("15:04:05.000"),
		columnKeyDX:      table.NewStyledCell(FormatDelta(ev.DX), deltaStyle),
		columnKeyDY:      table.NewStyledCell(FormatDelta(ev.DY), deltaStyle),
		columnKeyButtons: table.NewStyledCell(FormatButtons(ev.Buttons), buttonStyle),
	})
}

// SetFollow controls whether the table keeps jumping to the latest page
// as events arrive.
func (et *EventTable) SetFollow(follow bool) {
	et.follow = follow
	if follow {
		et.table = et.table.WithCurrentPage(et.table.MaxPages())
	}
}

func (et *EventTable) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	et.table, cmd = et.table.Update(msg)
	return cmd
}

func (et *EventTable) View() string {
	return et.table.View()
}
