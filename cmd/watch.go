/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/allbin/go-msmouse"
	"github.com/allbin/go-msmouse/internal/tui/components"
	"github.com/allbin/go-msmouse/internal/tui/keys"
	"github.com/allbin/go-msmouse/internal/tui/models"
	"github.com/allbin/go-msmouse/internal/tui/styles"
	"github.com/allbin/go-msmouse/ttyport"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <port>",
	Short: "Watch movement events in a live terminal UI",
	Long: `Start the driver on a port and display movement events in a real-time
terminal user interface.

Events appear in a scrolling table with timestamps, deltas and button
state. The status bar shows the driver lifecycle, the fixed line
parameters and a running event count.

The port argument can be omitted when a default is configured ("port" in
the config file, or MSMOUSE_PORT).

Examples:
  msmouse watch /dev/ttyS0
  msmouse watch /dev/ttyUSB0`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath, err := resolvePort(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := runWatchTUI(portPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watchModel represents the Bubble Tea model for the watch command
type watchModel struct {
	*models.WatchModel
	eventTable *components.EventTable
	statusBar  *components.StatusBar
	help       help.Model
	keys       keys.WatchKeys
}

// tickMsg drives the status bar clock
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func runWatchTUI(portPath string) error {
	watch := models.NewWatchModel(portPath)

	m := watchModel{
		WatchModel: watch,
		eventTable: components.NewEventTable(80, 20),
		statusBar:  components.NewStatusBar(portPath),
		help:       help.New(),
		keys:       keys.NewWatchKeys(),
	}
	m.statusBar.SetState(components.StateProbing, nil)

	p := tea.NewProgram(&m, tea.WithAltScreen())

	// Open the port and start the driver in the background so the UI
	// comes up immediately.
	go func() {
		port, err := ttyport.Open(portPath)
		if err != nil {
			p.Send(models.DriverStatusMsg{Running: false, Error: err})
			return
		}

		sink := msmouse.EventSinkFunc(func(ev msmouse.Event) {
			p.Send(components.EventReceivedMsg{
				Event: ev,
				Seq:   watch.NextSeq(),
			})
		})

		mouse := msmouse.New(port, sink, msmouse.WithLogger(newLogger()))
		watch.SetMouse(mouse)

		if err := mouse.Start(); err != nil {
			port.Close()
			p.Send(models.DriverStatusMsg{Running: false, Error: err})
			return
		}

		p.Send(models.DriverStatusMsg{Running: true, Error: nil})

		// Release everything when the UI is done.
		<-watch.GetContext().Done()
		mouse.Stop()
		port.Close()
	}()

	_, err := p.Run()

	m.Cleanup()
	return err
}

func (m *watchModel) Init() tea.Cmd {
	return tickCmd()
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Status bar and help take one line each, the table footer three
		m.eventTable.SetSize(msg.Width, msg.Height-5)
		m.statusBar.SetWidth(msg.Width)
		m.help.Width = msg.Width
		m.SetReady(true)

	case models.DriverStatusMsg:
		m.SetRunning(msg.Running)
		m.SetError(msg.Error)
		if msg.Error != nil {
			m.statusBar.SetState(components.StateError, msg.Error)
		} else if msg.Running {
			m.statusBar.SetState(components.StatePolling, nil)
		} else {
			m.statusBar.SetState(components.StateStopped, nil)
		}

	case components.EventReceivedMsg:
		if !m.IsPaused() {
			m.eventTable.AddEvent(msg)
		}
		m.statusBar.SetEventCount(m.EventCount())

	case tickMsg:
		cmds = append(cmds, tickCmd())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Cleanup()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			m.eventTable.Clear()

		case key.Matches(msg, m.keys.Pause):
			m.statusBar.SetPaused(m.TogglePaused())

		case key.Matches(msg, m.keys.Reopen):
			if !m.IsRunning() {
				if mouse := m.GetMouse(); mouse != nil {
					m.statusBar.SetState(components.StateProbing, nil)
					cmds = append(cmds, func() tea.Msg {
						err := mouse.Start()
						return models.DriverStatusMsg{Running: err == nil, Error: err}
					})
				}
			}

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		default:
			cmds = append(cmds, m.eventTable.Update(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *watchModel) View() string {
	var content string
	switch {
	case m.GetError() != nil:
		content = styles.ErrorStyle.Render(fmt.Sprintf("Driver error: %v\n\nPress r to retry, q to quit", m.GetError()))
	case m.IsReady():
		content = m.eventTable.View()
	default:
		content = styles.InfoStyle.Render("Initializing...")
	}

	statusBar := m.statusBar.View(time.Now().Format("15:04:05"))
	helpView := styles.HelpStyle.Render(m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, content, helpView, statusBar)
}
