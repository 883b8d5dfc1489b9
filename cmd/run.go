/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/allbin/go-msmouse"
	"github.com/allbin/go-msmouse/internal/tui/components"
	"github.com/allbin/go-msmouse/ttyport"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <port>",
	Short: "Stream movement events as plain text",
	Long: `Start the driver on a port and print movement events to stdout, one per
line, until interrupted.

The port is verified to have a mouse attached before polling starts.
Press Ctrl+C to stop; the driver shuts down cleanly and releases the
port.

The port argument can be omitted when a default is configured ("port" in
the config file, or MSMOUSE_PORT).

Examples:
  msmouse run /dev/ttyS0
  msmouse run /dev/ttyUSB0 --verbose`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath, err := resolvePort(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		logger := newLogger()
		defer logger.Sync()

		port, err := ttyport.Open(portPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening port: %v\n", err)
			os.Exit(1)
		}
		defer port.Close()

		sink := msmouse.EventSinkFunc(func(ev msmouse.Event) {
			fmt.Println(components.FormatEventPlain(ev))
		})

		mouse := msmouse.New(port, sink, msmouse.WithLogger(logger))
		if err := mouse.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting driver: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Polling %s (1200 baud 7N1), press Ctrl+C to stop\n", portPath)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		fmt.Println("\nStopping...")
		mouse.Stop()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
