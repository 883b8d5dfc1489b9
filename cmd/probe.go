/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/allbin/go-msmouse"
	"github.com/allbin/go-msmouse/ttyport"
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe [port]",
	Short: "Check whether a serial mouse is attached to a port",
	Long: `Probe a serial port for an attached Microsoft-protocol mouse.

The probe temporarily reconfigures the port for the mouse line settings,
performs the identification handshake, and restores the previous settings
before releasing the port. Devices other than mice are left undisturbed.

Without a port argument, all candidate ports on the system are probed.

Examples:
  msmouse probe /dev/ttyS0
  msmouse probe /dev/ttyUSB0
  msmouse probe`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		defer logger.Sync()

		var paths []string
		if len(args) == 1 {
			paths = args
		} else {
			var err error
			paths, err = ttyport.ListPorts()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error listing ports: %v\n", err)
				os.Exit(1)
			}
			if len(paths) == 0 {
				fmt.Println("No serial ports found")
				os.Exit(1)
			}
		}

		found := false
		for _, path := range paths {
			if probePort(path, logger) {
				fmt.Printf("%s: mouse detected\n", path)
				found = true
			} else {
				fmt.Printf("%s: no mouse\n", path)
			}
		}

		if !found {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func probePort(path string, logger *zap.Logger) bool {
	port, err := ttyport.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return false
	}
	defer port.Close()

	mouse := msmouse.New(port, nil, msmouse.WithLogger(logger))
	return mouse.Probe()
}
