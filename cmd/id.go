/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/allbin/go-msmouse"
	"github.com/allbin/go-msmouse/ttyport"
)

// idCmd represents the id command
var idCmd = &cobra.Command{
	Use:   "id <port>",
	Short: "Run the identification handshake and show the response byte",
	Long: `Run the power-cycle identification handshake against a port and print
whatever byte the device answers with.

A Microsoft-protocol mouse answers 0x4D ('M'). Other devices stay silent
or answer something else. The previous port settings are restored before
the port is released.

Examples:
  msmouse id /dev/ttyS0
  msmouse id /dev/ttyUSB0`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		port, err := ttyport.Open(portPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening port: %v\n", err)
			os.Exit(1)
		}
		defer port.Close()

		if err := port.Acquire(); err != nil {
			fmt.Fprintf(os.Stderr, "Error acquiring port: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			port.SetActive(false)
			port.Release()
		}()

		saved, err := msmouse.ReadSettings(port)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving port settings: %v\n", err)
			os.Exit(1)
		}
		defer saved.Apply(port)

		if err := msmouse.MouseSettings().Apply(port); err != nil {
			fmt.Fprintf(os.Stderr, "Error configuring port: %v\n", err)
			os.Exit(1)
		}
		if err := port.SetActive(true); err != nil {
			fmt.Fprintf(os.Stderr, "Error activating port: %v\n", err)
			os.Exit(1)
		}

		id, err := msmouse.Identify(port)
		switch {
		case err == nil:
			fmt.Printf("%s: responded 0x%02X ('%c'), mouse detected\n", portPath, id, id)
		case errors.Is(err, msmouse.ErrNotMouse):
			fmt.Printf("%s: responded 0x%02X, not a mouse\n", portPath, id)
			os.Exit(1)
		case errors.Is(err, msmouse.ErrShortRead):
			fmt.Printf("%s: no response\n", portPath)
			os.Exit(1)
		default:
			fmt.Fprintf(os.Stderr, "Error during handshake: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(idCmd)
}
