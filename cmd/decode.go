/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allbin/go-msmouse"
	"github.com/allbin/go-msmouse/internal/tui/components"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <byte> <byte> <byte> [...]",
	Short: "Decode raw packet bytes into movement events",
	Long: `Decode captured packet bytes into movement events.

Bytes are given in hex, three per packet, and more than one packet can be
decoded in a single call. Useful for inspecting captures or working out
why a device misbehaves.

Examples:
  msmouse decode 40 02 03
  msmouse decode 0x60 0x05 0x06
  msmouse decode 40 02 03 70 3F 3F`,
	Args: cobra.MinimumNArgs(msmouse.PacketLength),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args)%msmouse.PacketLength != 0 {
			fmt.Fprintf(os.Stderr, "Error: expected a multiple of %d bytes, got %d\n",
				msmouse.PacketLength, len(args))
			os.Exit(1)
		}

		packet := make([]byte, 0, msmouse.PacketLength)
		for _, arg := range args {
			b, err := parseByte(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing byte %q: %v\n", arg, err)
				os.Exit(1)
			}
			packet = append(packet, b)

			if len(packet) < msmouse.PacketLength {
				continue
			}

			ev, ok := msmouse.DecodePacket(packet)
			if !ok {
				fmt.Printf("% X  invalid packet (framing bit not set)\n", packet)
			} else {
				fmt.Printf("% X  dx=%s dy=%s buttons=%s\n", packet,
					components.FormatDelta(ev.DX),
					components.FormatDelta(ev.DY),
					components.FormatButtons(ev.Buttons))
			}
			packet = packet[:0]
		}
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func parseByte(s string) (byte, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return byte(v), nil
}
