package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seezol/inputkit/screen"
)

var colorDisplay uint32

var colorCmd = &cobra.Command{
	Use:   "color <x> <y>",
	Short: "Print the pixel color at a display position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := parsePoint(args[0], args[1])
		if err != nil {
			return err
		}
		d := screen.DisplayID(colorDisplay)
		if colorDisplay == 0 {
			main, err := screen.Main()
			if err != nil {
				return err
			}
			d = main.ID
		}
		rgb, ok := screen.ColorAt(d, x, y)
		if !ok {
			return fmt.Errorf("no color at %.1f, %.1f on display %d", x, y, d)
		}
		fmt.Printf("#%02X%02X%02X\n", rgb.R, rgb.G, rgb.B)
		return nil
	},
}

var displaysCmd = &cobra.Command{
	Use:   "displays",
	Short: "List online displays",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		displays, err := screen.Online()
		if err != nil {
			return err
		}
		for _, d := range displays {
			primary := ""
			if d.Primary {
				primary = " primary"
			}
			fmt.Printf("%d: %.0fx%.0f at %.0f,%.0f%s\n",
				d.ID, d.Bounds.W, d.Bounds.H, d.Bounds.X, d.Bounds.Y, primary)
		}
		return nil
	},
}

func init() {
	colorCmd.Flags().Uint32Var(&colorDisplay, "display", 0, "display id (default: main display)")
}
