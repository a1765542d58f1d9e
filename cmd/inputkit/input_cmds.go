package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/seezol/inputkit/event"
	"github.com/seezol/inputkit/mouse"
)

var (
	buttonName string
	scrollLine bool
)

var keyCmd = &cobra.Command{
	Use:   "key <code>",
	Short: "Press and release a virtual key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := parseKeyCode(args[0])
		if err != nil {
			return err
		}
		tap, err := parseTapName(tapName)
		if err != nil {
			return err
		}
		if err := postKey(code, true, tap); err != nil {
			return err
		}
		return postKey(code, false, tap)
	},
}

var clickCmd = &cobra.Command{
	Use:   "click <x> <y>",
	Short: "Click a mouse button at a position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := parsePoint(args[0], args[1])
		if err != nil {
			return err
		}
		tap, err := parseTapName(tapName)
		if err != nil {
			return err
		}
		button := parseButtonName(buttonName)
		if err := postMouse(button, event.KindDown, x, y, tap); err != nil {
			return err
		}
		return postMouse(button, event.KindUp, x, y, tap)
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <x> <y>",
	Short: "Warp the cursor to a position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := parsePoint(args[0], args[1])
		if err != nil {
			return err
		}
		return mouse.SetLocation(mouse.Point{X: x, Y: y})
	},
}

var dragCmd = &cobra.Command{
	Use:   "drag <x1> <y1> <x2> <y2>",
	Short: "Press at one position and release at another",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		x1, y1, err := parsePoint(args[0], args[1])
		if err != nil {
			return err
		}
		x2, y2, err := parsePoint(args[2], args[3])
		if err != nil {
			return err
		}
		tap, err := parseTapName(tapName)
		if err != nil {
			return err
		}
		button := parseButtonName(buttonName)
		if err := postMouse(button, event.KindDown, x1, y1, tap); err != nil {
			return err
		}
		if err := postMouse(button, event.KindDragged, x2, y2, tap); err != nil {
			return err
		}
		return postMouse(button, event.KindUp, x2, y2, tap)
	},
}

var scrollCmd = &cobra.Command{
	Use:   "scroll <vertical> [horizontal]",
	Short: "Turn the scroll wheel",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deltas := make([]int32, 0, 2)
		for _, arg := range args {
			v, err := strconv.ParseInt(arg, 10, 32)
			if err != nil {
				return fmt.Errorf("delta %q: %w", arg, err)
			}
			deltas = append(deltas, int32(v))
		}
		tap, err := parseTapName(tapName)
		if err != nil {
			return err
		}
		unit := event.UnitPixel
		if scrollLine {
			unit = event.UnitLine
		}
		ev, err := event.NewWheel(unit, deltas...)
		if err != nil {
			return err
		}
		defer ev.Close()
		return ev.Post(tap)
	},
}

var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Print the current cursor position",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := mouse.Location()
		if err != nil {
			return err
		}
		fmt.Printf("%.1f %.1f\n", p.X, p.Y)
		return nil
	},
}

func init() {
	clickCmd.Flags().StringVar(&buttonName, "button", "left", "mouse button: left or right")
	dragCmd.Flags().StringVar(&buttonName, "button", "left", "mouse button: left or right")
	scrollCmd.Flags().BoolVar(&scrollLine, "lines", false, "scroll by lines instead of pixels")
}

// postKey posts a single key transition.
func postKey(code uint16, down bool, tap event.Tap) error {
	ev, err := event.NewKeyboard(code, down)
	if err != nil {
		return err
	}
	defer ev.Close()
	return ev.Post(tap)
}

// postMouse posts a single mouse transition.
func postMouse(button event.Button, kind event.MouseKind, x, y float64, tap event.Tap) error {
	ev, err := event.NewMouse(button, kind, x, y)
	if err != nil {
		return err
	}
	defer ev.Close()
	return ev.Post(tap)
}

// parseKeyCode accepts decimal or 0x-prefixed hex key codes.
func parseKeyCode(arg string) (uint16, error) {
	v, err := strconv.ParseUint(arg, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("key code %q: %w", arg, err)
	}
	return uint16(v), nil
}

// parsePoint parses an x, y argument pair.
func parsePoint(xs, ys string) (float64, float64, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("x %q: %w", xs, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("y %q: %w", ys, err)
	}
	return x, y, nil
}

// parseButtonName maps a flag value; anything but "right" is left.
func parseButtonName(name string) event.Button {
	if name == "right" {
		return event.ButtonRight
	}
	return event.ButtonLeft
}

// parseTapName maps the --tap flag onto a posting location.
func parseTapName(name string) (event.Tap, error) {
	switch name {
	case "hid":
		return event.TapHID, nil
	case "session":
		return event.TapSession, nil
	case "annotated":
		return event.TapAnnotatedSession, nil
	default:
		return 0, fmt.Errorf("unknown tap %q", name)
	}
}
