// Package control implements the remote injection protocol: a JSON
// websocket surface that maps pointer, wheel, and key messages onto
// synthesized OS input.
package control

import "github.com/seezol/inputkit/event"

// ActionType identifies the kind of input action to execute.
type ActionType string

const (
	// ActMove moves the cursor without any button held.
	ActMove ActionType = "move"
	// ActDrag moves the cursor while a button is held.
	ActDrag ActionType = "drag"
	// ActDown presses a mouse button.
	ActDown ActionType = "down"
	// ActUp releases a mouse button.
	ActUp ActionType = "up"
	// ActClick presses and releases a button at a position.
	ActClick ActionType = "click"
	// ActKey presses or releases a key.
	ActKey ActionType = "key"
	// ActScroll turns the scroll wheel.
	ActScroll ActionType = "scroll"
)

// Action describes a normalized input operation to apply.
type Action struct {
	Type   ActionType
	Button event.Button
	X      float64
	Y      float64
	Key    uint16
	Down   bool
	Unit   event.ScrollUnit
	Deltas []int32
}
