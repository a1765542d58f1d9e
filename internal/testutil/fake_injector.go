// Package testutil provides fakes shared by control-layer tests.
package testutil

import (
	"sync"

	"github.com/seezol/inputkit/event"
	"github.com/seezol/inputkit/internal/control"
)

// Call records a single injected action.
type Call struct {
	Name   string
	Button event.Button
	X      float64
	Y      float64
	Key    uint16
	Down   bool
	Unit   event.ScrollUnit
	Deltas []int32
}

// FakeInjector implements control.Injector and records calls for
// tests. Err, when set, is returned by every method after recording.
// Safe for use from the server's read loop alongside test assertions.
type FakeInjector struct {
	mu    sync.Mutex
	calls []Call
	Err   error
}

// Ensure FakeInjector implements the interface.
var _ control.Injector = (*FakeInjector)(nil)

// Calls returns a copy of the recorded calls.
func (f *FakeInjector) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// record appends one call and returns the configured error.
func (f *FakeInjector) record(c Call) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	return f.Err
}

// Move records a plain cursor move.
func (f *FakeInjector) Move(x, y float64) error {
	return f.record(Call{Name: "Move", X: x, Y: y})
}

// Drag records a cursor move with a held button.
func (f *FakeInjector) Drag(button event.Button, x, y float64) error {
	return f.record(Call{Name: "Drag", Button: button, X: x, Y: y})
}

// ButtonDown records a button press.
func (f *FakeInjector) ButtonDown(button event.Button, x, y float64) error {
	return f.record(Call{Name: "ButtonDown", Button: button, X: x, Y: y})
}

// ButtonUp records a button release.
func (f *FakeInjector) ButtonUp(button event.Button, x, y float64) error {
	return f.record(Call{Name: "ButtonUp", Button: button, X: x, Y: y})
}

// Click records a click.
func (f *FakeInjector) Click(button event.Button, x, y float64) error {
	return f.record(Call{Name: "Click", Button: button, X: x, Y: y})
}

// Key records a key press or release.
func (f *FakeInjector) Key(code uint16, down bool) error {
	return f.record(Call{Name: "Key", Key: code, Down: down})
}

// Scroll records a wheel turn.
func (f *FakeInjector) Scroll(unit event.ScrollUnit, deltas ...int32) error {
	return f.record(Call{Name: "Scroll", Unit: unit, Deltas: deltas})
}

