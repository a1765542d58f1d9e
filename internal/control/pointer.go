package control

import (
	"math"
	"time"

	"github.com/seezol/inputkit/event"
)

// PointerState tracks which button is held so pointer moves map to
// plain moves or drags, and throttles move traffic.
type PointerState struct {
	held         bool
	button       event.Button
	lastMoveAt   time.Time
	lastX        float64
	lastY        float64
	moveInterval time.Duration
	minDelta     float64
	now          func() time.Time
}

// NewPointerState returns a ready-to-use pointer tracker.
func NewPointerState(moveInterval time.Duration, minDelta float64) *PointerState {
	return &PointerState{
		moveInterval: moveInterval,
		minDelta:     minDelta,
		now:          time.Now,
	}
}

// SetNowFunc overrides the clock used for throttling.
func (p *PointerState) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		p.now = fn
	}
}

// HandleDown processes a pointer down event.
func (p *PointerState) HandleDown(inputEnabled bool, button event.Button, x, y float64) []Action {
	if !inputEnabled {
		return nil
	}
	p.held = true
	p.button = button
	p.lastMoveAt = p.now()
	p.lastX = x
	p.lastY = y
	return []Action{{Type: ActDown, Button: button, X: x, Y: y}}
}

// HandleMove processes a pointer move event. Moves while a button is
// held become drags of that button.
func (p *PointerState) HandleMove(inputEnabled bool, x, y float64) []Action {
	if !inputEnabled {
		return nil
	}

	now := p.now()
	if !p.lastMoveAt.IsZero() && now.Sub(p.lastMoveAt) < p.moveInterval {
		return nil
	}
	if math.Abs(x-p.lastX) < p.minDelta && math.Abs(y-p.lastY) < p.minDelta {
		return nil
	}

	p.lastMoveAt = now
	p.lastX = x
	p.lastY = y
	if p.held {
		return []Action{{Type: ActDrag, Button: p.button, X: x, Y: y}}
	}
	return []Action{{Type: ActMove, X: x, Y: y}}
}

// HandleUp processes a pointer up event. An up with no held button is
// dropped.
func (p *PointerState) HandleUp(inputEnabled bool, x, y float64) []Action {
	if !inputEnabled {
		return nil
	}
	if !p.held {
		return nil
	}

	p.held = false
	return []Action{{Type: ActUp, Button: p.button, X: x, Y: y}}
}

// ActionsForKey produces a press or release of one key.
func ActionsForKey(inputEnabled bool, code uint16, down bool) []Action {
	if !inputEnabled {
		return nil
	}
	return []Action{{Type: ActKey, Key: code, Down: down}}
}

// ActionsForWheel produces one wheel turn, vertical first.
func ActionsForWheel(inputEnabled bool, unit event.ScrollUnit, wheelY, wheelX int32) []Action {
	if !inputEnabled {
		return nil
	}
	if wheelY == 0 && wheelX == 0 {
		return nil
	}
	return []Action{{Type: ActScroll, Unit: unit, Deltas: []int32{wheelY, wheelX}}}
}
