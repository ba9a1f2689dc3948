// File: services/rangeedit/editor.go
package rangeedit

import (
	"errors"
	"fmt"

	"clinicdesk/utils"
)

// Mode is the drag-session state. At most one mode is active per session;
// handle hits take priority over the bar so a press near an edge is never
// ambiguous.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragStart
	ModeDragEnd
	ModeDragBar
)

const (
	// Step is the snapping increment, in minutes.
	Step = 15
	// MinGap is the smallest allowed separation between start and end.
	MinGap = 30
	// HandleRadius is how close (in minutes) a press must land to an
	// endpoint to grab its handle instead of the bar.
	HandleRadius = 15
)

// Config bounds the editable window and receives committed changes.
// OnChange only reports values; persistence is the caller's responsibility.
type Config struct {
	MinHour  int
	MaxHour  int
	OnChange func(start, end int)
}

// Editor holds a (start, end) pair in minutes since midnight and applies the
// drag constraints on every move: 15-minute snapping, a 30-minute minimum
// separation, and clamping to the configured hour window. Bar drags translate
// both bounds together and never change the duration.
type Editor struct {
	cfg        Config
	start      int
	end        int
	mode       Mode
	grabOffset int
	disabled   bool
}

// New builds an editor from "HH:MM" bounds. Malformed or inverted bounds
// degrade to the smallest valid window at the lower bound rather than failing.
func New(start, end string, cfg Config) *Editor {
	if cfg.MaxHour <= cfg.MinHour {
		cfg.MinHour, cfg.MaxHour = 0, 24
	}
	e := &Editor{cfg: cfg}
	s, okS := utils.ParseClock(start)
	en, okE := utils.ParseClock(end)
	if !okS || !okE || en-s < MinGap {
		s = cfg.MinHour * 60
		en = s + MinGap
	}
	e.start = clamp(s, e.lowerBound(), e.upperBound()-MinGap)
	e.end = clamp(en, e.start+MinGap, e.upperBound())
	return e
}

func (e *Editor) lowerBound() int { return e.cfg.MinHour * 60 }
func (e *Editor) upperBound() int { return e.cfg.MaxHour * 60 }

// Range returns the current bounds in minutes since midnight.
func (e *Editor) Range() (start, end int) {
	return e.start, e.end
}

// RangeClock returns the current bounds as "HH:MM" strings.
func (e *Editor) RangeClock() (start, end string) {
	return utils.FormatClock(e.start), utils.FormatClock(e.end)
}

// Mode returns the active drag mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// SetDisabled toggles interaction. Disabling mid-drag drops the drag session;
// no drag state survives it.
func (e *Editor) SetDisabled(disabled bool) {
	e.disabled = disabled
	if disabled {
		e.mode = ModeIdle
		e.grabOffset = 0
	}
}

// SetRange replaces the bounds from "HH:MM" strings, applying the same
// constraints as a drag. Malformed input is rejected and the state unchanged.
func (e *Editor) SetRange(start, end string) bool {
	s, okS := utils.ParseClock(start)
	en, okE := utils.ParseClock(end)
	if !okS || !okE || en-s < MinGap {
		return false
	}
	s = clamp(s, e.lowerBound(), e.upperBound()-MinGap)
	en = clamp(en, s+MinGap, e.upperBound())
	e.apply(s, en)
	return true
}

// Press starts a drag session at pos (minutes since midnight) and returns the
// armed mode. Handle regions outrank the bar; a press outside the interval
// arms nothing.
func (e *Editor) Press(pos int) Mode {
	if e.disabled || e.mode != ModeIdle {
		return e.mode
	}
	distStart := abs(pos - e.start)
	distEnd := abs(pos - e.end)
	switch {
	case distStart <= HandleRadius && distStart <= distEnd:
		e.mode = ModeDragStart
	case distEnd <= HandleRadius:
		e.mode = ModeDragEnd
	case pos > e.start && pos < e.end:
		e.mode = ModeDragBar
		e.grabOffset = pos - e.start
	}
	return e.mode
}

// Move recomputes the dragged bound from the raw pointer position. The
// candidate is snapped to the 15-minute grid before the minimum-separation
// clamp so the committed value always sits on the grid.
func (e *Editor) Move(raw int) {
	if e.disabled {
		return
	}
	switch e.mode {
	case ModeDragStart:
		cand := clamp(snap(raw), e.lowerBound(), e.end-MinGap)
		e.apply(cand, e.end)
	case ModeDragEnd:
		cand := clamp(snap(raw), e.start+MinGap, e.upperBound())
		e.apply(e.start, cand)
	case ModeDragBar:
		dur := e.end - e.start
		cand := clamp(snap(raw-e.grabOffset), e.lowerBound(), e.upperBound()-dur)
		e.apply(cand, cand+dur)
	}
}

// Release ends the drag session.
func (e *Editor) Release() {
	e.mode = ModeIdle
	e.grabOffset = 0
}

func (e *Editor) apply(start, end int) {
	if start == e.start && end == e.end {
		return
	}
	e.start, e.end = start, end
	if e.cfg.OnChange != nil {
		e.cfg.OnChange(start, end)
	}
}

func snap(v int) int {
	return (v + Step/2) / Step * Step
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ErrInvalidWindow reports a window that fails the editor's numeric
// constraints. The single-entry update path validates with it before writing.
var ErrInvalidWindow = errors.New("rangeedit: invalid time window")

// ValidateWindow checks an (start, end) pair in minutes against the editor
// constraints: ordered, at least MinGap apart, and inside [minHour, maxHour].
func ValidateWindow(start, end, minHour, maxHour int) error {
	if maxHour <= minHour {
		minHour, maxHour = 0, 24
	}
	if start < minHour*60 || end > maxHour*60 {
		return fmt.Errorf("%w: outside %02d:00-%02d:00", ErrInvalidWindow, minHour, maxHour)
	}
	if end-start < MinGap {
		return fmt.Errorf("%w: shorter than %d minutes", ErrInvalidWindow, MinGap)
	}
	return nil
}
