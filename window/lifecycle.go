// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/multiview/internal/logging"
)

// State is the readiness of the secondary window.
type State int

const (
	// Requesting is the initial state: a creation request is issued (or about
	// to be) and the surface is not known to exist yet.
	Requesting State = iota

	// BackendReady means the backend reported the window live and its
	// surface can be queried.
	BackendReady

	// Active means the window's viewport is assembled and it renders every
	// frame. Terminal.
	Active
)

func (s State) String() string {
	switch s {
	case Requesting:
		return "Requesting"
	case BackendReady:
		return "BackendReady"
	case Active:
		return "Active"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Observation is what one tick learned about the secondary window.
type Observation struct {
	// Live is set when the requested window appears in the backend's
	// live-window set.
	Live bool

	// Assembled is set once the viewport for the window has been built.
	Assembled bool
}

// Transition returns the state that follows s after a tick that observed obs.
// It never moves backward and never skips BackendReady.
func Transition(s State, obs Observation) State {
	switch s {
	case Requesting:
		if obs.Live {
			return BackendReady
		}
	case BackendReady:
		if obs.Assembled {
			return Active
		}
	}
	return s
}

// ErrBackendTimeout is matched by the error returned when the backend does
// not report a requested window within the configured number of ticks.
var ErrBackendTimeout = errors.New("window: backend readiness timeout")

// TimeoutError reports how long the lifecycle waited for a window.
type TimeoutError struct {
	Window ID
	Ticks  int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("window: %s not live after %d ticks", e.Window, e.Ticks)
}

// Is reports whether target is ErrBackendTimeout.
func (e *TimeoutError) Is(target error) bool { return target == ErrBackendTimeout }

// Lifecycle sequences a single secondary window from request to Active.
//
// Lifecycle is not safe for concurrent use; it belongs to the scheduler.
type Lifecycle struct {
	state     State
	requested bool
	window    ID
	waited    int
	maxWait   int
}

// NewLifecycle returns a lifecycle in the Requesting state.
// maxWaitTicks bounds the number of ticks the backend may take after the
// tick that issued the request; zero waits forever.
func NewLifecycle(maxWaitTicks int) *Lifecycle {
	if maxWaitTicks < 0 {
		maxWaitTicks = 0
	}
	return &Lifecycle{state: Requesting, maxWait: maxWaitTicks}
}

// State returns the current state.
func (l *Lifecycle) State() State { return l.state }

// Requested reports whether the creation request was issued.
func (l *Lifecycle) Requested() bool { return l.requested }

// Window returns the id of the requested window.
func (l *Lifecycle) Window() (ID, bool) { return l.window, l.requested }

// Waited returns the number of ticks observed in Requesting since the
// request, the request tick included.
func (l *Lifecycle) Waited() int { return l.waited }

// MarkRequested records that the creation request for id was sent.
// Only the first call has an effect; a second secondary window is not
// supported.
func (l *Lifecycle) MarkRequested(id ID) bool {
	if l.requested {
		return false
	}
	l.requested = true
	l.window = id
	return true
}

// Observe runs the Requesting step for one tick against the backend's live
// windows. Outside Requesting, or before the request, it changes nothing.
func (l *Lifecycle) Observe(live []ID) (State, error) {
	if l.state != Requesting || !l.requested {
		return l.state, nil
	}

	obs := Observation{Live: slices.Contains(live, l.window)}
	next := Transition(l.state, obs)
	if next == l.state {
		l.waited++
		// The request tick cannot observe the window: backends are pumped
		// before the request is issued.
		if l.maxWait > 0 && l.waited > l.maxWait {
			return l.state, &TimeoutError{Window: l.window, Ticks: l.waited}
		}
		return l.state, nil
	}
	l.set(next)
	return l.state, nil
}

// Complete records that setup ran for the window and moves BackendReady to
// Active. It is a no-op in any other state.
func (l *Lifecycle) Complete() State {
	if l.state == BackendReady {
		l.set(Transition(l.state, Observation{Live: true, Assembled: true}))
	}
	return l.state
}

func (l *Lifecycle) set(next State) {
	if next == l.state {
		return
	}
	logging.Logger().Info("window: lifecycle transition",
		"window", l.window.String(), "from", l.state.String(), "to", next.String())
	l.state = next
}
