package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
)

// Subsystem is an effect advanced and drawn once per frame
type Subsystem interface {
	Tick()
	Render(Surface)
}

// LoopState is the lifecycle of one subsystem loop
type LoopState int

const (
	LoopIdle LoopState = iota
	LoopRunning
	LoopHalted
	LoopStopped
)

func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopRunning:
		return "running"
	case LoopHalted:
		return "halted"
	case LoopStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// loop is one subsystem with its own surface and state
type loop struct {
	name    string
	sub     Subsystem
	surface Surface
	state   LoopState
}

// AnimationScheduler drives every registered subsystem's tick and render once per frame.
// Loops are independent: a panic halts only the loop that raised it.
type AnimationScheduler struct {
	mu    sync.Mutex
	loops []*loop
}

// NewAnimationScheduler creates an empty scheduler
func NewAnimationScheduler() *AnimationScheduler {
	return &AnimationScheduler{}
}

// Register adds a subsystem that renders into surface
func (s *AnimationScheduler) Register(name string, sub Subsystem, surface Surface) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.loops {
		if l.name == name {
			return fmt.Errorf("subsystem %q already registered", name)
		}
	}
	s.loops = append(s.loops, &loop{name: name, sub: sub, surface: surface})
	return nil
}

// Start moves every idle loop to running
func (s *AnimationScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.loops {
		if l.state == LoopIdle {
			l.state = LoopRunning
		}
	}
}

// Stop cancels every loop and closes subsystems that hold resources
func (s *AnimationScheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, l := range s.loops {
		if l.state == LoopStopped {
			continue
		}
		l.state = LoopStopped
		if c, ok := l.sub.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", l.name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// State returns the state of the named loop
func (s *AnimationScheduler) State(name string) (LoopState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.loops {
		if l.name == name {
			return l.state, true
		}
	}
	return LoopIdle, false
}

// Names returns registered loop names in registration order
func (s *AnimationScheduler) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.loops))
	for i, l := range s.loops {
		names[i] = l.name
	}
	return names
}

// Update ticks every running loop
func (s *AnimationScheduler) Update() {
	for _, l := range s.running() {
		s.guard(l, "tick", l.sub.Tick)
	}
}

// Draw renders every running loop into its surface
func (s *AnimationScheduler) Draw() {
	for _, l := range s.running() {
		s.guard(l, "render", func() { l.sub.Render(l.surface) })
	}
}

func (s *AnimationScheduler) running() []*loop {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*loop, 0, len(s.loops))
	for _, l := range s.loops {
		if l.state == LoopRunning {
			out = append(out, l)
		}
	}
	return out
}

// guard runs fn and halts the loop if it panics
func (s *AnimationScheduler) guard(l *loop, phase string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("subsystem %s halted during %s: %v", l.name, phase, r)
			s.mu.Lock()
			if l.state == LoopRunning {
				l.state = LoopHalted
			}
			s.mu.Unlock()
		}
	}()
	fn()
}
