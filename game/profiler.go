package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and an execution trace when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	dir             string
	threshold       float64
	warmup          time.Duration
	cooldown        time.Duration
	captureDuration time.Duration
	started         time.Time
	lastCapture     time.Time
	capturing       bool
	capture         func(base string, d time.Duration) error
}

// NewProfiler creates a profiler writing into dir. An empty dir disables it.
func NewProfiler(dir string, threshold float64) *Profiler {
	return &Profiler{
		dir:             dir,
		threshold:       threshold,
		warmup:          3 * time.Second,
		cooldown:        10 * time.Second,
		captureDuration: 5 * time.Second,
		started:         time.Now(),
		capture:         captureProfiles,
	}
}

// Enabled reports whether a profile directory is configured
func (p *Profiler) Enabled() bool {
	return p != nil && p.dir != ""
}

// Observe checks the measured fps and starts a background capture when it is too low.
// It returns true when a capture was started.
func (p *Profiler) Observe(fps float64, particles int, now time.Time) bool {
	if !p.Enabled() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if fps >= p.threshold || p.capturing {
		return false
	}
	if now.Sub(p.started) < p.warmup {
		return false
	}
	if !p.lastCapture.IsZero() && now.Sub(p.lastCapture) < p.cooldown {
		return false
	}

	if err := os.MkdirAll(p.dir, 0755); err != nil {
		log.Printf("profiler: %v", err)
		return false
	}
	p.capturing = true
	p.lastCapture = now

	name := fmt.Sprintf("fps-drop-%s-fps%.0f-particles%d", now.Format("20060102-150405"), fps, particles)
	base := filepath.Join(p.dir, name)
	log.Printf("frame rate dropped to %.0f FPS, capturing profile and trace to %s.*", fps, base)

	go func() {
		defer func() {
			p.mu.Lock()
			p.capturing = false
			p.mu.Unlock()
		}()
		if err := p.capture(base, p.captureDuration); err != nil {
			log.Printf("profiler: %v", err)
			return
		}
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		log.Printf("saved %s.cpu.prof and %s.trace (heap %d KB, GC %d); view with: go tool pprof -http=:8080 %s.cpu.prof",
			base, base, m.HeapAlloc/1024, m.NumGC, base)
	}()
	return true
}

// Capturing reports whether a capture is in progress
func (p *Profiler) Capturing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capturing
}

// captureProfiles records base.cpu.prof and base.trace in parallel for d
func captureProfiles(base string, d time.Duration) error {
	var wg sync.WaitGroup
	var cpuErr, traceErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		cpuErr = captureCPUProfile(base+".cpu.prof", d)
	}()
	go func() {
		defer wg.Done()
		traceErr = captureTrace(base+".trace", d)
	}()
	wg.Wait()
	return errors.Join(cpuErr, traceErr)
}

// captureCPUProfile records a CPU profile to path for d
func captureCPUProfile(path string, d time.Duration) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(d)
	pprof.StopCPUProfile()
	return nil
}

// captureTrace records an execution trace to path for d
func captureTrace(path string, d time.Duration) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(d)
	trace.Stop()
	return nil
}
