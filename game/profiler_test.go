package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestProfilerDisabledWithoutDir(t *testing.T) {
	p := NewProfiler("", 45)
	if p.Enabled() {
		t.Fatal("profiler without dir reports enabled")
	}
	if p.Observe(1, 60, time.Now().Add(time.Hour)) {
		t.Error("disabled profiler started a capture")
	}
}

func TestProfilerObserve(t *testing.T) {
	p := NewProfiler(t.TempDir(), 45)
	captured := make(chan string, 4)
	release := make(chan struct{})
	p.capture = func(base string, d time.Duration) error {
		captured <- base
		<-release
		return nil
	}
	start := p.started

	if p.Observe(20, 60, start.Add(time.Second)) {
		t.Error("captured during warm-up")
	}
	if p.Observe(59, 60, start.Add(time.Minute)) {
		t.Error("captured while above threshold")
	}
	if !p.Observe(20, 60, start.Add(time.Minute)) {
		t.Fatal("no capture on frame drop")
	}

	select {
	case <-captured:
	case <-time.After(time.Second):
		t.Fatal("capture function never ran")
	}
	if !p.Capturing() {
		t.Error("Capturing() = false during capture")
	}
	if p.Observe(20, 60, start.Add(time.Minute+time.Second)) {
		t.Error("second capture started while one is running")
	}

	close(release)
	waitFor(t, time.Second, func() bool { return !p.Capturing() })

	if p.Observe(20, 60, start.Add(time.Minute+2*time.Second)) {
		t.Error("capture started during cooldown")
	}
	if !p.Observe(20, 60, start.Add(2*time.Minute)) {
		t.Error("no capture after cooldown")
	}
}

func TestCaptureProfilesWritesProfileAndTrace(t *testing.T) {
	base := filepath.Join(t.TempDir(), "drop")
	if err := captureProfiles(base, 20*time.Millisecond); err != nil {
		t.Fatalf("captureProfiles() = %v", err)
	}
	for _, path := range []string{base + ".cpu.prof", base + ".trace"} {
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing %s: %v", path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}

func TestCaptureProfilesReportsCreateError(t *testing.T) {
	base := filepath.Join(t.TempDir(), "missing", "drop")
	if err := captureProfiles(base, time.Millisecond); err == nil {
		t.Error("captureProfiles into a missing directory succeeded")
	}
}
