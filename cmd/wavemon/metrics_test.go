package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCPUSampleDelta(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stat",
		"cpu  100 0 100 700 100 0 0 0 0 0\ncpu0 100 0 100 700 100 0 0 0 0 0\n")

	s := newSystemSampler()
	s.statPath = path

	// First sample has no baseline
	got, err := s.CPU()
	if err != nil {
		t.Fatalf("CPU() error: %v", err)
	}
	if got != 0 {
		t.Errorf("first CPU() = %f, want 0", got)
	}

	// Busy grows by 100 of a 200 jiffy delta
	writeFile(t, dir, "stat",
		"cpu  150 0 150 750 150 0 0 0 0 0\ncpu0 150 0 150 750 150 0 0 0 0 0\n")
	got, err = s.CPU()
	if err != nil {
		t.Fatalf("CPU() error: %v", err)
	}
	if got != 0.5 {
		t.Errorf("CPU() = %f, want 0.5", got)
	}
}

func TestCPUMissingAggregateLine(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stat", "cpu0 1 2 3 4 5 6 7 8\n")

	s := newSystemSampler()
	s.statPath = path
	if _, err := s.CPU(); err == nil {
		t.Error("expected error for stat without aggregate cpu line")
	}
}

func TestMemorySample(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "meminfo",
		"MemTotal:       1000 kB\nMemFree:         100 kB\nMemAvailable:    250 kB\n")

	s := newSystemSampler()
	s.memInfoPath = path

	got, err := s.Memory()
	if err != nil {
		t.Fatalf("Memory() error: %v", err)
	}
	if got != 0.75 {
		t.Errorf("Memory() = %f, want 0.75", got)
	}
}

func TestHistoryRing(t *testing.T) {
	h := newHistory(3)
	for i := 1; i <= 5; i++ {
		h.push(float64(i))
	}

	got := h.values()
	want := []float64{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("values() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("values()[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestHistoryPeakFloor(t *testing.T) {
	h := newHistory(4)
	if h.peak() != 0.001 {
		t.Errorf("empty peak = %f, want 0.001 floor", h.peak())
	}

	h.push(0.2)
	h.push(0.7)
	h.push(0.4)
	if h.peak() != 0.7 {
		t.Errorf("peak = %f, want 0.7", h.peak())
	}
}
