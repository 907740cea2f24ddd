package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// systemSampler reads utilization from the Linux proc filesystem.
// CPU usage is the busy share of the time delta between two reads of the
// aggregate /proc/stat line, so the first sample is always zero.
type systemSampler struct {
	statPath    string
	memInfoPath string

	prevBusy  uint64
	prevTotal uint64
	primed    bool
}

func newSystemSampler() *systemSampler {
	return &systemSampler{
		statPath:    "/proc/stat",
		memInfoPath: "/proc/meminfo",
	}
}

// CPU returns aggregate CPU utilization in [0,1]
func (s *systemSampler) CPU() (float64, error) {
	busy, total, err := s.readCPUTimes()
	if err != nil {
		return 0, err
	}

	prevBusy, prevTotal, primed := s.prevBusy, s.prevTotal, s.primed
	s.prevBusy, s.prevTotal, s.primed = busy, total, true

	if !primed || total <= prevTotal {
		return 0, nil
	}
	return float64(busy-prevBusy) / float64(total-prevTotal), nil
}

// readCPUTimes parses the aggregate "cpu" line of /proc/stat into busy and
// total jiffies. Busy excludes idle and iowait.
func (s *systemSampler) readCPUTimes() (busy, total uint64, err error) {
	f, err := os.Open(s.statPath)
	if err != nil {
		return 0, 0, fmt.Errorf("open %s: %w", s.statPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			return 0, 0, fmt.Errorf("malformed cpu line: %q", line)
		}

		for i, field := range fields[1:] {
			v, perr := strconv.ParseUint(field, 10, 64)
			if perr != nil {
				return 0, 0, fmt.Errorf("parse cpu field %q: %w", field, perr)
			}
			total += v
			// Fields: user nice system idle iowait irq softirq steal ...
			if i != 3 && i != 4 {
				busy += v
			}
		}
		return busy, total, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, fmt.Errorf("no aggregate cpu line in %s", s.statPath)
}

// Memory returns used memory fraction in [0,1], based on MemAvailable
func (s *systemSampler) Memory() (float64, error) {
	f, err := os.Open(s.memInfoPath)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", s.memInfoPath, err)
	}
	defer f.Close()

	var memTotal, memAvailable uint64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			memTotal, _ = strconv.ParseUint(fields[1], 10, 64)
		case "MemAvailable:":
			memAvailable, _ = strconv.ParseUint(fields[1], 10, 64)
		}
		if memTotal > 0 && memAvailable > 0 {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	if memTotal == 0 {
		return 0, fmt.Errorf("no MemTotal in %s", s.memInfoPath)
	}
	return 1.0 - float64(memAvailable)/float64(memTotal), nil
}

// history is a fixed-capacity sample ring: appending past capacity drops
// the oldest sample
type history struct {
	samples []float64
	cap     int
}

func newHistory(capacity int) *history {
	return &history{
		samples: make([]float64, 0, capacity),
		cap:     capacity,
	}
}

func (h *history) push(v float64) {
	if len(h.samples) >= h.cap {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:len(h.samples)-1]
	}
	h.samples = append(h.samples, v)
}

// values returns the stored samples, oldest first. The slice is only valid
// until the next push.
func (h *history) values() []float64 {
	return h.samples
}

// peak returns the largest stored sample, floored to avoid a zero
// normalization maximum when autoscaling a flat series
func (h *history) peak() float64 {
	max := 0.001
	for _, v := range h.samples {
		if v > max {
			max = v
		}
	}
	return max
}
