package utils

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	for gen, pop := range []int{3, 9, 0} {
		s.Update(gen, pop, time.Millisecond)
	}

	if s.TotalGenerations != 2 || s.Population != 0 || s.PeakPopulation != 9 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if s.AveragePopulation != 4 {
		t.Fatalf("average %v, expected 4", s.AveragePopulation)
	}
	if s.StepTime != 3*time.Millisecond {
		t.Fatalf("step time %v", s.StepTime)
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at warn level: %q", buf.String())
	}

	logger = NewLogger(&buf, "debug")
	logger.Debug("run finished", slog.Any("stats", NewStats()))
	if !strings.Contains(buf.String(), "stats.peak_population=0") {
		t.Fatalf("stats group missing: %q", buf.String())
	}
}
