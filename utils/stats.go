package utils

import (
	"log/slog"
	"time"
)

// Stats tracks population over a run
type Stats struct {
	TotalGenerations  int
	Population        int
	PeakPopulation    int
	AveragePopulation float64
	StartTime         time.Time
	StepTime          time.Duration
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the population after a generation and how long it took
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)
	s.StepTime += duration

	// running mean over every recorded generation, including generation 0
	s.AveragePopulation += (float64(population) - s.AveragePopulation) / float64(generation+1)
}

// LogValue implements slog.LogValuer
func (s *Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generations", s.TotalGenerations),
		slog.Int("population", s.Population),
		slog.Int("peak_population", s.PeakPopulation),
		slog.Float64("average_population", s.AveragePopulation),
		slog.Duration("step_time", s.StepTime),
		slog.Duration("runtime", time.Since(s.StartTime)),
	)
}
