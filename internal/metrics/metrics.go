package metrics

import (
	"fmt"
	"sort"
	"time"

	"github.com/angeloszaimis/availability-checker/internal/checker"
)

type Summary struct {
	Checked     int           `yaml:"checked"`
	Up          int           `yaml:"up"`
	Down        int           `yaml:"down"`
	Invalid     int           `yaml:"invalid"`
	Attempts    int           `yaml:"attempts"`
	StatusCodes map[int]int   `yaml:"status_codes"`
	AvgResponse time.Duration `yaml:"avg_response"`
	P50Response time.Duration `yaml:"p50_response"`
	P95Response time.Duration `yaml:"p95_response"`
}

// Summarize reduces results to a Summary. Down counts every failed target,
// invalid ones included. Status -1 is not a status code and is left out of
// the distribution.
func Summarize(results []checker.Result) Summary {
	s := Summary{
		Checked:     len(results),
		StatusCodes: make(map[int]int),
	}

	var durations []time.Duration
	for _, r := range results {
		s.Attempts += r.Attempts

		if r.StatusCode != checker.NoStatus {
			s.StatusCodes[r.StatusCode]++
		}

		if r.OK {
			s.Up++
			durations = append(durations, r.Duration)
			continue
		}

		s.Down++
		if r.Kind == checker.InvalidURLFormat {
			s.Invalid++
		}
	}

	if len(durations) > 0 {
		sort.Slice(durations, func(i, j int) bool {
			return durations[i] < durations[j]
		})

		s.AvgResponse = average(durations)
		s.P50Response = percentile(durations, 0.50)
		s.P95Response = percentile(durations, 0.95)
	}

	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d checked, %d up, %d down (%d invalid), %d attempts, avg %s, p95 %s",
		s.Checked, s.Up, s.Down, s.Invalid, s.Attempts,
		s.AvgResponse.Round(time.Millisecond), s.P95Response.Round(time.Millisecond))
}

func average(durations []time.Duration) time.Duration {
	if len(durations) == 0 {
		return 0
	}

	var sum time.Duration
	for _, d := range durations {
		sum += d
	}

	return sum / time.Duration(len(durations))
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	index := int(float64(len(sorted)) * p)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}

	return sorted[index]
}
