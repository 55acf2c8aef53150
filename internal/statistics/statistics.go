// Package statistics accumulates running summaries of sampled score deltas.
package statistics

import (
	"math"
)

// Sample tracks the count, sum and sum of squares of observed values
type Sample struct {
	N     int
	Sum   float64
	SumSq float64 // Sum of squares for variance calculation
	Min   float64
	Max   float64
}

// Add incorporates one observation
func (s *Sample) Add(x float64) {
	if s.N == 0 || x < s.Min {
		s.Min = x
	}
	if s.N == 0 || x > s.Max {
		s.Max = x
	}
	s.N++
	s.Sum += x
	s.SumSq += x * x
}

// Merge folds another sample into s
func (s *Sample) Merge(o Sample) {
	if o.N == 0 {
		return
	}
	if s.N == 0 || o.Min < s.Min {
		s.Min = o.Min
	}
	if s.N == 0 || o.Max > s.Max {
		s.Max = o.Max
	}
	s.N += o.N
	s.Sum += o.Sum
	s.SumSq += o.SumSq
}

// Mean returns the arithmetic mean
func (s *Sample) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s *Sample) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.N)*mean*mean) / float64(s.N-1)
	// Rounding can push a zero variance slightly negative
	return math.Max(v, 0)
}

// StdDev returns the sample standard deviation
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Sample) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Proportion is a count of successes out of trials
type Proportion struct {
	Hits   int
	Trials int
}

// Add records one trial
func (p *Proportion) Add(hit bool) {
	p.Trials++
	if hit {
		p.Hits++
	}
}

// Merge folds another proportion into p
func (p *Proportion) Merge(o Proportion) {
	p.Hits += o.Hits
	p.Trials += o.Trials
}

// Rate returns hits divided by trials
func (p *Proportion) Rate() float64 {
	if p.Trials == 0 {
		return 0
	}
	return float64(p.Hits) / float64(p.Trials)
}
