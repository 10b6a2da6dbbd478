package drip

import (
	"math"
	"sort"
)

// Stats summarizes Monte Carlo samples.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P10    float64 `json:"p10"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	// Optional: raw samples if caller needs histograms/exports
	Samples []float64 `json:"-"`
}

// MonteCarloResult aggregates many independent runs of one configuration.
type MonteCarloResult struct {
	Trials       int     `json:"trials"`
	FinalBalance Stats   `json:"final_balance"`
	Tenners      Stats   `json:"tenners"`
	BelowStart   float64 `json:"below_start"` // share of trials finishing under the starting balance
}

// calcStats computes mean/variance/percentiles.
func calcStats(xs []float64) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += v
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := v - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return cp[0]
		}
		if p >= 1 {
			return cp[n-1]
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return cp[i]
		}
		return cp[i]*(1-f) + cp[i+1]*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		Min:     cp[0],
		Max:     cp[n-1],
		P10:     percentile(0.10),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		Samples: xs,
	}
}

// RunMonteCarlo repeats cfg over trials independent sources. Trial k draws
// from NewStreamRNG(seed, k), so the whole batch is reproducible.
// Event logging is switched off; only the counts are kept.
func RunMonteCarlo(cfg Config, trials int, seed uint64) MonteCarloResult {
	if trials <= 0 {
		return MonteCarloResult{}
	}
	cfg.LogEvents = false

	finals := make([]float64, trials)
	tenners := make([]float64, trials)
	below := 0
	for k := 0; k < trials; k++ {
		res := Run(cfg, NewStreamRNG(seed, uint64(k)))
		final := res.Balances[len(res.Balances)-1]
		finals[k] = final
		tenners[k] = float64(res.Tenners)
		if final < cfg.StartingBalance {
			below++
		}
	}
	return MonteCarloResult{
		Trials:       trials,
		FinalBalance: calcStats(finals),
		Tenners:      calcStats(tenners),
		BelowStart:   float64(below) / float64(trials),
	}
}
