package drip

// Summary condenses one trajectory.
type Summary struct {
	Start       float64 `json:"start"`
	Final       float64 `json:"final"`
	Peak        float64 `json:"peak"`
	Trough      float64 `json:"trough"`
	MaxDrawdown float64 `json:"max_drawdown"` // largest peak-to-trough drop as a fraction of the peak
	Return      float64 `json:"return"`       // (Final-Start)/Start
	Tenners     int     `json:"tenners"`
}

// Summarize walks the trajectory once.
func Summarize(r Result) Summary {
	if len(r.Balances) == 0 {
		return Summary{Tenners: r.Tenners}
	}
	start := r.Balances[0]
	sum := Summary{
		Start:   start,
		Final:   r.Balances[len(r.Balances)-1],
		Peak:    start,
		Trough:  start,
		Tenners: r.Tenners,
	}
	runningPeak := start
	for _, b := range r.Balances[1:] {
		if b > sum.Peak {
			sum.Peak = b
		}
		if b < sum.Trough {
			sum.Trough = b
		}
		if b > runningPeak {
			runningPeak = b
		}
		if runningPeak > 0 {
			if dd := (runningPeak - b) / runningPeak; dd > sum.MaxDrawdown {
				sum.MaxDrawdown = dd
			}
		}
	}
	if start != 0 {
		sum.Return = (sum.Final - start) / start
	}
	return sum
}
