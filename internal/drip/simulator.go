package drip

// MinLossFraction is the smallest share of the stake a losing round gives up.
// Losses are drawn from [MinLossFraction, Config.LossCap).
const MinLossFraction = 0.01

// OutcomeKind classifies how a round resolved.
type OutcomeKind string

const (
	OutcomeLoss    OutcomeKind = "loss"
	OutcomeMissile OutcomeKind = "missile"
	OutcomeTenner  OutcomeKind = "tenner"
)

// EventRecord is logged for every tenner when Config.LogEvents is set.
type EventRecord struct {
	Round       int     `json:"round"`
	PreCashout  float64 `json:"pre_cashout"`
	PostCashout float64 `json:"post_cashout"`
}

// RoundOutcome reports one step's result.
type RoundOutcome struct {
	Round              int
	Mode               Mode // mode the round was played in
	AllocationFraction float64
	Allocation         float64
	Kind               OutcomeKind
	Gain               float64 // what the allocation returned
	Balance            float64 // balance after cash-out
}

// Result is a finished run.
type Result struct {
	Balances []float64     `json:"balances"` // len == Rounds+1, Balances[0] is the starting balance
	Events   []EventRecord `json:"events"`
	Tenners  int           `json:"tenners"` // counted whether or not events are logged
}

// Simulator owns the state of a single run.
// It is not safe for concurrent use; give every run its own Simulator and
// RandomSource.
type Simulator struct {
	cfg      Config
	rng      RandomSource
	mode     Mode
	balances []float64
	events   []EventRecord
	tenners  int
}

// NewSimulator starts a run at cfg.StartingBalance in ModeNormal.
// If rng is nil, NewSource(cfg) is used.
func NewSimulator(cfg Config, rng RandomSource) *Simulator {
	if rng == nil {
		rng = NewSource(cfg)
	}
	capacity := 1
	if cfg.Rounds > 0 {
		capacity += cfg.Rounds
	}
	balances := make([]float64, 1, capacity)
	balances[0] = cfg.StartingBalance
	return &Simulator{cfg: cfg, rng: rng, balances: balances, events: []EventRecord{}}
}

// Mode returns the mode the next round will be played in.
func (s *Simulator) Mode() Mode { return s.mode }

// Balance returns the latest balance.
func (s *Simulator) Balance() float64 { return s.balances[len(s.balances)-1] }

// Rounds returns how many rounds have been played.
func (s *Simulator) Rounds() int { return len(s.balances) - 1 }

// Step plays one round and appends its balance.
// The mode is consumed before the outcome is drawn, so a tenner in this
// round can only affect the next one.
func (s *Simulator) Step() RoundOutcome {
	round := s.Rounds()
	current := s.Balance()

	played := s.mode
	fraction, next := s.mode.consume(s.cfg)
	s.mode = next

	allocation := fraction * current

	kind := OutcomeLoss
	var gain float64
	if Draw(s.cfg.MissileProbability, s.rng) {
		if Draw(s.cfg.TennerProbability, s.rng) {
			gain = allocation * s.cfg.TennerGain
			kind = OutcomeTenner
		} else {
			gain = allocation * s.rng.Uniform(s.cfg.GainRange.Min, s.cfg.GainRange.Max)
			kind = OutcomeMissile
		}
	} else {
		loss := allocation * s.rng.Uniform(MinLossFraction, s.cfg.LossCap)
		gain = allocation - loss
	}

	balance := current - allocation + gain

	if kind == OutcomeTenner {
		cashout := balance * s.cfg.Cashout
		s.tenners++
		if s.cfg.LogEvents {
			s.events = append(s.events, EventRecord{Round: round, PreCashout: balance, PostCashout: cashout})
		}
		balance = cashout
		s.mode = ModeCooldown
	}

	s.balances = append(s.balances, balance)

	return RoundOutcome{
		Round:              round,
		Mode:               played,
		AllocationFraction: fraction,
		Allocation:         allocation,
		Kind:               kind,
		Gain:               gain,
		Balance:            balance,
	}
}

// Result returns copies of the trajectory and event log so far.
func (s *Simulator) Result() Result {
	return Result{
		Balances: append([]float64(nil), s.balances...),
		Events:   append([]EventRecord{}, s.events...),
		Tenners:  s.tenners,
	}
}

// Run plays cfg.Rounds rounds and returns the trajectory and tenner events.
// A nil rng resolves through NewSource(cfg). No configuration is rejected
// here; see strategy.Validate for the checks callers should apply first.
func Run(cfg Config, rng RandomSource) Result {
	s := NewSimulator(cfg, rng)
	for i := 0; i < cfg.Rounds; i++ {
		s.Step()
	}
	return s.Result()
}
