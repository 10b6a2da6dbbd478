package drip

// Mode is the allocation state of a run. A run starts in ModeNormal, moves
// to ModeCooldown when a round ends in a tenner, and returns to ModeNormal
// at the start of the following round, whatever that round's outcome.

type Mode int

const (
	ModeNormal Mode = iota
	ModeCooldown
)

func (m Mode) String() string {
	switch m {
	case ModeCooldown:
		return "cooldown"
	default:
		return "normal"
	}
}

// consume returns the allocation fraction for the round about to start and
// the mode that follows once it has been read. Cooldown never outlives the
// round that reads it.
func (m Mode) consume(cfg Config) (fraction float64, next Mode) {
	if m == ModeCooldown {
		return cfg.CooldownAllocation, ModeNormal
	}
	return cfg.BaseAllocation, ModeNormal
}
