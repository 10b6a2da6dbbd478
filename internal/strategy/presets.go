package strategy

// Presets returns the stock comparison: full, half and one-fifth exposure
// under the default outcome model, 1000 rounds, seed 41.
func Presets() Book {
	return Book{
		Defaults: RawConfig{
			Rounds:    ptr(1000),
			Seed:      ptr(uint64(41)),
			LogEvents: ptr(true),
		},
		Strategies: []Entry{
			{Label: "100% YOLO + Stops + Cashout", RawConfig: RawConfig{BaseAllocation: ptr(1.0)}},
			{Label: "50% Alloc + Stops", RawConfig: RawConfig{BaseAllocation: ptr(0.5)}},
			{Label: "20% Alloc + Stops", RawConfig: RawConfig{BaseAllocation: ptr(0.2)}},
		},
	}
}
