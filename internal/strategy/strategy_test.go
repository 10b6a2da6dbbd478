package strategy

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xtding233/riskdrip/internal/drip"
)

const sampleBook = `
defaults:
  rounds: 200
  seed: 7
  log_events: true
strategies:
  - label: aggressive
    base_allocation: 1.0
  - label: careful
    base_allocation: 0.25
    cooldown_allocation: 0.05
    gain_range: [1.2, 3.0]
`

func writeBook(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseBook(t *testing.T) {
	b, err := ParseBook([]byte(sampleBook))
	require.NoError(t, err)
	require.Len(t, b.Strategies, 2)
	assert.Equal(t, "aggressive", b.Strategies[0].Label)
	assert.Equal(t, 200, *b.Defaults.Rounds)
	assert.Equal(t, uint64(7), *b.Defaults.Seed)
	assert.Equal(t, []float64{1.2, 3.0}, b.Strategies[1].GainRange)
}

func TestParseBookRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"no strategies", "defaults:\n  rounds: 3\n", ErrNoStrategies},
		{"empty label", "strategies:\n  - base_allocation: 0.5\n", ErrEmptyLabel},
		{"duplicate label", "strategies:\n  - label: a\n  - label: a\n", ErrDuplicateLabel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBook([]byte(tt.body))
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ParseBook([]byte("strategies:\n  - label: a\n    allocation: 0.5\n"))
	require.Error(t, err, "unknown keys are rejected")
}

func TestMergePrecedence(t *testing.T) {
	b, err := ParseBook([]byte(sampleBook))
	require.NoError(t, err)

	resolved, err := b.Resolve(RawConfig{Rounds: ptr(50)})
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	careful := resolved[1].Config
	assert.Equal(t, 50, careful.Rounds, "overrides beat book defaults")
	assert.Equal(t, 0.25, careful.BaseAllocation, "entry beats defaults")
	assert.Equal(t, 0.05, careful.CooldownAllocation)
	assert.Equal(t, drip.GainRange{Min: 1.2, Max: 3.0}, careful.GainRange)
	assert.Equal(t, 800.0, careful.StartingBalance, "unset fields keep drip defaults")
	require.NotNil(t, careful.Seed)
	assert.Equal(t, uint64(7), *careful.Seed)
	assert.True(t, careful.LogEvents)

	assert.Equal(t, drip.GainRange{Min: 1.0, Max: 2.5}, resolved[0].Config.GainRange)
}

func TestMergeBadGainRange(t *testing.T) {
	_, err := Merge(RawConfig{GainRange: []float64{1, 2, 3}})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(drip.DefaultConfig()))

	bad := drip.DefaultConfig()
	bad.StartingBalance = 0
	bad.BaseAllocation = 1.5
	bad.MissileProbability = -0.1
	bad.GainRange = drip.GainRange{Min: 3, Max: 2}
	bad.TennerGain = 0.5
	bad.LossCap = 0.005
	bad.Cashout = 0
	bad.Rounds = -1

	err := Validate(bad)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 8)
	assert.Contains(t, err.Error(), "base_allocation must be in (0,1]")
	assert.Contains(t, err.Error(), "loss_cap must be in [0.01,1]")
}

func TestValidateNonFinite(t *testing.T) {
	cfg := drip.DefaultConfig()
	cfg.Cashout = zeroDiv()
	var verr *ValidationError
	require.ErrorAs(t, Validate(cfg), &verr)
	assert.Equal(t, []string{"cashout must be finite"}, verr.Problems)
}

func zeroDiv() float64 {
	zero := 0.0
	return zero / zero
}

func TestResolveNamesStrategy(t *testing.T) {
	b := Book{Strategies: []Entry{{Label: "broken", RawConfig: RawConfig{Cashout: ptr(2.0)}}}}
	_, err := b.Resolve(RawConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `strategy "broken"`)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestPresets(t *testing.T) {
	resolved, err := Presets().Resolve(RawConfig{})
	require.NoError(t, err)
	require.Len(t, resolved, 3)

	wantLabels := []string{"100% YOLO + Stops + Cashout", "50% Alloc + Stops", "20% Alloc + Stops"}
	wantAlloc := []float64{1.0, 0.5, 0.2}
	for i, r := range resolved {
		assert.Equal(t, wantLabels[i], r.Label)
		assert.Equal(t, wantAlloc[i], r.Config.BaseAllocation)
		assert.Equal(t, 1000, r.Config.Rounds)
		assert.Equal(t, uint64(41), *r.Config.Seed)
		assert.True(t, r.Config.LogEvents)
	}
}

func TestMarshalRoundTripsPresets(t *testing.T) {
	data, err := MarshalBook(Presets())
	require.NoError(t, err)
	b, err := ParseBook(data)
	require.NoError(t, err)
	assert.Equal(t, Presets(), b)
}

func TestFromConfig(t *testing.T) {
	cfg := drip.DefaultConfig().WithSeed(3)
	got, err := Merge(FromConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoaderCaches(t *testing.T) {
	path := writeBook(t, sampleBook)
	l := NewLoader()

	b1, err := l.Load(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("strategies:\n  - label: only\n"), 0o644))
	b2, err := l.Load(path)
	require.NoError(t, err)
	assert.Len(t, b2.Strategies, len(b1.Strategies), "cached copy served")

	l.Invalidate()
	b3, err := l.Load(path)
	require.NoError(t, err)
	assert.Len(t, b3.Strategies, 1)
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompare(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := NewDriver(zap.New(core))

	runs, err := d.Compare(Presets(), RawConfig{Rounds: ptr(300)})
	require.NoError(t, err)
	require.Len(t, runs, 3)

	for _, r := range runs {
		assert.Len(t, r.Result.Balances, 301)
		assert.Equal(t, drip.Summarize(r.Result), r.Summary)
	}
	assert.Equal(t, 3, logs.FilterMessage("strategy simulated").Len())

	tenners := 0
	for _, r := range runs {
		tenners += len(r.Result.Events)
	}
	assert.Equal(t, tenners, logs.FilterMessage("tenner hit").Len())
}

func TestCompareSharesSeed(t *testing.T) {
	// identical entries under one seed produce identical trajectories
	b := Book{
		Defaults:   RawConfig{Seed: ptr(uint64(11)), Rounds: ptr(100)},
		Strategies: []Entry{{Label: "a"}, {Label: "b"}},
	}
	runs, err := NewDriver(nil).Compare(b, RawConfig{})
	require.NoError(t, err)
	assert.Equal(t, runs[0].Result, runs[1].Result)

	again, err := NewDriver(nil).Compare(b, RawConfig{})
	require.NoError(t, err)
	assert.Equal(t, runs, again)
}

func TestCompareInvalidRunsNothing(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	b := Book{Strategies: []Entry{
		{Label: "ok"},
		{Label: "bad", RawConfig: RawConfig{BaseAllocation: ptr(0.0)}},
	}}
	_, err := NewDriver(zap.New(core)).Compare(b, RawConfig{})
	require.Error(t, err)
	assert.Zero(t, logs.Len())
}

func TestDriverMonteCarlo(t *testing.T) {
	b := Book{
		Defaults:   RawConfig{Rounds: ptr(50)},
		Strategies: []Entry{{Label: "seeded", RawConfig: RawConfig{Seed: ptr(uint64(5))}}, {Label: "unseeded"}},
	}
	out, err := NewDriver(nil).MonteCarlo(b, RawConfig{}, 20)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, uint64(5), out[0].Seed)
	assert.Equal(t, 20, out[0].Stats.Trials)
	assert.Equal(t, drip.RunMonteCarlo(out[1].Config, 20, out[1].Seed), out[1].Stats)
}

func TestBookWatcher(t *testing.T) {
	path := writeBook(t, sampleBook)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := NewBookWatcher(path, 10*time.Millisecond).Changes(ctx)

	select {
	case <-changes:
		t.Fatal("untouched book reported as changed")
	case <-time.After(50 * time.Millisecond):
	}

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))
	select {
	case _, ok := <-changes:
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not report the change")
	}

	cancel()
	select {
	case _, ok := <-changes:
		assert.False(t, ok, "channel closes once the context is done")
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestBookWatcherMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "later.yaml")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := NewBookWatcher(path, 10*time.Millisecond).Changes(ctx)

	require.NoError(t, os.WriteFile(path, []byte(sampleBook), 0o644))
	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("a book created after the watcher started was not reported")
	}
}
