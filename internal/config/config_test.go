package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	s, err := LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "info", s.LogLevel)
	assert.Nil(t, s.Rounds)
	assert.Equal(t, 500, s.Trials)
	assert.Nil(t, s.Seed)
	assert.Empty(t, s.StrategyFile)
}

func TestLoadFromOverrides(t *testing.T) {
	s, err := LoadFrom(map[string]string{
		"RISKDRIP_LOG_LEVEL":  "debug",
		"RISKDRIP_ROUNDS":     "250",
		"RISKDRIP_SEED":       "41",
		"RISKDRIP_STRATEGIES": "/tmp/book.yaml",
		"RISKDRIP_TRIALS":     "20",
	})
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	require.NotNil(t, s.Rounds)
	assert.Equal(t, 250, *s.Rounds)
	require.NotNil(t, s.Seed)
	assert.Equal(t, uint64(41), *s.Seed)
	assert.Equal(t, "/tmp/book.yaml", s.StrategyFile)
	assert.Equal(t, 20, s.Trials)
}

func TestLoadFromRejects(t *testing.T) {
	tests := map[string]map[string]string{
		"bad seed":        {"RISKDRIP_SEED": "forty-one"},
		"negative rounds": {"RISKDRIP_ROUNDS": "-3"},
		"negative trials": {"RISKDRIP_TRIALS": "-1"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFrom(vars)
			require.Error(t, err)
		})
	}
}

func TestLoadUsesProcessEnv(t *testing.T) {
	t.Setenv("RISKDRIP_ROUNDS", "12")
	s, err := Load()
	require.NoError(t, err)
	require.NotNil(t, s.Rounds)
	assert.Equal(t, 12, *s.Rounds)
}
