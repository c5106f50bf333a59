package strategy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"lorcana/game"
)

func TestRegistryNew(t *testing.T) {
	t.Run("builds registered strategies", func(t *testing.T) {
		r := NewDefaultRegistry()
		for _, name := range []string{"default", "aggressive", "ramp"} {
			s, err := r.New(name, nil)
			require.NoError(t, err)
			require.Equal(t, name, s.Name(), "Should build the requested strategy")
		}
	})

	t.Run("unknown name lists the registered names", func(t *testing.T) {
		r := NewDefaultRegistry()

		s, err := r.New("turtle", nil)

		require.Nil(t, s, "Should not substitute a default strategy")
		var cfgErr *game.ConfigurationError
		require.True(t, errors.As(err, &cfgErr), "Should be a configuration error")
		require.Equal(t, []string{"aggressive", "default", "ramp"}, cfgErr.Options)
		require.Contains(t, err.Error(), "aggressive, default, ramp")
	})

	t.Run("overrides weights from yaml", func(t *testing.T) {
		r := NewDefaultRegistry()

		s, err := r.New("default", []byte("loreWeight: 42\nlateGameThreshold: 9\n"))

		require.NoError(t, err)
		require.Equal(t, 42.0, s.ScoringWeights().LoreWeight)
		require.Equal(t, 9, s.ScoringWeights().LateGameThreshold)
		require.Equal(t, DefaultWeights().InkGainWeight, s.ScoringWeights().InkGainWeight,
			"Keys absent from the override should keep their defaults")
	})

	t.Run("rejects unknown weight keys", func(t *testing.T) {
		r := NewDefaultRegistry()

		_, err := r.New("default", []byte("loreWieght: 1\n"))

		var cfgErr *game.ConfigurationError
		require.True(t, errors.As(err, &cfgErr), "Typos in weight names should be configuration errors")
	})

	t.Run("rejects inverted thresholds", func(t *testing.T) {
		r := NewDefaultRegistry()

		_, err := r.New("default", []byte("earlyGameThreshold: 8\nlateGameThreshold: 2\n"))

		require.Error(t, err)
	})
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("custom", DefaultWeights(), NewDefault))
	require.Error(t, r.Register("custom", DefaultWeights(), NewDefault), "Duplicate names should be rejected")
	require.Error(t, r.Register("nil", DefaultWeights(), nil), "A factory is required")
	require.Panics(t, func() { r.MustRegister("custom", DefaultWeights(), NewDefault) })
	require.Equal(t, []string{"custom"}, r.Names())
}
