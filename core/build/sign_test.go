package build

import (
	"testing"

	"github.com/regnetkit/regnet/model"
	"github.com/stretchr/testify/assert"
)

func TestResolveDirection(t *testing.T) {
	t.Run("Stimulation only", func(t *testing.T) {
		sign := ResolveDirection(DirectionFlags{Stimulation: true}, model.Activation)
		assert.Equal(t, model.Activation, sign)
	})

	t.Run("Inhibition only", func(t *testing.T) {
		sign := ResolveDirection(DirectionFlags{Inhibition: true}, model.Activation)
		assert.Equal(t, model.Repression, sign)
	})

	t.Run("Both flags resolved by consensus stimulation", func(t *testing.T) {
		sign := ResolveDirection(DirectionFlags{Stimulation: true, Inhibition: true, ConsensusStimulation: true}, model.Activation)
		assert.Equal(t, model.Activation, sign)

		sign = ResolveDirection(DirectionFlags{Stimulation: true, Inhibition: true}, model.Activation)
		assert.Equal(t, model.Repression, sign)
	})

	t.Run("Neither flag returns the default sign", func(t *testing.T) {
		sign := ResolveDirection(DirectionFlags{}, model.Activation)
		assert.Equal(t, model.Activation, sign)

		sign = ResolveDirection(DirectionFlags{}, model.Repression)
		assert.Equal(t, model.Repression, sign, "Expected the caller-supplied default to win for records without evidence")
	})

	t.Run("Consensus stimulation alone does not force a sign", func(t *testing.T) {
		sign := ResolveDirection(DirectionFlags{ConsensusStimulation: true}, model.Repression)
		assert.Equal(t, model.Repression, sign, "Consensus flags only matter when stimulation and inhibition conflict")
	})
}
