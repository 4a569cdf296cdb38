package build

import (
	"testing"

	"github.com/regnetkit/regnet/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stimulating(source, target, level string) model.Interaction {
	return model.Interaction{Source: source, Target: target, IsStimulation: true, ConfidenceLevel: level}
}

func inhibiting(source, target, level string) model.Interaction {
	return model.Interaction{Source: source, Target: target, IsInhibition: true, ConfidenceLevel: level}
}

func TestDorothea(t *testing.T) {
	t.Run("Signed edges scaled by tier divisor", func(t *testing.T) {
		records := []model.Interaction{
			stimulating("TF1", "G1", "A"),
			inhibiting("TF1", "G2", "B"),
			stimulating("TF2", "G1", "C"),
		}

		edges, err := Dorothea(records, DorotheaOptions{})
		require.NoError(t, err)
		require.Len(t, edges, 3)

		assert.Equal(t, model.Edge{Source: "TF1", Target: "G1", Confidence: model.TierA, Mor: 1}, edges[0])
		assert.Equal(t, model.Edge{Source: "TF1", Target: "G2", Confidence: model.TierB, Mor: -0.5}, edges[1])
		assert.Equal(t, model.Edge{Source: "TF2", Target: "G1", Confidence: model.TierC, Mor: 1.0 / 3.0}, edges[2])
	})

	t.Run("Mor is never zero", func(t *testing.T) {
		records := []model.Interaction{
			{Source: "TF1", Target: "G1", ConfidenceLevel: "A"}, // no direction evidence at all
			stimulating("TF1", "G2", "D"),
		}

		edges, err := Dorothea(records, DorotheaOptions{Levels: model.AllTiers})
		require.NoError(t, err)
		for _, edge := range edges {
			assert.NotZero(t, edge.Mor, "Expected a non-zero mor for edge %s -> %s", edge.Source, edge.Target)
		}
	})

	t.Run("No-evidence records default to activation", func(t *testing.T) {
		records := []model.Interaction{{Source: "TF1", Target: "G1", ConfidenceLevel: "A"}}

		edges, err := Dorothea(records, DorotheaOptions{})
		require.NoError(t, err)
		require.Len(t, edges, 1)
		assert.Equal(t, 1.0, edges[0].Mor)
	})

	t.Run("Default sign policy is overridable", func(t *testing.T) {
		records := []model.Interaction{{Source: "TF1", Target: "G1", ConfidenceLevel: "A"}}

		edges, err := Dorothea(records, DorotheaOptions{DefaultSign: model.Repression})
		require.NoError(t, err)
		require.Len(t, edges, 1)
		assert.Equal(t, -1.0, edges[0].Mor)
	})

	t.Run("Conflicting flags resolved by consensus stimulation", func(t *testing.T) {
		records := []model.Interaction{
			{Source: "TF1", Target: "G1", IsStimulation: true, IsInhibition: true, ConsensusStimulation: true, ConfidenceLevel: "A"},
			{Source: "TF1", Target: "G2", IsStimulation: true, IsInhibition: true, ConfidenceLevel: "A"},
		}

		edges, err := Dorothea(records, DorotheaOptions{})
		require.NoError(t, err)
		require.Len(t, edges, 2)
		assert.Equal(t, 1.0, edges[0].Mor)
		assert.Equal(t, -1.0, edges[1].Mor)
	})

	t.Run("Duplicates keep the first occurrence", func(t *testing.T) {
		records := []model.Interaction{
			stimulating("TF1", "G1", "A"),
			inhibiting("TF1", "G1", "A"), // same (source, tier, target), dropped
			stimulating("TF1", "G1", "B"),
		}

		edges, err := Dorothea(records, DorotheaOptions{})
		require.NoError(t, err)
		require.Len(t, edges, 2, "Expected the same pair to survive once per tier")
		assert.Equal(t, 1.0, edges[0].Mor, "Expected the first record of the duplicate pair to win")
		assert.Equal(t, model.TierB, edges[1].Confidence)
	})

	t.Run("No two edges share source, confidence and target", func(t *testing.T) {
		records := []model.Interaction{
			stimulating("TF1", "G1", "A"),
			stimulating("TF1", "G1", "A"),
			stimulating("TF1", "G1", "A;B"), // normalizes to A, duplicate
			inhibiting("TF1", "G1", "B"),
			inhibiting("TF1", "G1", "B"),
		}

		edges, err := Dorothea(records, DorotheaOptions{})
		require.NoError(t, err)

		type key struct {
			source, target string
			tier           model.ConfidenceTier
		}
		unique := map[key]struct{}{}
		for _, edge := range edges {
			k := key{edge.Source, edge.Target, edge.Confidence}
			_, duplicate := unique[k]
			assert.False(t, duplicate, "Duplicate edge %v", k)
			unique[k] = struct{}{}
		}
	})

	t.Run("Multi-tier annotations keep the best tier", func(t *testing.T) {
		records := []model.Interaction{stimulating("TF1", "G1", "A;C")}

		edges, err := Dorothea(records, DorotheaOptions{})
		require.NoError(t, err)
		require.Len(t, edges, 1)
		assert.Equal(t, model.TierA, edges[0].Confidence)
		assert.Equal(t, 1.0, edges[0].Mor)
	})

	t.Run("Only requested levels survive", func(t *testing.T) {
		records := []model.Interaction{
			stimulating("TF1", "G1", "A"),
			stimulating("TF1", "G2", "B"),
			stimulating("TF1", "G3", "C"),
			stimulating("TF1", "G4", "D"),
		}

		edges, err := Dorothea(records, DorotheaOptions{Levels: []model.ConfidenceTier{model.TierA, model.TierB}})
		require.NoError(t, err)
		require.Len(t, edges, 2)
		for _, edge := range edges {
			assert.Contains(t, []model.ConfidenceTier{model.TierA, model.TierB}, edge.Confidence)
		}
	})

	t.Run("Missing divisor is a configuration error", func(t *testing.T) {
		records := []model.Interaction{stimulating("TF1", "G1", "A")}
		weights := map[model.ConfidenceTier]float64{model.TierA: 1, model.TierB: 2, model.TierC: 3}

		_, err := Dorothea(records, DorotheaOptions{Weights: weights})
		require.Error(t, err)

		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Contains(t, configErr.Error(), "D")
	})

	t.Run("Zero divisor is a configuration error", func(t *testing.T) {
		weights := DefaultDorotheaWeights()
		weights[model.TierD] = 0

		_, err := Dorothea(nil, DorotheaOptions{Weights: weights})
		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
	})

	t.Run("Idempotent over the same input", func(t *testing.T) {
		records := []model.Interaction{
			stimulating("TF1", "G1", "A;B"),
			inhibiting("TF2", "G2", "B"),
			stimulating("TF1", "G1", "A;B"),
		}

		first, err := Dorothea(records, DorotheaOptions{})
		require.NoError(t, err)
		second, err := Dorothea(records, DorotheaOptions{})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
