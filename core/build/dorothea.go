package build

import (
	"fmt"

	"github.com/regnetkit/regnet/model"
)

// ConfigurationError is returned for invalid builder parameters. It is
// never recovered internally.
type ConfigurationError struct {
	Option string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", e.Option, e.Reason)
}

// DorotheaOptions configures the confidence-weighted regulon builder.
type DorotheaOptions struct {
	// Levels are the confidence tiers to keep; nil means A, B and C.
	Levels []model.ConfidenceTier
	// Weights maps each tier to its mor divisor. A divisor must be
	// present for every tier, not only the requested ones. Nil means
	// DefaultDorotheaWeights.
	Weights map[model.ConfidenceTier]float64
	// DefaultSign is assigned to records without any direction
	// evidence. The zero value means Activation, the historical
	// behavior of the curated source.
	DefaultSign model.Sign
}

// DefaultDorotheaWeights returns the standard per-tier mor divisors.
func DefaultDorotheaWeights() map[model.ConfidenceTier]float64 {
	return map[model.ConfidenceTier]float64{
		model.TierA: 1,
		model.TierB: 2,
		model.TierC: 3,
		model.TierD: 4,
	}
}

type dorotheaKey struct {
	source, target string
	tier           model.ConfidenceTier
}

// Dorothea reduces raw confidence-annotated regulon records to a signed
// edge list. Multi-tier annotations are normalized to their best tier,
// records are deduplicated by (source, tier, target) keeping the first
// occurrence, the mode of regulation is resolved from the direction
// flags and scaled by the tier divisor, and only the requested tiers
// are kept. An edge per (source, confidence, target) is a legitimate
// distinct edge, so the same pair may appear once per tier.
func Dorothea(records []model.Interaction, opts DorotheaOptions) ([]model.Edge, error) {
	levels := opts.Levels
	if levels == nil {
		levels = []model.ConfidenceTier{model.TierA, model.TierB, model.TierC}
	}
	weights := opts.Weights
	if weights == nil {
		weights = DefaultDorotheaWeights()
	}
	for _, tier := range model.AllTiers {
		divisor, ok := weights[tier]
		if !ok {
			return nil, &ConfigurationError{Option: "Weights", Reason: fmt.Sprintf("missing divisor for confidence tier %s", tier)}
		}
		if divisor == 0 {
			return nil, &ConfigurationError{Option: "Weights", Reason: fmt.Sprintf("zero divisor for confidence tier %s", tier)}
		}
	}
	defaultSign := opts.DefaultSign
	if defaultSign == 0 {
		defaultSign = model.Activation
	}

	wanted := make(map[model.ConfidenceTier]struct{}, len(levels))
	for _, level := range levels {
		wanted[level] = struct{}{}
	}

	seen := make(map[dorotheaKey]struct{}, len(records))
	edges := make([]model.Edge, 0, len(records))
	for _, record := range records {
		tier := model.BestTier(record.ConfidenceLevel)

		key := dorotheaKey{record.Source, record.Target, tier}
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}

		if _, ok := wanted[tier]; !ok {
			continue
		}

		sign := ResolveDirection(DirectionFlags{
			Stimulation:          record.IsStimulation,
			Inhibition:           record.IsInhibition,
			ConsensusStimulation: record.ConsensusStimulation,
		}, defaultSign)

		edges = append(edges, model.Edge{
			Source:     record.Source,
			Target:     record.Target,
			Confidence: tier,
			Mor:        float64(sign) / weights[tier],
		})
	}

	return edges, nil
}
