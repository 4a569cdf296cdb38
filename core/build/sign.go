// Package build contains the pure network builders: each one takes raw
// interaction records and a small set of parameters and reduces them to
// a normalized, deduplicated, signed edge list. Builders never perform
// I/O and never mutate their inputs.
package build

import "github.com/regnetkit/regnet/model"

// DirectionFlags captures the direction-of-regulation evidence attached
// to one raw interaction record.
type DirectionFlags struct {
	Stimulation          bool
	Inhibition           bool
	ConsensusStimulation bool
}

// ResolveDirection maps direction evidence to a signed mode of
// regulation. Records flagged as both stimulating and inhibiting are
// resolved by the consensus-stimulation flag. Records carrying no
// direction evidence at all get the caller-supplied default sign.
func ResolveDirection(f DirectionFlags, def model.Sign) model.Sign {
	switch {
	case f.Stimulation && f.Inhibition:
		if f.ConsensusStimulation {
			return model.Activation
		}
		return model.Repression
	case f.Stimulation:
		return model.Activation
	case f.Inhibition:
		return model.Repression
	}
	return def
}
