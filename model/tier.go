package model

import "strings"

// ConfidenceTier is an ordered curation-quality label for an
// interaction record, A being the highest confidence.
type ConfidenceTier string

const (
	TierA ConfidenceTier = "A"
	TierB ConfidenceTier = "B"
	TierC ConfidenceTier = "C"
	TierD ConfidenceTier = "D"
)

// AllTiers lists the confidence tiers in descending curation quality.
var AllTiers = []ConfidenceTier{TierA, TierB, TierC, TierD}

// Valid reports whether t is one of the four known tiers.
func (t ConfidenceTier) Valid() bool {
	switch t {
	case TierA, TierB, TierC, TierD:
		return true
	}
	return false
}

// BestTier reduces a raw tier annotation to a single tier. Records
// derived from multiple sources carry a semicolon-joined tier list
// sorted best-first, so the first entry is the best tier.
func BestTier(raw string) ConfidenceTier {
	first, _, _ := strings.Cut(strings.TrimSpace(raw), ";")
	return ConfidenceTier(first)
}
