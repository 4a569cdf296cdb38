package build

import (
	"regexp"
	"strings"

	"github.com/regnetkit/regnet/model"
)

// complexMarker distinguishes multi-subunit regulator identifiers, e.g.
// "COMPLEX:JUN_FOS" or "JUN_FOS_COMPLEX".
const complexMarker = "COMPLEX"

var (
	ap1Subunit  = regexp.MustCompile(`^(JUN|FOS)`)
	nfkbSubunit = regexp.MustCompile(`^(REL|NFKB)`)
	referenceID = regexp.MustCompile(`\d+`)
)

// CollectriOptions configures the complex-aware network builder.
type CollectriOptions struct {
	// SplitComplexes keeps complex regulators under their original
	// multi-subunit identifier instead of canonicalizing them.
	SplitComplexes bool
	// LoadMeta retains provenance metadata (resources, reference IDs,
	// sign decision, TF category) on every edge.
	LoadMeta bool
}

// Collectri reduces raw transcription-factor interaction records to a
// signed edge list. Rows are partitioned into simple and complex
// regulators; complex regulators are canonicalized to a known complex
// name ("AP1", "NFKB") unless SplitComplexes is set, and dropped when no
// canonical name applies. Simple rows precede complex rows before the
// keep-first deduplication by (source, target). Rows whose stimulation
// flag is neither true nor false/zero carry no determinable sign and
// are dropped rather than guessed.
func Collectri(records []model.TranscriptionalInteraction, opts CollectriOptions) []model.Edge {
	type resolved struct {
		source string
		record model.TranscriptionalInteraction
	}

	var simple, complexes []resolved
	for _, record := range records {
		if !isComplex(record.Source) {
			simple = append(simple, resolved{source: record.Source, record: record})
			continue
		}
		source := record.Source
		if !opts.SplitComplexes {
			source = canonicalComplex(source)
			if source == "" {
				continue
			}
		}
		complexes = append(complexes, resolved{source: source, record: record})
	}

	type pair struct {
		source, target string
	}
	seen := make(map[pair]struct{}, len(records))
	edges := make([]model.Edge, 0, len(records))
	for _, row := range append(simple, complexes...) {
		key := pair{row.source, row.record.Target}
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}

		sign, ok := stimulationSign(row.record.IsStimulation)
		if !ok {
			continue
		}

		edge := model.Edge{
			Source: row.source,
			Target: row.record.Target,
			Mor:    float64(sign),
		}
		if opts.LoadMeta {
			edge.Metadata = model.Metadata{
				"resources":     row.record.Resources,
				"references":    strings.Join(referenceID.FindAllString(row.record.References, -1), ";"),
				"sign_decision": row.record.SignDecision,
				"tf_category":   row.record.TFCategory,
			}
		}
		edges = append(edges, edge)
	}

	return edges
}

func isComplex(id string) bool {
	return strings.Contains(id, complexMarker)
}

// complexSubunits strips the complex marker from an identifier and
// returns the constituent gene symbols.
func complexSubunits(id string) []string {
	id = strings.TrimPrefix(id, complexMarker+":")
	var subunits []string
	for _, part := range strings.Split(id, "_") {
		if part == "" || part == complexMarker {
			continue
		}
		subunits = append(subunits, part)
	}
	return subunits
}

// canonicalComplex maps a complex identifier to its canonical complex
// name when every subunit belongs to one known family, "" otherwise.
func canonicalComplex(id string) string {
	subunits := complexSubunits(id)
	if len(subunits) == 0 {
		return ""
	}
	if allMatch(subunits, ap1Subunit) {
		return "AP1"
	}
	if allMatch(subunits, nfkbSubunit) {
		return "NFKB"
	}
	return ""
}

func allMatch(subunits []string, pattern *regexp.Regexp) bool {
	for _, subunit := range subunits {
		if !pattern.MatchString(subunit) {
			return false
		}
	}
	return true
}

// stimulationSign maps the raw stimulation flag to a sign. Anything
// other than a boolean raw value yields no sign at all.
func stimulationSign(raw string) (model.Sign, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true":
		return model.Activation, true
	case "0", "false":
		return model.Repression, true
	}
	return 0, false
}
