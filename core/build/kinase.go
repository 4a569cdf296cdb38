package build

import (
	"fmt"

	"github.com/regnetkit/regnet/model"
)

const (
	modPhosphorylation   = "phosphorylation"
	modDephosphorylation = "dephosphorylation"
)

// SiteKey synthesizes the site-level target identifier for a substrate
// modification, e.g. ("MAPK1", "Y", 187) -> "MAPK1Y187".
func SiteKey(substrate, residueType string, residueOffset int) string {
	return fmt.Sprintf("%s%s%d", substrate, residueType, residueOffset)
}

// KinaseSubstrate builds a site-level enzyme-substrate network from raw
// modification records. Only phosphorylation and dephosphorylation
// events are kept; targets are site keys; phosphorylation maps to +1
// and dephosphorylation to -1. Groups sharing (source, target) collapse
// to the minimum mor present, so a curated dephosphorylation wins over
// a phosphorylation of the same site.
func KinaseSubstrate(records []model.EnzymeSubstrate) []model.Edge {
	type pair struct {
		source, target string
	}
	index := make(map[pair]int, len(records))
	var edges []model.Edge
	for _, record := range records {
		var sign model.Sign
		switch record.Modification {
		case modPhosphorylation:
			sign = model.Activation
		case modDephosphorylation:
			sign = model.Repression
		default:
			continue
		}

		key := pair{record.Enzyme, SiteKey(record.Substrate, record.ResidueType, record.ResidueOffset)}
		if i, ok := index[key]; ok {
			if float64(sign) < edges[i].Mor {
				edges[i].Mor = float64(sign)
			}
			continue
		}
		index[key] = len(edges)
		edges = append(edges, model.Edge{
			Source: key.source,
			Target: key.target,
			Mor:    float64(sign),
		})
	}
	return edges
}
