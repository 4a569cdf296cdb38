package omnipath

import (
	"fmt"

	"github.com/regnetkit/regnet/core/organism"
)

// QueryKind is the closed set of raw-table query families. Each kind
// has exactly one static-snapshot fallback strategy.
type QueryKind int

const (
	QueryInteractions QueryKind = iota
	QueryAnnotations
	QueryEnzSub
)

func (k QueryKind) String() string {
	switch k {
	case QueryInteractions:
		return "interactions"
	case QueryAnnotations:
		return "annotations"
	case QueryEnzSub:
		return "enzsub"
	}
	return fmt.Sprintf("QueryKind(%d)", int(k))
}

// staticPath returns the snapshot path for one query kind. The switch
// is exhaustive over all QueryKind values; an unknown kind is a
// programming error surfaced as such.
func (k QueryKind) staticPath(resource string, org organism.ID) (string, error) {
	switch k {
	case QueryInteractions:
		return fmt.Sprintf("/tables/%s_%d.tsv", resource, int(org)), nil
	case QueryAnnotations:
		return fmt.Sprintf("/tables/annotations_%s_%d.tsv", resource, int(org)), nil
	case QueryEnzSub:
		return "/tables/enzsub.tsv", nil
	}
	return "", fmt.Errorf("no static snapshot strategy for query kind %d", int(k))
}
