// Package organism resolves user-supplied organism designators to the
// NCBI taxonomy identifiers supported by the network builders.
package organism

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ID is an NCBI taxonomy identifier.
type ID int

const (
	Human ID = 9606
	Mouse ID = 10090
	Rat   ID = 10116
)

// local fallback mapping used when no registry is available or the
// registry lookup fails
var commonNames = map[string]ID{
	"human": Human,
	"mouse": Mouse,
	"rat":   Rat,
}

// Registry is an optional remote taxonomy lookup service.
type Registry interface {
	LookupTaxonID(ctx context.Context, name string) (int, error)
}

// UnsupportedOrganismError is returned for any designator that does not
// resolve to a supported taxonomy identifier.
type UnsupportedOrganismError struct {
	Organism string
}

func (e *UnsupportedOrganismError) Error() string {
	return fmt.Sprintf("unsupported organism %q, supported organisms are human (9606), mouse (10090) and rat (10116)", e.Organism)
}

// Resolve maps a common name (case-insensitive) or a numeric taxonomy
// identifier to a supported ID using the local mapping only.
func Resolve(org string) (ID, error) {
	return ResolveWith(context.Background(), nil, org)
}

// ResolveWith resolves org through reg first, falling back to the local
// mapping when reg is nil or the lookup fails. The result must be one
// of the supported identifiers regardless of where it came from.
func ResolveWith(ctx context.Context, reg Registry, org string) (ID, error) {
	name := strings.ToLower(strings.TrimSpace(org))

	if reg != nil {
		if taxon, err := reg.LookupTaxonID(ctx, name); err == nil {
			return supported(org, taxon)
		}
	}

	if id, ok := commonNames[name]; ok {
		return id, nil
	}
	if taxon, err := strconv.Atoi(name); err == nil {
		return supported(org, taxon)
	}

	return 0, &UnsupportedOrganismError{Organism: org}
}

func supported(raw string, taxon int) (ID, error) {
	switch ID(taxon) {
	case Human, Mouse, Rat:
		return ID(taxon), nil
	}
	return 0, &UnsupportedOrganismError{Organism: raw}
}

// CommonName returns the lowercase common name for a supported ID, or
// the numeric identifier for anything else.
func (id ID) CommonName() string {
	switch id {
	case Human:
		return "human"
	case Mouse:
		return "mouse"
	case Rat:
		return "rat"
	}
	return strconv.Itoa(int(id))
}
