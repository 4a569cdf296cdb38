package omnipath

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/regnetkit/regnet/core/organism"
	"github.com/regnetkit/regnet/model"
)

// Dataset names a curated interaction collection of the knowledge base.
type Dataset string

const (
	DatasetDorothea  Dataset = "dorothea"
	DatasetCollectri Dataset = "collectri"
)

// DorotheaInteractions fetches the confidence-annotated regulon table
// for one organism from the live web service.
func (c *Client) DorotheaInteractions(ctx context.Context, org organism.ID) ([]model.Interaction, error) {
	query := url.Values{
		"datasets":    {string(DatasetDorothea)},
		"organisms":   {strconv.Itoa(int(org))},
		"genesymbols": {"yes"},
		"fields":      {"dorothea_level"},
		"format":      {"tsv"},
	}
	payload, err := c.fetch(ctx, c.cfg.BaseURL, "/interactions", query, QueryInteractions, string(DatasetDorothea), org)
	if err != nil {
		return nil, err
	}
	return decodeInteractions(payload)
}

// StaticDorotheaInteractions fetches the pinned regulon snapshot.
func (c *Client) StaticDorotheaInteractions(ctx context.Context, org organism.ID) ([]model.Interaction, error) {
	payload, err := c.static(ctx, QueryInteractions, string(DatasetDorothea), org)
	if err != nil {
		return nil, err
	}
	return decodeInteractions(payload)
}

// TranscriptionalInteractions fetches the complex-aware transcriptional
// regulation table for one organism from the live web service.
func (c *Client) TranscriptionalInteractions(ctx context.Context, org organism.ID) ([]model.TranscriptionalInteraction, error) {
	query := url.Values{
		"datasets":    {string(DatasetCollectri)},
		"organisms":   {strconv.Itoa(int(org))},
		"genesymbols": {"yes"},
		"fields":      {"extra_attrs"},
		"format":      {"tsv"},
	}
	payload, err := c.fetch(ctx, c.cfg.BaseURL, "/interactions", query, QueryInteractions, string(DatasetCollectri), org)
	if err != nil {
		return nil, err
	}
	return decodeTranscriptionalInteractions(payload)
}

// StaticTranscriptionalInteractions fetches the pinned snapshot of the
// transcriptional regulation table.
func (c *Client) StaticTranscriptionalInteractions(ctx context.Context, org organism.ID) ([]model.TranscriptionalInteraction, error) {
	payload, err := c.static(ctx, QueryInteractions, string(DatasetCollectri), org)
	if err != nil {
		return nil, err
	}
	return decodeTranscriptionalInteractions(payload)
}

// TFMiRNAInteractions fetches the curated TF-miRNA interactions that
// supplement the transcriptional table. Only curated for human.
func (c *Client) TFMiRNAInteractions(ctx context.Context) ([]model.TranscriptionalInteraction, error) {
	query := url.Values{
		"datasets":    {string(DatasetCollectri)},
		"types":       {"mirna_transcriptional"},
		"organisms":   {strconv.Itoa(int(organism.Human))},
		"genesymbols": {"yes"},
		"fields":      {"extra_attrs"},
		"format":      {"tsv"},
	}
	payload, err := c.fetch(ctx, c.cfg.BaseURL, "/interactions", query, QueryInteractions, "collectri_mirna", organism.Human)
	if err != nil {
		return nil, err
	}
	return decodeTranscriptionalInteractions(payload)
}

// EnzymeSubstrates fetches the enzyme-substrate modification table.
func (c *Client) EnzymeSubstrates(ctx context.Context) ([]model.EnzymeSubstrate, error) {
	query := url.Values{
		"genesymbols": {"yes"},
		"format":      {"tsv"},
	}
	payload, err := c.fetch(ctx, c.cfg.BaseURL, "/enzsub", query, QueryEnzSub, "enzsub", organism.Human)
	if err != nil {
		return nil, err
	}
	return decodeEnzymeSubstrates(payload)
}

// StaticEnzymeSubstrates fetches the pinned enzyme-substrate snapshot.
func (c *Client) StaticEnzymeSubstrates(ctx context.Context) ([]model.EnzymeSubstrate, error) {
	payload, err := c.static(ctx, QueryEnzSub, "enzsub", organism.Human)
	if err != nil {
		return nil, err
	}
	return decodeEnzymeSubstrates(payload)
}

// Annotations fetches one named prior-knowledge annotation table.
func (c *Client) Annotations(ctx context.Context, resource string, org organism.ID) ([]model.AnnotationRecord, error) {
	query := url.Values{
		"resources":   {resource},
		"organisms":   {strconv.Itoa(int(org))},
		"genesymbols": {"yes"},
		"format":      {"tsv"},
	}
	payload, err := c.fetch(ctx, c.cfg.BaseURL, "/annotations", query, QueryAnnotations, resource, org)
	if err != nil {
		return nil, err
	}
	return decodeAnnotations(payload)
}

// StaticAnnotations fetches the pinned snapshot of a named annotation
// table.
func (c *Client) StaticAnnotations(ctx context.Context, resource string, org organism.ID) ([]model.AnnotationRecord, error) {
	payload, err := c.static(ctx, QueryAnnotations, resource, org)
	if err != nil {
		return nil, err
	}
	return decodeAnnotations(payload)
}

// Resources lists the annotation resources the registry knows about.
// Registry responses are not cached: the registry is only consulted for
// best-effort validation.
func (c *Client) Resources(ctx context.Context) (map[string]struct{}, error) {
	rawURL := c.cfg.BaseURL + "/resources?format=json"
	payload, err := c.fetchDirect(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	var listing map[string]json.RawMessage
	if err := json.Unmarshal(payload, &listing); err != nil {
		return nil, fmt.Errorf("decode resource listing: %w", err)
	}

	resources := make(map[string]struct{}, len(listing))
	for name := range listing {
		resources[name] = struct{}{}
	}
	return resources, nil
}

// static downloads the snapshot payload for one query kind, going
// through the same cache as live queries so a previously fetched table
// keeps serving when the snapshot server is unreachable too.
func (c *Client) static(ctx context.Context, kind QueryKind, resource string, org organism.ID) ([]byte, error) {
	path, err := kind.staticPath(resource, org)
	if err != nil {
		return nil, err
	}
	return c.fetch(ctx, c.cfg.StaticBaseURL, path, nil, kind, resource, org)
}
