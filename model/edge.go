package model

// Sign is a signed mode of regulation before confidence scaling.
type Sign float64

const (
	Activation Sign = 1
	Repression Sign = -1
)

// Metadata holds per-edge provenance attributes
type Metadata map[string]interface{}

// Edge is one normalized interaction in the canonical edge-list schema.
// Source is a regulator gene symbol (or canonical complex name), Target
// a gene symbol or synthesized site key. Mor is the signed mode of
// regulation, optionally scaled by confidence; it is never zero for a
// retained regulatory edge. Weight and PValue are only set by the
// pathway builder, Confidence only by the confidence-weighted builder.
type Edge struct {
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Mor        float64        `json:"mor,omitempty"`
	Weight     float64        `json:"weight,omitempty"`
	PValue     float64        `json:"p_value,omitempty"`
	Confidence ConfidenceTier `json:"confidence,omitempty"`
	Metadata   Metadata       `json:"metadata,omitempty"`
}
