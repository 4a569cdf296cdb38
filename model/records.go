package model

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is a raw confidence-annotated regulon record as decoded
// from the knowledge-base interactions table.
type Interaction struct {
	Source               string `json:"source_genesymbol"`
	Target               string `json:"target_genesymbol"`
	IsStimulation        bool   `json:"is_stimulation"`
	IsInhibition         bool   `json:"is_inhibition"`
	ConsensusDirection   bool   `json:"consensus_direction"`
	ConsensusStimulation bool   `json:"consensus_stimulation"`
	ConsensusInhibition  bool   `json:"consensus_inhibition"`
	ConfidenceLevel      string `json:"dorothea_level"` // raw, possibly semicolon-joined
}

// TranscriptionalInteraction is a raw transcription-factor interaction
// record. The stimulation flag is kept as the raw wire value because
// values other than 0/1 mean the sign could not be curated. Regulators
// may be multi-subunit complex identifiers.
type TranscriptionalInteraction struct {
	Source        string `json:"source_genesymbol"`
	Target        string `json:"target_genesymbol"`
	IsStimulation string `json:"is_stimulation"`
	Resources     string `json:"sources"`
	References    string `json:"references"`
	SignDecision  string `json:"sign_decision"`
	TFCategory    string `json:"tf_category"`
}

// EnzymeSubstrate is a raw enzyme-substrate modification record.
type EnzymeSubstrate struct {
	Enzyme        string `json:"enzyme_genesymbol"`
	Substrate     string `json:"substrate_genesymbol"`
	Modification  string `json:"modification"`
	ResidueType   string `json:"residue_type"`
	ResidueOffset int    `json:"residue_offset"`
}

// AnnotationRecord is one row of a generic prior-knowledge annotation
// table. Annotation resources vary in schema, so rows stay untyped.
type AnnotationRecord map[string]string

// PathwayAnnotation is the typed view of a pathway-response annotation
// row used by the pathway network builder.
type PathwayAnnotation struct {
	Pathway    string  `json:"pathway"`
	GeneSymbol string  `json:"genesymbol"`
	Weight     float64 `json:"weight"`
	PValue     float64 `json:"p_value"`
}

// Snapshot is one cached raw-table payload as stored by the snapshot
// cache, keyed by (query kind, resource, organism).
type Snapshot struct {
	ID        uuid.UUID `json:"id"`
	QueryKind string    `json:"query_kind"`
	Resource  string    `json:"resource"`
	Organism  int       `json:"organism"`
	Payload   []byte    `json:"payload"`
	FetchedAt time.Time `json:"fetched_at"`
}
