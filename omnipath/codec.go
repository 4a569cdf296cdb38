package omnipath

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/regnetkit/regnet/model"
)

// table is a decoded TSV payload with column-name access.
type table struct {
	columns map[string]int
	rows    [][]string
}

func parseTSV(payload []byte) (*table, error) {
	reader := csv.NewReader(bytes.NewReader(payload))
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode tsv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("decode tsv: empty payload")
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}
	return &table{columns: columns, rows: records[1:]}, nil
}

// field returns the named column of a row, "" when the row is short.
func (t *table) field(row []string, name string) (string, error) {
	i, ok := t.columns[name]
	if !ok {
		return "", fmt.Errorf("missing column %q", name)
	}
	if i >= len(row) {
		return "", nil
	}
	return row[i], nil
}

func flag(raw string) bool {
	return raw == "1" || raw == "true" || raw == "True"
}

func decodeInteractions(payload []byte) ([]model.Interaction, error) {
	t, err := parseTSV(payload)
	if err != nil {
		return nil, err
	}

	records := make([]model.Interaction, 0, len(t.rows))
	for _, row := range t.rows {
		var record model.Interaction
		for name, dst := range map[string]*string{
			"source_genesymbol": &record.Source,
			"target_genesymbol": &record.Target,
			"dorothea_level":    &record.ConfidenceLevel,
		} {
			if *dst, err = t.field(row, name); err != nil {
				return nil, err
			}
		}
		for name, dst := range map[string]*bool{
			"is_stimulation":        &record.IsStimulation,
			"is_inhibition":         &record.IsInhibition,
			"consensus_direction":   &record.ConsensusDirection,
			"consensus_stimulation": &record.ConsensusStimulation,
			"consensus_inhibition":  &record.ConsensusInhibition,
		} {
			raw, err := t.field(row, name)
			if err != nil {
				return nil, err
			}
			*dst = flag(raw)
		}
		records = append(records, record)
	}
	return records, nil
}

func decodeTranscriptionalInteractions(payload []byte) ([]model.TranscriptionalInteraction, error) {
	t, err := parseTSV(payload)
	if err != nil {
		return nil, err
	}

	records := make([]model.TranscriptionalInteraction, 0, len(t.rows))
	for _, row := range t.rows {
		var record model.TranscriptionalInteraction
		for name, dst := range map[string]*string{
			"source_genesymbol": &record.Source,
			"target_genesymbol": &record.Target,
			"is_stimulation":    &record.IsStimulation,
			"sources":           &record.Resources,
			"references":        &record.References,
		} {
			if *dst, err = t.field(row, name); err != nil {
				return nil, err
			}
		}

		// sign_decision and TF_category travel inside the extra
		// attributes JSON column when present
		if _, ok := t.columns["extra_attrs"]; ok {
			raw, err := t.field(row, "extra_attrs")
			if err != nil {
				return nil, err
			}
			record.SignDecision, record.TFCategory = extraAttrs(raw)
		}

		records = append(records, record)
	}
	return records, nil
}

// extraAttrs pulls the two provenance attributes out of the embedded
// extra-attributes JSON. Malformed JSON yields empty attributes rather
// than a failed table.
func extraAttrs(raw string) (signDecision, tfCategory string) {
	if raw == "" {
		return "", ""
	}
	var attrs map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		return "", ""
	}
	if v, ok := attrs["sign_decision"].(string); ok {
		signDecision = v
	}
	if v, ok := attrs["TF_category"].(string); ok {
		tfCategory = v
	}
	return signDecision, tfCategory
}

func decodeEnzymeSubstrates(payload []byte) ([]model.EnzymeSubstrate, error) {
	t, err := parseTSV(payload)
	if err != nil {
		return nil, err
	}

	records := make([]model.EnzymeSubstrate, 0, len(t.rows))
	for _, row := range t.rows {
		var record model.EnzymeSubstrate
		for name, dst := range map[string]*string{
			"enzyme_genesymbol":    &record.Enzyme,
			"substrate_genesymbol": &record.Substrate,
			"modification":         &record.Modification,
			"residue_type":         &record.ResidueType,
		} {
			if *dst, err = t.field(row, name); err != nil {
				return nil, err
			}
		}
		raw, err := t.field(row, "residue_offset")
		if err != nil {
			return nil, err
		}
		if record.ResidueOffset, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("invalid residue_offset %q: %w", raw, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func decodeAnnotations(payload []byte) ([]model.AnnotationRecord, error) {
	t, err := parseTSV(payload)
	if err != nil {
		return nil, err
	}

	records := make([]model.AnnotationRecord, 0, len(t.rows))
	for _, row := range t.rows {
		record := make(model.AnnotationRecord, len(t.columns))
		for name := range t.columns {
			value, err := t.field(row, name)
			if err != nil {
				return nil, err
			}
			record[name] = value
		}
		records = append(records, record)
	}
	return records, nil
}
