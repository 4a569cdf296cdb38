// Package translate performs cross-species and cross-vocabulary
// identifier translation over static mapping tables. It is pure table
// rewriting; loading the mapping tables is the caller's concern.
package translate

import (
	"fmt"

	"github.com/regnetkit/regnet/core/organism"
	"github.com/regnetkit/regnet/model"
)

// Mapper is a one-to-many identifier mapping table.
type Mapper struct {
	m map[string][]string
}

// NewMapper creates an empty mapper.
func NewMapper() *Mapper {
	return &Mapper{m: map[string][]string{}}
}

// Add registers one mapping pair. The same source identifier may map
// to several targets.
func (m *Mapper) Add(from, to string) {
	m.m[from] = append(m.m[from], to)
}

// Lookup returns all targets for an identifier, nil when unmapped.
func (m *Mapper) Lookup(id string) []string {
	return m.m[id]
}

// Len returns the number of mapped source identifiers.
func (m *Mapper) Len() int {
	return len(m.m)
}

// TableTranslator translates identifier columns of annotation records
// using one ortholog mapping table per supported target organism plus
// an identifier-to-symbol table.
type TableTranslator struct {
	orthologs map[organism.ID]*Mapper
	symbols   *Mapper
}

// NewTableTranslator creates a translator without any tables loaded.
func NewTableTranslator() *TableTranslator {
	return &TableTranslator{orthologs: map[organism.ID]*Mapper{}}
}

// SetOrthologs installs the ortholog mapping for one target organism.
func (t *TableTranslator) SetOrthologs(target organism.ID, m *Mapper) {
	t.orthologs[target] = m
}

// SetSymbols installs the identifier-to-symbol mapping.
func (t *TableTranslator) SetSymbols(m *Mapper) {
	t.symbols = m
}

// Orthology rewrites column in every record to the target organism's
// ortholog identifiers. Unmapped rows are dropped; one-to-many
// mappings expand into one row per ortholog.
func (t *TableTranslator) Orthology(records []model.AnnotationRecord, column string, target organism.ID) ([]model.AnnotationRecord, error) {
	mapper, ok := t.orthologs[target]
	if !ok {
		return nil, fmt.Errorf("no ortholog mapping loaded for organism %s", target.CommonName())
	}

	var translated []model.AnnotationRecord
	for _, record := range records {
		for _, ortholog := range mapper.Lookup(record[column]) {
			clone := make(model.AnnotationRecord, len(record))
			for k, v := range record {
				clone[k] = v
			}
			clone[column] = ortholog
			translated = append(translated, clone)
		}
	}
	return translated, nil
}

// ToSymbol fills the to column of every record from the symbol mapping
// of the from column. Rows without a known symbol are dropped.
func (t *TableTranslator) ToSymbol(records []model.AnnotationRecord, from, to string) ([]model.AnnotationRecord, error) {
	if t.symbols == nil {
		return nil, fmt.Errorf("no symbol mapping loaded")
	}

	var translated []model.AnnotationRecord
	for _, record := range records {
		symbols := t.symbols.Lookup(record[from])
		if len(symbols) == 0 {
			continue
		}
		clone := make(model.AnnotationRecord, len(record)+1)
		for k, v := range record {
			clone[k] = v
		}
		clone[to] = symbols[0]
		translated = append(translated, clone)
	}
	return translated, nil
}
