package build

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/regnetkit/regnet/model"
)

// Progeny ranks pathway target genes by significance and keeps at most
// top genes per pathway. Duplicate (pathway, gene) pairs keep their
// first occurrence; within a pathway the sort by ascending p-value is
// stable, so ties keep their original relative order. Pathways are
// emitted in first-seen order.
func Progeny(records []model.PathwayAnnotation, top int) ([]model.Edge, error) {
	if top < 1 {
		return nil, &ConfigurationError{Option: "top", Reason: fmt.Sprintf("must be at least 1, got %d", top)}
	}

	type pair struct {
		pathway, gene string
	}
	seen := make(map[pair]struct{}, len(records))
	groups := make(map[string][]model.PathwayAnnotation)
	var order []string
	for _, record := range records {
		key := pair{record.Pathway, record.GeneSymbol}
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := groups[record.Pathway]; !ok {
			order = append(order, record.Pathway)
		}
		groups[record.Pathway] = append(groups[record.Pathway], record)
	}

	var edges []model.Edge
	for _, pathway := range order {
		group := groups[pathway]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].PValue < group[j].PValue
		})
		if len(group) > top {
			group = group[:top]
		}
		for _, record := range group {
			edges = append(edges, model.Edge{
				Source: pathway,
				Target: record.GeneSymbol,
				Weight: record.Weight,
				PValue: record.PValue,
			})
		}
	}

	return edges, nil
}

// ParsePathwayAnnotations converts generic annotation rows to the typed
// pathway view consumed by Progeny. Rows missing one of the expected
// columns or carrying non-numeric values are rejected.
func ParsePathwayAnnotations(records []model.AnnotationRecord) ([]model.PathwayAnnotation, error) {
	annotations := make([]model.PathwayAnnotation, 0, len(records))
	for i, record := range records {
		pathway, ok := record["pathway"]
		if !ok {
			return nil, fmt.Errorf("annotation row %d: missing column pathway", i)
		}
		gene, ok := record["genesymbol"]
		if !ok {
			return nil, fmt.Errorf("annotation row %d: missing column genesymbol", i)
		}
		weight, err := strconv.ParseFloat(record["weight"], 64)
		if err != nil {
			return nil, fmt.Errorf("annotation row %d: invalid weight %q", i, record["weight"])
		}
		pValue, err := strconv.ParseFloat(record["p_value"], 64)
		if err != nil {
			return nil, fmt.Errorf("annotation row %d: invalid p_value %q", i, record["p_value"])
		}
		annotations = append(annotations, model.PathwayAnnotation{
			Pathway:    pathway,
			GeneSymbol: gene,
			Weight:     weight,
			PValue:     pValue,
		})
	}
	return annotations, nil
}
