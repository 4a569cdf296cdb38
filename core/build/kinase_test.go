package build

import (
	"testing"

	"github.com/regnetkit/regnet/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phospho(enzyme, substrate, residue string, offset int) model.EnzymeSubstrate {
	return model.EnzymeSubstrate{Enzyme: enzyme, Substrate: substrate, Modification: modPhosphorylation, ResidueType: residue, ResidueOffset: offset}
}

func dephospho(enzyme, substrate, residue string, offset int) model.EnzymeSubstrate {
	return model.EnzymeSubstrate{Enzyme: enzyme, Substrate: substrate, Modification: modDephosphorylation, ResidueType: residue, ResidueOffset: offset}
}

func TestSiteKey(t *testing.T) {
	assert.Equal(t, "MAPK1Y187", SiteKey("MAPK1", "Y", 187))
	assert.Equal(t, "AKT1S473", SiteKey("AKT1", "S", 473))
}

func TestKinaseSubstrate(t *testing.T) {
	t.Run("Phosphorylation events become site-level edges", func(t *testing.T) {
		records := []model.EnzymeSubstrate{
			phospho("MAP2K1", "MAPK1", "Y", 187),
			dephospho("DUSP1", "MAPK1", "T", 185),
		}

		edges := KinaseSubstrate(records)
		require.Len(t, edges, 2)
		assert.Equal(t, model.Edge{Source: "MAP2K1", Target: "MAPK1Y187", Mor: 1}, edges[0])
		assert.Equal(t, model.Edge{Source: "DUSP1", Target: "MAPK1T185", Mor: -1}, edges[1])
	})

	t.Run("Other modification types are filtered out", func(t *testing.T) {
		records := []model.EnzymeSubstrate{
			{Enzyme: "EP300", Substrate: "TP53", Modification: "acetylation", ResidueType: "K", ResidueOffset: 382},
			phospho("ATM", "TP53", "S", 15),
		}

		edges := KinaseSubstrate(records)
		require.Len(t, edges, 1)
		assert.Equal(t, "ATM", edges[0].Source)
	})

	t.Run("Conflicting signs collapse to the minimum", func(t *testing.T) {
		records := []model.EnzymeSubstrate{
			phospho("PKN1", "AKT1", "S", 473),
			dephospho("PKN1", "AKT1", "S", 473),
		}

		edges := KinaseSubstrate(records)
		require.Len(t, edges, 1)
		assert.Equal(t, -1.0, edges[0].Mor, "Expected dephosphorylation to win over phosphorylation for the same site")
	})

	t.Run("Order of conflicting records does not matter", func(t *testing.T) {
		records := []model.EnzymeSubstrate{
			dephospho("PKN1", "AKT1", "S", 473),
			phospho("PKN1", "AKT1", "S", 473),
		}

		edges := KinaseSubstrate(records)
		require.Len(t, edges, 1)
		assert.Equal(t, -1.0, edges[0].Mor)
	})

	t.Run("Exact duplicate records collapse to one edge", func(t *testing.T) {
		records := []model.EnzymeSubstrate{
			phospho("MAP2K1", "MAPK1", "Y", 187),
			phospho("MAP2K1", "MAPK1", "Y", 187),
		}

		edges := KinaseSubstrate(records)
		require.Len(t, edges, 1)
		assert.Equal(t, 1.0, edges[0].Mor)
	})

	t.Run("Same pair on different residues stays separate", func(t *testing.T) {
		records := []model.EnzymeSubstrate{
			phospho("MAP2K1", "MAPK1", "Y", 187),
			phospho("MAP2K1", "MAPK1", "T", 185),
		}

		edges := KinaseSubstrate(records)
		assert.Len(t, edges, 2, "Expected distinct site keys to produce distinct targets")
	})

	t.Run("Idempotent over the same input", func(t *testing.T) {
		records := []model.EnzymeSubstrate{
			phospho("MAP2K1", "MAPK1", "Y", 187),
			dephospho("MAP2K1", "MAPK1", "Y", 187),
			phospho("ATM", "TP53", "S", 15),
		}

		assert.Equal(t, KinaseSubstrate(records), KinaseSubstrate(records))
	})
}
