package src

import (
	"sort"

	"github.com/gonum/floats"
	"github.com/wangjohn/quickselect"
)

// GeneShare is one gene's mean share of per-cell total counts, scaled to
// [0,100].
type GeneShare struct {
	Gene        string
	MeanPercent float64
}

// geneShareSlice orders by descending share so quickselect pulls the
// most expressed genes to the front.
type geneShareSlice []GeneShare

func (s geneShareSlice) Len() int {
	return len(s)
}

func (s geneShareSlice) Less(i, j int) bool {
	return s[i].MeanPercent > s[j].MeanPercent
}

func (s geneShareSlice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// MostExpressedGenes returns the topN genes by mean share of per-cell
// total counts. Cells with zero total counts contribute a zero share for
// every gene. Ties keep the matrix row order.
func MostExpressedGenes(m *CountMatrix, topN int) []GeneShare {
	nGenes := m.NGenes()
	nCells := m.NCells()
	total := make([]float64, nCells)
	for i := 0; i < nGenes; i++ {
		floats.Add(total, m.Data.RawRowView(i))
	}
	shares := make(geneShareSlice, nGenes)
	for i := 0; i < nGenes; i++ {
		row := m.Data.RawRowView(i)
		sum := 0.0
		for j := 0; j < nCells; j++ {
			if total[j] > 0.0 {
				sum += 100.0 * row[j] / total[j]
			}
		}
		mean := 0.0
		if nCells > 0 {
			mean = sum / float64(nCells)
		}
		shares[i] = GeneShare{Gene: m.Genes[i], MeanPercent: mean}
	}
	if topN <= 0 {
		return nil
	}
	if topN > nGenes {
		topN = nGenes
	}
	if topN < nGenes {
		quickselect.QuickSelect(shares, topN)
	}
	top := shares[:topN]
	sort.Stable(top)
	return top
}
