package src

import (
	"github.com/gonum/floats"
)

// CalcPercentage computes, per cell, the share of total counts carried by
// the given genes, scaled to [0,100]. Sums run over the matrix rows with
// the division done once per cell in float64; no rounding is applied.
// An empty gene set yields the zero vector without touching the counts.
// A cell whose total count is zero also gets 0, so the columns stay plain
// numeric vectors downstream.
func CalcPercentage(m *CountMatrix, genes []string) []float64 {
	nCells := m.NCells()
	percent := make([]float64, nCells)
	if len(genes) == 0 {
		return percent
	}
	total := make([]float64, nCells)
	subset := make([]float64, nCells)
	for i := 0; i < m.NGenes(); i++ {
		floats.Add(total, m.Data.RawRowView(i))
	}
	for _, g := range genes {
		i, exist := m.GeneRow(g)
		if !exist {
			continue
		}
		floats.Add(subset, m.Data.RawRowView(i))
	}
	for j := 0; j < nCells; j++ {
		if total[j] > 0.0 {
			percent[j] = 100.0 * subset[j] / total[j]
		}
	}
	return percent
}
