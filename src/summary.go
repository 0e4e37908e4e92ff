package src

import (
	"sort"

	gstat "github.com/gonum/stat"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary holds descriptive statistics for one metadata column.
type ColumnSummary struct {
	Name   string
	N      int
	Mean   float64
	SD     float64
	Min    float64
	P5     float64
	Q1     float64
	Median float64
	Q3     float64
	P95    float64
	Max    float64
}

// SummarizeColumn computes descriptive statistics over one per-cell
// attribute vector.
func SummarizeColumn(name string, values []float64) ColumnSummary {
	s := ColumnSummary{Name: name, N: len(values)}
	if len(values) == 0 {
		return s
	}
	s.Mean = gstat.Mean(values, nil)
	if len(values) > 1 {
		s.SD = gstat.StdDev(values, nil)
	}
	s.Min, _ = stats.Min(values)
	s.Max, _ = stats.Max(values)
	s.Median, _ = stats.Median(values)
	s.P5, _ = stats.Percentile(values, 5)
	s.P95, _ = stats.Percentile(values, 95)
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	s.Q1 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	s.Q3 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	return s
}

// SummarizeMetadata summarizes every column of the table in column
// order.
func SummarizeMetadata(table *PerCellMetadata) []ColumnSummary {
	names := table.ColumnNames()
	summaries := make([]ColumnSummary, 0, len(names))
	for _, name := range names {
		col, _ := table.Column(name)
		summaries = append(summaries, SummarizeColumn(name, col))
	}
	return summaries
}

// PercentCorrelation returns the Pearson correlation between the
// percent_mt and percent_ribo columns, if both are present with at least
// two cells.
func PercentCorrelation(table *PerCellMetadata) (float64, bool) {
	mt, okMt := table.Column(ColPercentMt)
	ribo, okRibo := table.Column(ColPercentRibo)
	if !okMt || !okRibo || len(mt) < 2 {
		return 0, false
	}
	return stat.Correlation(mt, ribo, nil), true
}
