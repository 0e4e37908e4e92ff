package src

import (
	"testing"

	"github.com/gonum/matrix/mat64"
)

func newTestMatrix(t *testing.T, genes []string, cells []string, values []float64) *CountMatrix {
	t.Helper()
	data := mat64.NewDense(len(genes), len(cells), values)
	m, err := NewCountMatrix(data, genes, cells)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestCalcPercentageScenario(t *testing.T) {
	m := newTestMatrix(t,
		[]string{"A", "B", "C"},
		[]string{"cell1", "cell2"},
		[]float64{
			10, 0,
			10, 10,
			0, 10,
		})
	got := CalcPercentage(m, []string{"A"})
	want := []float64{50.0, 0.0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCalcPercentageEmptySet(t *testing.T) {
	m := newTestMatrix(t,
		[]string{"A", "B"},
		[]string{"cell1", "cell2", "cell3"},
		[]float64{
			1, 2, 3,
			4, 5, 6,
		})
	got := CalcPercentage(m, nil)
	for i, v := range got {
		if v != 0.0 {
			t.Errorf("cell %d: got %v, want 0", i, v)
		}
	}
	if len(got) != 3 {
		t.Errorf("got %d values, want 3", len(got))
	}
}

func TestCalcPercentageZeroTotalCell(t *testing.T) {
	m := newTestMatrix(t,
		[]string{"A", "B"},
		[]string{"cell1", "cell2"},
		[]float64{
			5, 0,
			5, 0,
		})
	got := CalcPercentage(m, []string{"A"})
	if got[0] != 50.0 {
		t.Errorf("cell1: got %v, want 50", got[0])
	}
	if got[1] != 0.0 {
		t.Errorf("cell2 with zero total: got %v, want 0", got[1])
	}
}

func TestCalcPercentageRange(t *testing.T) {
	m := newTestMatrix(t,
		[]string{"A", "B", "C", "D"},
		[]string{"cell1", "cell2", "cell3"},
		[]float64{
			3, 0, 17,
			1, 8, 0,
			0, 2, 5,
			9, 4, 11,
		})
	subsets := [][]string{
		{"A"},
		{"A", "B"},
		{"A", "B", "C", "D"},
	}
	for _, genes := range subsets {
		got := CalcPercentage(m, genes)
		for i, v := range got {
			if v < 0.0 || v > 100.0 {
				t.Errorf("genes %v cell %d: %v outside [0,100]", genes, i, v)
			}
		}
	}
	got := CalcPercentage(m, []string{"A", "B", "C", "D"})
	for i, v := range got {
		if v != 100.0 {
			t.Errorf("all genes cell %d: got %v, want 100", i, v)
		}
	}
}

func TestCalcPercentagePermutedCells(t *testing.T) {
	m1 := newTestMatrix(t,
		[]string{"A", "B"},
		[]string{"cell1", "cell2", "cell3"},
		[]float64{
			2, 4, 8,
			6, 4, 8,
		})
	m2 := newTestMatrix(t,
		[]string{"A", "B"},
		[]string{"cell3", "cell1", "cell2"},
		[]float64{
			8, 2, 4,
			8, 6, 4,
		})
	p1 := CalcPercentage(m1, []string{"A"})
	p2 := CalcPercentage(m2, []string{"A"})
	byCell1 := map[string]float64{}
	for i, c := range m1.Cells {
		byCell1[c] = p1[i]
	}
	for i, c := range m2.Cells {
		if p2[i] != byCell1[c] {
			t.Errorf("cell %s: got %v after permutation, want %v", c, p2[i], byCell1[c])
		}
	}
}
