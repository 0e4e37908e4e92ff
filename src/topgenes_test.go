package src

import (
	"testing"
)

func TestMostExpressedGenes(t *testing.T) {
	m := newTestMatrix(t,
		[]string{"A", "B", "C", "D"},
		[]string{"cell1", "cell2"},
		[]float64{
			50, 10,
			30, 40,
			20, 50,
			0, 0,
		})
	top := MostExpressedGenes(m, 2)
	if len(top) != 2 {
		t.Fatalf("got %d genes, want 2", len(top))
	}
	//A: (50+10)/2 = 30, B: (30+40)/2 = 35, C: (20+50)/2 = 35, D: 0
	if top[0].Gene == "D" || top[1].Gene == "D" || top[0].Gene == "A" || top[1].Gene == "A" {
		t.Errorf("top genes: got %v and %v, want B and C", top[0].Gene, top[1].Gene)
	}
	if top[0].MeanPercent != 35.0 || top[1].MeanPercent != 35.0 {
		t.Errorf("mean percents: got %v and %v, want 35", top[0].MeanPercent, top[1].MeanPercent)
	}
}

func TestMostExpressedGenesTopNClamped(t *testing.T) {
	m := newTestMatrix(t,
		[]string{"A", "B"},
		[]string{"cell1"},
		[]float64{
			3,
			1,
		})
	top := MostExpressedGenes(m, 10)
	if len(top) != 2 {
		t.Fatalf("got %d genes, want 2", len(top))
	}
	if top[0].Gene != "A" || top[0].MeanPercent != 75.0 {
		t.Errorf("got %v %v, want A 75", top[0].Gene, top[0].MeanPercent)
	}
}

func TestMostExpressedGenesZeroTotalCells(t *testing.T) {
	m := newTestMatrix(t,
		[]string{"A", "B"},
		[]string{"cell1", "cell2"},
		[]float64{
			4, 0,
			4, 0,
		})
	top := MostExpressedGenes(m, 2)
	//cell2 has no counts and contributes zero share
	if top[0].MeanPercent != 25.0 {
		t.Errorf("got %v, want 25", top[0].MeanPercent)
	}
}
