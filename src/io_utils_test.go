package src

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCountMatrix(t *testing.T) {
	dir, err := ioutil.TempDir("", "scqc")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	inFile := filepath.Join(dir, "counts.txt")
	content := "gene\tcell1\tcell2\n" +
		"A\t10\t0\n" +
		"B\t10\t10\n" +
		"C\t0\t10\n"
	if err := ioutil.WriteFile(inFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := ReadCountMatrix(inFile)
	if err != nil {
		t.Fatal(err)
	}
	if m.NGenes() != 3 || m.NCells() != 2 {
		t.Fatalf("got %d genes %d cells", m.NGenes(), m.NCells())
	}
	if m.Genes[0] != "A" || m.Cells[1] != "cell2" {
		t.Errorf("names: %v %v", m.Genes, m.Cells)
	}
	if m.Data.At(1, 1) != 10.0 || m.Data.At(2, 0) != 0.0 {
		t.Errorf("values not loaded: %v %v", m.Data.At(1, 1), m.Data.At(2, 0))
	}
}

func TestReadGeneList(t *testing.T) {
	dir, err := ioutil.TempDir("", "scqc")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	inFile := filepath.Join(dir, "genes.txt")
	if err := ioutil.WriteFile(inFile, []byte("MT-ND1\nMT-CO1\n\nMT-CYB\n"), 0644); err != nil {
		t.Fatal(err)
	}
	genes, err := ReadGeneList(inFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(genes) != 3 || genes[1] != "MT-CO1" {
		t.Errorf("got %v", genes)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "scqc")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	table := NewPerCellMetadata([]string{"cell1", "cell2"})
	table.SetColumn("nCounts", []string{"cell1", "cell2"}, []float64{1000, 2500})
	table.SetColumn(ColPercentMt, []string{"cell1", "cell2"}, []float64{12.5, 0})
	outFile := filepath.Join(dir, "meta.txt")
	if err := WriteMetadata(outFile, table); err != nil {
		t.Fatal(err)
	}
	got, err := ReadMetadata(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if got.NCells() != 2 || got.Cells[0] != "cell1" {
		t.Fatalf("cells: %v", got.Cells)
	}
	mt, exist := got.Column(ColPercentMt)
	if !exist || mt[0] != 12.5 || mt[1] != 0.0 {
		t.Errorf("percent_mt: %v %v", mt, exist)
	}
	n, _ := got.Column("nCounts")
	if n[1] != 2500.0 {
		t.Errorf("nCounts: %v", n)
	}
}

func TestWriteGeneLists(t *testing.T) {
	dir, err := ioutil.TempDir("", "scqc")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	exp := &Experiment{
		Version: "3",
		GeneLists: map[string][]string{
			ListGenesMt:   {"MT-ND1", "MT-CO1"},
			ListGenesRibo: {NoGenesFound},
		},
	}
	outFile := filepath.Join(dir, "lists.txt")
	if err := WriteGeneLists(outFile, exp); err != nil {
		t.Fatal(err)
	}
	raw, err := ioutil.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %v", len(lines), lines)
	}
	if lines[0] != ListGenesMt+"\tMT-ND1" {
		t.Errorf("first line: %v", lines[0])
	}
	if lines[2] != ListGenesRibo+"\t"+NoGenesFound {
		t.Errorf("sentinel line: %v", lines[2])
	}
}
