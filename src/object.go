package src

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
)

// CountMatrix is a gene by cell matrix of transcript counts. Rows are
// genes, columns are cells, both addressed by unique identifiers.
type CountMatrix struct {
	Data    *mat64.Dense
	Genes   []string
	Cells   []string
	geneIdx map[string]int
}

func NewCountMatrix(data *mat64.Dense, genes []string, cells []string) (*CountMatrix, error) {
	nRow, nCol := data.Caps()
	if nRow != len(genes) {
		return nil, fmt.Errorf("count matrix has %d rows but %d gene names", nRow, len(genes))
	}
	if nCol != len(cells) {
		return nil, fmt.Errorf("count matrix has %d columns but %d cell names", nCol, len(cells))
	}
	geneIdx := make(map[string]int)
	for i, g := range genes {
		_, exist := geneIdx[g]
		if exist {
			return nil, fmt.Errorf("duplicated gene name %s", g)
		}
		geneIdx[g] = i
	}
	cellSeen := make(map[string]int)
	for _, c := range cells {
		_, exist := cellSeen[c]
		if exist {
			return nil, fmt.Errorf("duplicated cell name %s", c)
		}
		cellSeen[c] = 1
	}
	return &CountMatrix{Data: data, Genes: genes, Cells: cells, geneIdx: geneIdx}, nil
}

func (m *CountMatrix) NGenes() int {
	return len(m.Genes)
}

func (m *CountMatrix) NCells() int {
	return len(m.Cells)
}

// GeneRow maps a gene identifier to its row index.
func (m *CountMatrix) GeneRow(gene string) (int, bool) {
	i, exist := m.geneIdx[gene]
	return i, exist
}

// PerCellMetadata is a cell-keyed table of named per-cell attributes.
// Column order is kept stable for output; writing a column that already
// exists overwrites it in place.
type PerCellMetadata struct {
	Cells   []string
	cellIdx map[string]int
	columns map[string][]float64
	order   []string
}

func NewPerCellMetadata(cells []string) *PerCellMetadata {
	cellIdx := make(map[string]int)
	for i, c := range cells {
		cellIdx[c] = i
	}
	return &PerCellMetadata{
		Cells:   cells,
		cellIdx: cellIdx,
		columns: make(map[string][]float64),
	}
}

// SetColumn writes values into the named column, matched by cell
// identifier. The cells slice gives the identity of each value; cells
// unknown to the table are an error, cells of the table not present in
// the input keep a zero value.
func (t *PerCellMetadata) SetColumn(name string, cells []string, values []float64) error {
	if len(cells) != len(values) {
		return fmt.Errorf("column %s: %d cells but %d values", name, len(cells), len(values))
	}
	col := make([]float64, len(t.Cells))
	for i, c := range cells {
		j, exist := t.cellIdx[c]
		if !exist {
			return fmt.Errorf("column %s: cell %s not in metadata table", name, c)
		}
		col[j] = values[i]
	}
	_, exist := t.columns[name]
	if !exist {
		t.order = append(t.order, name)
	}
	t.columns[name] = col
	return nil
}

func (t *PerCellMetadata) Column(name string) ([]float64, bool) {
	col, exist := t.columns[name]
	return col, exist
}

func (t *PerCellMetadata) ColumnNames() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

func (t *PerCellMetadata) NCells() int {
	return len(t.Cells)
}

// Experiment is the caller-owned container for one single-cell data set.
// Version 2 objects keep raw counts in a single slot, version 3 objects
// scope counts per named assay. GeneLists is a side channel recording
// which reference genes an analysis actually used.
type Experiment struct {
	Version   string
	RawCounts *CountMatrix
	Assays    map[string]*CountMatrix
	Metadata  *PerCellMetadata
	GeneLists map[string][]string
}

// CountMatrixSource abstracts the version-dependent storage slot for
// counts. A source is selected once, at validation time.
type CountMatrixSource interface {
	GetCountMatrix(assay string) (*CountMatrix, error)
}

// rawCountsSource serves version 2 objects, where counts sit in one slot
// and the assay name is ignored.
type rawCountsSource struct {
	exp *Experiment
}

func (s *rawCountsSource) GetCountMatrix(assay string) (*CountMatrix, error) {
	if s.exp.RawCounts == nil || s.exp.RawCounts.NGenes() == 0 {
		return nil, &MissingMatrixError{Assay: assay}
	}
	return s.exp.RawCounts, nil
}

// assayCountsSource serves version 3 objects with assay-scoped counts.
type assayCountsSource struct {
	exp *Experiment
}

func (s *assayCountsSource) GetCountMatrix(assay string) (*CountMatrix, error) {
	m, exist := s.exp.Assays[assay]
	if !exist {
		return nil, &MissingAssayError{Assay: assay}
	}
	if m == nil || m.NGenes() == 0 {
		return nil, &MissingMatrixError{Assay: assay}
	}
	return m, nil
}
