package src

// Metadata column names written by the QC pipeline. Pre-existing columns
// with these names are overwritten.
const (
	ColPercentMt   = "percent_mt"
	ColPercentRibo = "percent_ribo"
)

// GeneLists side channel keys.
const (
	ListGenesMt   = "genes_mt"
	ListGenesRibo = "genes_ribo"
)

func recordGeneList(exp *Experiment, key string, genes []string) {
	if exp.GeneLists == nil {
		exp.GeneLists = make(map[string][]string)
	}
	if len(genes) == 0 {
		exp.GeneLists[key] = []string{NoGenesFound}
		return
	}
	used := make([]string, len(genes))
	copy(used, genes)
	exp.GeneLists[key] = used
}

// MergeResults writes the two percentage vectors into the object's
// per-cell metadata, matched by cell identifier rather than position,
// and records the gene identifiers each subset actually used (or the
// NoGenesFound sentinel) in the GeneLists side channel.
func MergeResults(exp *Experiment, m *CountMatrix, percentMt []float64, percentRibo []float64, genesMt []string, genesRibo []string) error {
	if exp.Metadata == nil {
		exp.Metadata = NewPerCellMetadata(m.Cells)
	}
	if err := exp.Metadata.SetColumn(ColPercentMt, m.Cells, percentMt); err != nil {
		return err
	}
	if err := exp.Metadata.SetColumn(ColPercentRibo, m.Cells, percentRibo); err != nil {
		return err
	}
	recordGeneList(exp, ListGenesMt, genesMt)
	recordGeneList(exp, ListGenesRibo, genesRibo)
	return nil
}
