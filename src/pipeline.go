package src

import (
	"log"
)

// AddPercentMtRibo annotates each cell of the experiment with the
// percentage of its transcripts coming from mitochondrial and ribosomal
// genes. The pipeline is a single linear pass with no partial state:
// validate, resolve the reference gene lists against the data set,
// compute one percentage vector per subset, merge into the metadata.
// Any validation or resolution failure returns before the object is
// touched. The mutated object is returned with the same identity it came
// in with.
func AddPercentMtRibo(exp *Experiment, organism string, nomenclature string, assay string, resolver *GeneListResolver) (*Experiment, error) {
	source, err := Validate(exp, assay, organism, nomenclature)
	if err != nil {
		return nil, err
	}
	m, err := source.GetCountMatrix(assay)
	if err != nil {
		return nil, err
	}
	refMt, err := resolver.Load(SubsetMt, organism, nomenclature)
	if err != nil {
		return nil, err
	}
	refRibo, err := resolver.Load(SubsetRibo, organism, nomenclature)
	if err != nil {
		return nil, err
	}
	genesMt := resolver.Resolve(refMt, m)
	genesRibo := resolver.Resolve(refRibo, m)
	if len(genesMt) == 0 {
		log.Printf("no mitochondrial genes found in data set, percent_mt set to 0 for all %d cells.", m.NCells())
	} else {
		log.Printf("%d of %d mitochondrial genes present in data set.", len(genesMt), len(refMt))
	}
	if len(genesRibo) == 0 {
		log.Printf("no ribosomal genes found in data set, percent_ribo set to 0 for all %d cells.", m.NCells())
	} else {
		log.Printf("%d of %d ribosomal genes present in data set.", len(genesRibo), len(refRibo))
	}
	percentMt := CalcPercentage(m, genesMt)
	percentRibo := CalcPercentage(m, genesRibo)
	if err := MergeResults(exp, m, percentMt, percentRibo, genesMt, genesRibo); err != nil {
		return nil, err
	}
	return exp, nil
}
