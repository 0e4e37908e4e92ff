package src

import (
	"fmt"
	"path/filepath"
)

// NoGenesFound is the audit sentinel recorded when none of a reference
// gene set is present in the data set. It keeps "attempted, found none"
// distinguishable from "not attempted".
const NoGenesFound = "no genes found"

// Gene subset keys used for reference files and the GeneLists side
// channel.
const (
	SubsetMt   = "mt"
	SubsetRibo = "ribo"
)

// GeneListResolver loads organism and nomenclature specific reference
// gene sets from single-column files in a reference directory. Loaded
// sets are cached; the cache is read-only after load.
type GeneListResolver struct {
	refDir string
	cache  map[string][]string
}

func NewGeneListResolver(refDir string) *GeneListResolver {
	return &GeneListResolver{
		refDir: refDir,
		cache:  make(map[string][]string),
	}
}

func (r *GeneListResolver) refFile(subset string, organism string, nomenclature string) string {
	name := fmt.Sprintf("genes_%s_%s_%s.txt", subset, organism, nomenclature)
	return filepath.Join(r.refDir, name)
}

// Load returns the reference gene set for one subset, organism and
// nomenclature. The file is one gene identifier per line, no header.
func (r *GeneListResolver) Load(subset string, organism string, nomenclature string) ([]string, error) {
	key := subset + "_" + organism + "_" + nomenclature
	genes, exist := r.cache[key]
	if exist {
		return genes, nil
	}
	inFile := r.refFile(subset, organism, nomenclature)
	genes, err := ReadGeneList(inFile)
	if err != nil {
		return nil, fmt.Errorf("reference gene list %s: %v", inFile, err)
	}
	r.cache[key] = genes
	return genes, nil
}

// Resolve intersects a reference gene set with the genes of the count
// matrix, preserving the matrix row order. An empty result is a normal
// condition, not an error.
func (r *GeneListResolver) Resolve(refSet []string, m *CountMatrix) []string {
	inRef := make(map[string]bool)
	for _, g := range refSet {
		inRef[g] = true
	}
	genesHere := make([]string, 0)
	for _, g := range m.Genes {
		if inRef[g] {
			genesHere = append(genesHere, g)
		}
	}
	return genesHere
}
