package src

import (
	"strconv"
	"strings"
)

// MinVersion is the oldest object layout the pipeline can read.
const MinVersion = "2"

// assayScopedVersion is the first layout that stores counts per assay.
const assayScopedVersion = 3

var supportedNomenclatures = map[string][]string{
	"hg": {"name", "ensembl", "gencode_v27"},
	"mm": {"name", "ensembl", "gencode_vM16"},
}

func majorVersion(version string) (int, bool) {
	head := strings.SplitN(version, ".", 2)[0]
	v, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Validate confirms the object layout and the organism/nomenclature codes
// before any computation, and selects the count matrix source matching
// the object version. It checks the count matrix is actually reachable so
// a failure here leaves the object untouched.
func Validate(exp *Experiment, assay string, organism string, nomenclature string) (CountMatrixSource, error) {
	v, ok := majorVersion(exp.Version)
	min, _ := majorVersion(MinVersion)
	if !ok || v < min {
		return nil, &UnsupportedVersionError{Version: exp.Version, Min: MinVersion}
	}
	noms, exist := supportedNomenclatures[organism]
	if !exist {
		return nil, &UnsupportedOrganismError{Organism: organism}
	}
	found := false
	for _, n := range noms {
		if n == nomenclature {
			found = true
			break
		}
	}
	if !found {
		return nil, &UnsupportedNomenclatureError{Organism: organism, Nomenclature: nomenclature}
	}
	var source CountMatrixSource
	if v >= assayScopedVersion {
		source = &assayCountsSource{exp: exp}
	} else {
		source = &rawCountsSource{exp: exp}
	}
	if _, err := source.GetCountMatrix(assay); err != nil {
		return nil, err
	}
	return source, nil
}
