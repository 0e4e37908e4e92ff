package src

import "fmt"

// Validation failures abort the pipeline before any mutation. Each check
// has its own error type so callers can test for the failed condition.

type UnsupportedVersionError struct {
	Version string
	Min     string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("object version %s not supported, version %s or later required", e.Version, e.Min)
}

type MissingAssayError struct {
	Assay string
}

func (e *MissingAssayError) Error() string {
	return fmt.Sprintf("assay %s not present in object", e.Assay)
}

type MissingMatrixError struct {
	Assay string
}

func (e *MissingMatrixError) Error() string {
	return fmt.Sprintf("no count matrix stored for assay %s", e.Assay)
}

type UnsupportedOrganismError struct {
	Organism string
}

func (e *UnsupportedOrganismError) Error() string {
	return fmt.Sprintf("organism %s not supported, use hg or mm", e.Organism)
}

type UnsupportedNomenclatureError struct {
	Organism     string
	Nomenclature string
}

func (e *UnsupportedNomenclatureError) Error() string {
	return fmt.Sprintf("gene nomenclature %s not supported for organism %s", e.Nomenclature, e.Organism)
}
