// Package iedb filters and aggregates immunological assay records from
// the Immune Epitope Database (IEDB). Raw T-cell response and MHC
// binding assay rows are filtered by biological criteria, grouped by
// epitope into positive-response fractions, and split into labeled
// positive/negative sets for classification.
package iedb

import (
	"regexp"
	"strings"
)

// Record is a single assay observation from one of the compact IEDB
// exports. The struct tags bind the compact CSV column names and the
// SQL column names used by the sources in this package.
type Record struct {
	Epitope      string `csv:"Epitope Linear Sequence" db:"epitope"`
	HostOrganism string `csv:"Host Organism Name" db:"host_organism"`
	Allele       string `csv:"MHC Allele Name" db:"mhc_allele"`
	Measure      string `csv:"Qualitative Measure" db:"qualitative_measure"`
	AssayGroup   string `csv:"Assay Group" db:"assay_group"`
}

// PeptideLength is the number of residues in the epitope sequence.
func (r Record) PeptideLength() int {
	return len(r.Epitope)
}

// Positive reports whether the record's qualitative measure is a
// positive outcome. IEDB uses gradations such as "Positive-High" and
// "Positive-Low", all sharing the "Positive" prefix.
func (r Record) Positive() bool {
	return strings.HasPrefix(r.Measure, "Positive")
}

// Human reports whether the record came from a human assay: either the
// host organism is Homo sapiens or the allele carries the
// human-specific HLA nomenclature.
func (r Record) Human() bool {
	return strings.HasPrefix(r.HostOrganism, "Homo sapiens") ||
		strings.HasPrefix(r.Allele, "HLA")
}

// MHCClass restricts a query to records whose allele matches one MHC
// class pattern. The zero value applies no class restriction.
type MHCClass int

const (
	ClassAny MHCClass = iota
	ClassI
	ClassII
)

func (c MHCClass) String() string {
	switch c {
	case ClassI:
		return "Class I"
	case ClassII:
		return "Class II"
	}
	return "Any"
}

// Allele name patterns for the two MHC classes. These match known
// alleles such as 'HLA-A*02:01', broader groupings such as 'HLA-A2',
// and undetermined alleles listed as 'Class I,allele undetermined' or
// 'HLA-Class I,allele undetermined'. Malformed allele names may match
// both patterns or neither; no normalization is attempted.
var (
	classIPattern  = regexp.MustCompile(`Class I,|HLA-[A-C]([0-9]|\*)`)
	classIIPattern = regexp.MustCompile(`Class II,|HLA-D(P|M|O|Q|R)`)
)

// ClassI reports whether the record's allele matches the MHC class I
// pattern.
func (r Record) ClassI() bool {
	return classIPattern.MatchString(r.Allele)
}

// ClassII reports whether the record's allele matches the MHC class II
// pattern.
func (r Record) ClassII() bool {
	return classIIPattern.MatchString(r.Allele)
}
