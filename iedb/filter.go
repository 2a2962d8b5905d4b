package iedb

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/hammerlab/epitopes/alphabet"
)

// Logger receives diagnostic counts during filtering. *log.Logger
// satisfies it. A nil Logger silences diagnostics; they never affect
// the filtered result.
type Logger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// Criteria selects assay records by biological and assay properties.
// The zero value keeps every record with a valid epitope sequence. All
// set criteria must hold simultaneously for a record to pass.
type Criteria struct {
	// HumanOnly keeps only records from human assays (Homo sapiens
	// host or HLA-named allele).
	HumanOnly bool

	// MHCClass keeps only records whose allele matches the given
	// class pattern. ClassAny applies no restriction.
	MHCClass MHCClass

	// HLA is a regular expression; when non-empty, only records whose
	// allele name matches it are kept, e.g. `(HLA-A2)|(HLA-A\*02)`.
	HLA string

	// ExcludeHLA is a regular expression; when non-empty, records
	// whose allele name matches it are dropped.
	ExcludeHLA string

	// PeptideLength, when positive, keeps only epitopes of exactly
	// that many residues, measured after any reduced alphabet remap.
	// Negative values are rejected.
	PeptideLength int

	// AssayGroup, when non-empty, keeps only records from assays of
	// that group.
	AssayGroup string

	// ReducedAlphabet, when non-nil, remaps every letter of each
	// valid epitope sequence before further filtering. It must cover
	// all 20 standard amino acid letters.
	ReducedAlphabet map[byte]byte
}

// compiled holds the per-call compiled form of Criteria.
type compiled struct {
	Criteria
	hla        *regexp.Regexp
	excludeHLA *regexp.Regexp
}

// validate checks the criteria before any record is touched.
func (c Criteria) validate() (compiled, error) {
	out := compiled{Criteria: c}

	if c.PeptideLength < 0 {
		return out, fmt.Errorf("iedb: peptide length must be positive, got %d", c.PeptideLength)
	}
	if c.MHCClass < ClassAny || c.MHCClass > ClassII {
		return out, fmt.Errorf("iedb: unknown MHC class %d", c.MHCClass)
	}
	if c.ReducedAlphabet != nil {
		for i := 0; i < len(alphabet.Letters); i++ {
			if _, ok := c.ReducedAlphabet[alphabet.Letters[i]]; !ok {
				return out, fmt.Errorf("iedb: reduced alphabet is missing amino acid %q", alphabet.Letters[i])
			}
		}
	}

	var err error
	if c.HLA != "" {
		if out.hla, err = regexp.Compile(c.HLA); err != nil {
			return out, pfx.Err(err)
		}
	}
	if c.ExcludeHLA != "" {
		if out.excludeHLA, err = regexp.Compile(c.ExcludeHLA); err != nil {
			return out, pfx.Err(err)
		}
	}

	return out, nil
}

// Filter returns the records satisfying the criteria, in input order.
// Epitope sequences in the result are uppercased and, if a reduced
// alphabet is given, remapped through it. Records with an empty
// epitope or one containing a nonstandard residue are dropped
// unconditionally. Criteria matching no records yield an empty result,
// not an error.
func Filter(records []Record, c Criteria, lg Logger) ([]Record, error) {
	cc, err := c.validate()
	if err != nil {
		return nil, err
	}

	var out []Record
	var nHuman, nClassI, nClassII, nHumanI, nHumanII, nEmpty, nBad int

	for _, r := range records {
		// Diagnostic masks are counted over every record, before
		// validity or any criterion is applied.
		human := r.Human()
		classI := r.ClassI()
		classII := r.ClassII()
		if human {
			nHuman++
		}
		if classI {
			nClassI++
		}
		if classII {
			nClassII++
		}
		if human && classI {
			nHumanI++
		}
		if human && classII {
			nHumanII++
		}

		if r.Epitope == "" {
			nEmpty++
			continue
		}
		seq := strings.ToUpper(r.Epitope)
		if !alphabet.Valid(seq) {
			nBad++
			continue
		}
		if cc.ReducedAlphabet != nil {
			seq = remap(seq, cc.ReducedAlphabet)
		}

		if cc.HumanOnly && !human {
			continue
		}
		if cc.MHCClass == ClassI && !classI {
			continue
		}
		if cc.MHCClass == ClassII && !classII {
			continue
		}
		if cc.AssayGroup != "" && r.AssayGroup != cc.AssayGroup {
			continue
		}
		if cc.hla != nil && !cc.hla.MatchString(r.Allele) {
			continue
		}
		if cc.excludeHLA != nil && cc.excludeHLA.MatchString(r.Allele) {
			continue
		}
		if cc.PeptideLength > 0 && len(seq) != cc.PeptideLength {
			continue
		}

		r.Epitope = seq
		out = append(out, r)
	}

	if lg != nil {
		lg.Println("Human entries", nHuman)
		lg.Println("Class I MHC entries", nClassI)
		lg.Println("Class II MHC entries", nClassII)
		lg.Println("Human Class I MHCs", nHumanI)
		lg.Println("Human Class II MHCs", nHumanII)
		lg.Printf("Dropping %d null sequences\n", nEmpty)
		lg.Printf("Dropping %d bad sequences\n", nBad)
		lg.Println("Filtered epitope sequences", len(out))
	}

	return out, nil
}

// remap substitutes every letter of a validated sequence through the
// reduced alphabet. Validation guarantees every letter is present, so
// the result has the same length as the input.
func remap(seq string, reduced map[byte]byte) string {
	b := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		b[i] = reduced[seq[i]]
	}
	return string(b)
}
