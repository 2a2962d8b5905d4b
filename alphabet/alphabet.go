// Package alphabet defines the standard amino acid alphabet and named
// reduced alphabets that remap the 20 letters onto a smaller symbol set.
package alphabet

import "strings"

// Letters contains the 20 standard amino acid letters, uppercase.
const Letters = "ACDEFGHIKLMNPQRSTVWY"

// Valid reports whether seq is non-empty and contains only standard
// amino acid letters. Sequences with rare or unknown residues (B, J, O,
// U, X, Z) or any other character are invalid.
func Valid(seq string) bool {
	if len(seq) == 0 {
		return false
	}
	for i := 0; i < len(seq); i++ {
		if strings.IndexByte(Letters, seq[i]) < 0 {
			return false
		}
	}
	return true
}

// Alphabets maps a reduced alphabet name to its letter remapping. Every
// remapping covers all 20 standard letters and replaces each with the
// representative letter of its group, so remapped sequences keep their
// length.
var Alphabets = map[string]map[byte]byte{
	// Two-letter hydrophobic/polar split
	"hp2": groups("ACFGILMPVWY", "DEHKNQRST"),

	// Four-letter alphabet from Solis & Rackovsky
	"gbmr4": groups("ADKERNTSQ", "YFLIVMCWH", "G", "P"),

	// Ten-letter alphabet from Murphy, Wallqvist & Levy (2000)
	"murphy10": groups("LVIM", "C", "A", "G", "ST", "P", "FYW", "EDNQ", "KR", "H"),
}

// groups builds a remapping where every letter in a group maps to the
// group's first letter.
func groups(gs ...string) map[byte]byte {
	m := make(map[byte]byte)
	for _, g := range gs {
		for i := 0; i < len(g); i++ {
			m[g[i]] = g[0]
		}
	}
	return m
}

// Names lists the available reduced alphabet names.
func Names() []string {
	names := make([]string, 0, len(Alphabets))
	for name := range Alphabets {
		names = append(names, name)
	}
	return names
}
