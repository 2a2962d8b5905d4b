package iedb

import (
	"fmt"
	"sort"
)

// NoisyLabelPolicy decides the class of an epitope whose assay results
// are contradictory: a positive fraction strictly between 0 and 1.
type NoisyLabelPolicy string

const (
	// NoisyDrop excludes contradictory epitopes from both sets.
	NoisyDrop NoisyLabelPolicy = ""

	// NoisyMajority assigns by majority vote: fractions of 0.5 or
	// more go to the positive set. An exact 0.5 tie goes negative.
	NoisyMajority NoisyLabelPolicy = "majority"

	// NoisyPositive puts every contradictory epitope in the positive set.
	NoisyPositive NoisyLabelPolicy = "positive"

	// NoisyNegative puts every contradictory epitope in the negative set.
	NoisyNegative NoisyLabelPolicy = "negative"
)

// LabeledSet holds the positive and negative epitope sequences of a
// class split. The two sets are always disjoint.
type LabeledSet struct {
	Positive map[string]struct{}
	Negative map[string]struct{}
}

// Positives returns the positive epitopes in sorted order.
func (s LabeledSet) Positives() []string {
	return sortedKeys(s.Positive)
}

// Negatives returns the negative epitopes in sorted order.
func (s LabeledSet) Negatives() []string {
	return sortedKeys(s.Negative)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Split partitions epitope groups into positive and negative sets. A
// group with fraction exactly 1 is positive and exactly 0 is negative;
// anything in between is resolved by the policy. When the input was
// grouped by allele the same epitope can occur in several groups, and
// a later group's label overrides an earlier one's.
func Split(groups []EpitopeGroup, policy NoisyLabelPolicy) (LabeledSet, error) {
	switch policy {
	case NoisyDrop, NoisyMajority, NoisyPositive, NoisyNegative:
	default:
		return LabeledSet{}, fmt.Errorf("iedb: unknown noisy label policy %q", policy)
	}

	set := LabeledSet{
		Positive: make(map[string]struct{}),
		Negative: make(map[string]struct{}),
	}

	for _, g := range groups {
		var positive bool
		switch {
		case g.PositiveFraction >= 1:
			positive = true
		case g.PositiveFraction <= 0:
			positive = false
		case policy == NoisyDrop:
			continue
		case policy == NoisyMajority:
			// An exact 0.5 tie goes negative.
			positive = g.PositiveFraction > 0.5
		case policy == NoisyPositive:
			positive = true
		case policy == NoisyNegative:
			positive = false
		}

		if positive {
			delete(set.Negative, g.Epitope)
			set.Positive[g.Epitope] = struct{}{}
		} else {
			delete(set.Positive, g.Epitope)
			set.Negative[g.Epitope] = struct{}{}
		}
	}

	return set, nil
}
