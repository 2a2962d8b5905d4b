package iedb

import (
	"fmt"
	"sort"
)

// EpitopeGroup is one aggregated partition of assay records: a unique
// epitope (or epitope/allele pair) with the fraction of its records
// that reported a positive qualitative measure.
type EpitopeGroup struct {
	Epitope          string  `csv:"Epitope Linear Sequence"`
	Allele           string  `csv:"MHC Allele Name,omitempty"`
	PositiveFraction float64 `csv:"Positive Fraction"`
	Count            int     `csv:"Count"`
}

// AggregateOptions control how records are partitioned into groups.
type AggregateOptions struct {
	// GroupByAllele partitions by (epitope, allele) instead of
	// combining an epitope's records across all alleles.
	GroupByAllele bool

	// MinCount excludes groups observed fewer than MinCount times.
	// Zero disables the threshold.
	MinCount int
}

// Aggregate partitions records by epitope sequence (and allele, if
// requested) and computes each partition's positive-response fraction
// and observation count. Groups are returned sorted by epitope, then
// allele. Partitions smaller than MinCount are dropped.
func Aggregate(records []Record, opts AggregateOptions) ([]EpitopeGroup, error) {
	if opts.MinCount < 0 {
		return nil, fmt.Errorf("iedb: min count must be nonnegative, got %d", opts.MinCount)
	}

	type key struct {
		epitope, allele string
	}
	type tally struct {
		positive, total int
	}

	tallies := make(map[key]*tally)
	for _, r := range records {
		k := key{epitope: r.Epitope}
		if opts.GroupByAllele {
			k.allele = r.Allele
		}
		t, ok := tallies[k]
		if !ok {
			t = &tally{}
			tallies[k] = t
		}
		t.total++
		if r.Positive() {
			t.positive++
		}
	}

	groups := make([]EpitopeGroup, 0, len(tallies))
	for k, t := range tallies {
		if t.total < opts.MinCount {
			continue
		}
		groups = append(groups, EpitopeGroup{
			Epitope:          k.epitope,
			Allele:           k.allele,
			PositiveFraction: float64(t.positive) / float64(t.total),
			Count:            t.total,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Epitope != groups[j].Epitope {
			return groups[i].Epitope < groups[j].Epitope
		}
		return groups[i].Allele < groups[j].Allele
	})

	return groups, nil
}
