package iedb

import (
	"fmt"

	"github.com/hammerlab/epitopes/ngram"
)

// Options is the shared parameter set threaded through every loader
// entry point. The zero value loads everything: no filtering beyond
// epitope validity, no row cap, no group size threshold, and noisy
// labels dropped.
type Options struct {
	Criteria

	// NRows, when positive, reads only the first NRows rows of the
	// dataset instead of the whole file.
	NRows int

	// GroupByAllele keeps an epitope's assays against different HLA
	// types as separate groups.
	GroupByAllele bool

	// MinCount excludes epitopes observed fewer than MinCount times.
	MinCount int

	// NoisyLabels decides the class of epitopes with contradictory
	// assay results.
	NoisyLabels NoisyLabelPolicy

	// Ngram configures feature construction for the ngram entry
	// points.
	Ngram ngram.Config
}

func (o Options) aggregate() AggregateOptions {
	return AggregateOptions{GroupByAllele: o.GroupByAllele, MinCount: o.MinCount}
}

// Loader wires the two IEDB datasets through the filtering and
// aggregation pipeline. Log, when non-nil, receives diagnostic counts.
type Loader struct {
	TCellSource Source
	MHCSource   Source
	Log         Logger
}

// load runs source read plus filtering, the stage every entry point
// shares.
func (l *Loader) load(src Source, opts Options) ([]Record, error) {
	if src == nil {
		return nil, fmt.Errorf("iedb: no source configured for this dataset")
	}

	records, err := src.Read(opts.NRows)
	if err != nil {
		return nil, err
	}

	return Filter(records, opts.Criteria, l.Log)
}

// TCell loads the T-cell response records matching the criteria,
// without aggregating repeated entries for the same epitope.
func (l *Loader) TCell(opts Options) ([]Record, error) {
	return l.load(l.TCellSource, opts)
}

// MHC loads the MHC binding records matching the criteria, without
// aggregating repeated entries for the same epitope.
func (l *Loader) MHC(opts Options) ([]Record, error) {
	return l.load(l.MHCSource, opts)
}

// TCellValues loads the T-cell response records and aggregates them
// into per-epitope positive-response fractions.
func (l *Loader) TCellValues(opts Options) ([]EpitopeGroup, error) {
	records, err := l.TCell(opts)
	if err != nil {
		return nil, err
	}
	return Aggregate(records, opts.aggregate())
}

// MHCValues loads the MHC binding records and aggregates them into
// per-epitope positive-binding fractions.
func (l *Loader) MHCValues(opts Options) ([]EpitopeGroup, error) {
	records, err := l.MHC(opts)
	if err != nil {
		return nil, err
	}
	return Aggregate(records, opts.aggregate())
}

// TCellClasses splits the aggregated T-cell response fractions into
// positive and negative epitope sets.
func (l *Loader) TCellClasses(opts Options) (LabeledSet, error) {
	groups, err := l.TCellValues(opts)
	if err != nil {
		return LabeledSet{}, err
	}
	return Split(groups, opts.NoisyLabels)
}

// MHCClasses splits the aggregated MHC binding fractions into positive
// and negative epitope sets.
func (l *Loader) MHCClasses(opts Options) (LabeledSet, error) {
	groups, err := l.MHCValues(opts)
	if err != nil {
		return LabeledSet{}, err
	}
	return Split(groups, opts.NoisyLabels)
}

// TCellNgrams builds n-gram features and labels for the T-cell
// response classes.
func (l *Loader) TCellNgrams(opts Options) (*ngram.Result, error) {
	set, err := l.TCellClasses(opts)
	if err != nil {
		return nil, err
	}
	return ngram.Dataset(set.Positives(), set.Negatives(), opts.Ngram)
}

// MHCNgrams builds n-gram features and labels for the MHC binding
// classes.
func (l *Loader) MHCNgrams(opts Options) (*ngram.Result, error) {
	set, err := l.MHCClasses(opts)
	if err != nil {
		return nil, err
	}
	return ngram.Dataset(set.Positives(), set.Negatives(), opts.Ngram)
}

// TCellVsMHC aggregates both datasets with the same criteria and joins
// them on the epitopes for which both have data.
func (l *Loader) TCellVsMHC(opts Options) ([]JoinedRow, error) {
	mhc, err := l.MHCValues(opts)
	if err != nil {
		return nil, err
	}
	tcell, err := l.TCellValues(opts)
	if err != nil {
		return nil, err
	}
	return Join(tcell, mhc), nil
}
