// Package ngram turns labeled sets of amino acid sequences into
// numeric feature matrices. Each sequence becomes a vector of counts
// (or frequencies) of its substrings up to a maximum n-gram order.
package ngram

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/montanaflynn/stats"
)

// Config controls feature construction.
type Config struct {
	// MaxOrder is the largest n-gram length to count. An order of 1
	// counts individual letter occurrences.
	MaxOrder int

	// NormalizeRows divides each feature vector by its sum, turning
	// counts into frequencies.
	NormalizeRows bool

	// SubsampleBigger randomly drops sequences from the larger class
	// until both classes have the same size.
	SubsampleBigger bool
}

// Transformer maps amino acid sequences into the vector space captured
// while building a dataset, so new sequences can be featurized
// consistently with the training data.
type Transformer struct {
	vocab     map[string]int
	maxOrder  int
	normalize bool
}

// Result is a featurized dataset: one row of X and one label in Y per
// input sequence, positives labeled 1 and negatives 0.
type Result struct {
	X [][]float64
	Y []int

	// Transformer reproduces this featurization for new sequences.
	Transformer *Transformer
}

// Dataset builds an n-gram feature matrix and label vector from
// positive and negative sequence sets.
func Dataset(pos, neg []string, cfg Config) (*Result, error) {
	if cfg.MaxOrder < 1 {
		return nil, fmt.Errorf("ngram: max order must be at least 1, got %d", cfg.MaxOrder)
	}

	if cfg.SubsampleBigger {
		pos, neg = subsample(pos, neg)
	}

	t := &Transformer{
		vocab:     buildVocab(cfg.MaxOrder, pos, neg),
		maxOrder:  cfg.MaxOrder,
		normalize: cfg.NormalizeRows,
	}

	res := &Result{
		X:           t.Transform(append(append([]string{}, pos...), neg...)),
		Y:           make([]int, 0, len(pos)+len(neg)),
		Transformer: t,
	}
	for range pos {
		res.Y = append(res.Y, 1)
	}
	for range neg {
		res.Y = append(res.Y, 0)
	}

	return res, nil
}

// Transform featurizes sequences into the transformer's vector space.
// N-grams never seen while building the dataset are ignored.
func (t *Transformer) Transform(seqs []string) [][]float64 {
	X := make([][]float64, len(seqs))
	for i, seq := range seqs {
		row := make([]float64, len(t.vocab))
		for order := 1; order <= t.maxOrder; order++ {
			for j := 0; j+order <= len(seq); j++ {
				if col, ok := t.vocab[seq[j:j+order]]; ok {
					row[col]++
				}
			}
		}
		if t.normalize {
			if sum, err := stats.Sum(row); err == nil && sum > 0 {
				for j := range row {
					row[j] /= sum
				}
			}
		}
		X[i] = row
	}
	return X
}

// Features returns the n-grams of the vector space in column order.
func (t *Transformer) Features() []string {
	features := make([]string, len(t.vocab))
	for gram, col := range t.vocab {
		features[col] = gram
	}
	return features
}

// buildVocab assigns a column to every n-gram occurring in the input,
// in sorted order for determinism.
func buildVocab(maxOrder int, seqSets ...[]string) map[string]int {
	seen := make(map[string]struct{})
	for _, seqs := range seqSets {
		for _, seq := range seqs {
			for order := 1; order <= maxOrder; order++ {
				for j := 0; j+order <= len(seq); j++ {
					seen[seq[j:j+order]] = struct{}{}
				}
			}
		}
	}

	grams := make([]string, 0, len(seen))
	for gram := range seen {
		grams = append(grams, gram)
	}
	sort.Strings(grams)

	vocab := make(map[string]int, len(grams))
	for col, gram := range grams {
		vocab[gram] = col
	}
	return vocab
}

// subsample shuffles the bigger of the two classes and drops its tail
// so both classes end up the same size.
func subsample(pos, neg []string) ([]string, []string) {
	if len(pos) > len(neg) {
		pos = shuffled(pos)[:len(neg)]
	} else if len(neg) > len(pos) {
		neg = shuffled(neg)[:len(pos)]
	}
	return pos, neg
}

func shuffled(seqs []string) []string {
	out := append([]string{}, seqs...)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
