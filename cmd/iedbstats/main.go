// iedbstats summarizes an IEDB assay dataset: it prints the filter
// diagnostics plus summary statistics of the per-epitope positive
// fractions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonum/stat"

	"github.com/hammerlab/epitopes/iedb"
)

func main() {
	var input, sqlite, table, hla, excludeHLA, assayGroup string
	var mhcClass, peptideLength, minCount, nrows int
	var humanOnly, groupByAllele bool

	flag.StringVar(&input, "input", "", "Path to a compact IEDB CSV export.")
	flag.StringVar(&sqlite, "sqlite", "", "Path to a SQLite cache of the dataset (alternative to -input).")
	flag.StringVar(&table, "table", "tcell", "Table name within the SQLite cache.")
	flag.IntVar(&mhcClass, "class", 0, "Restrict to an MHC class (1 or 2; 0 for both).")
	flag.StringVar(&hla, "hla", "", "Regular expression; restrict to matching HLA allele names.")
	flag.StringVar(&excludeHLA, "exclude-hla", "", "Regular expression; drop matching HLA allele names.")
	flag.StringVar(&assayGroup, "assay-group", "", "Restrict to assays of this group.")
	flag.IntVar(&peptideLength, "peptide-length", 0, "Restrict to epitopes of exactly this many residues.")
	flag.IntVar(&minCount, "min-count", 0, "Drop epitopes observed fewer than this many times.")
	flag.IntVar(&nrows, "nrows", 0, "Read only the first N rows of the dataset.")
	flag.BoolVar(&humanOnly, "human", true, "Restrict to human assay records.")
	flag.BoolVar(&groupByAllele, "group-by-allele", false, "Keep assays against different alleles as separate groups.")
	flag.Parse()

	if input == "" && sqlite == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	src, err := openSource(input, sqlite, table)
	if err != nil {
		log.Fatalln(err)
	}

	opts := iedb.Options{
		Criteria: iedb.Criteria{
			HumanOnly:     humanOnly,
			MHCClass:      iedb.MHCClass(mhcClass),
			HLA:           hla,
			ExcludeHLA:    excludeHLA,
			PeptideLength: peptideLength,
			AssayGroup:    assayGroup,
		},
		NRows:         nrows,
		GroupByAllele: groupByAllele,
		MinCount:      minCount,
	}

	loader := &iedb.Loader{TCellSource: src, Log: log.New(os.Stderr, "", 0)}
	groups, err := loader.TCellValues(opts)
	if err != nil {
		log.Fatalln(err)
	}

	fractions := make([]float64, len(groups))
	var unanimousPos, unanimousNeg int
	for i, g := range groups {
		fractions[i] = g.PositiveFraction
		if g.PositiveFraction >= 1 {
			unanimousPos++
		} else if g.PositiveFraction <= 0 {
			unanimousNeg++
		}
	}

	fmt.Printf("Epitope groups: %d\n", len(groups))
	fmt.Printf("Unanimously positive: %d\n", unanimousPos)
	fmt.Printf("Unanimously negative: %d\n", unanimousNeg)
	fmt.Printf("Contradictory: %d\n", len(groups)-unanimousPos-unanimousNeg)
	if len(fractions) > 0 {
		fmt.Printf("Mean positive fraction: %.4f\n", stat.Mean(fractions, nil))
		fmt.Printf("StdDev positive fraction: %.4f\n", stat.StdDev(fractions, nil))
	}
}

func openSource(input, sqlite, table string) (iedb.Source, error) {
	if input != "" {
		return &iedb.CSVSource{Path: input}, nil
	}

	db, err := iedb.OpenSQLite(sqlite)
	if err != nil {
		return nil, err
	}

	return &iedb.SQLSource{DB: db, Table: table}, nil
}
