// iedb2csv filters and aggregates an IEDB assay dataset and writes the
// resulting epitope groups (or the joined T-cell vs MHC table) as CSV.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/hammerlab/epitopes/iedb"
)

func main() {
	var tcellPath, mhcPath, output string
	var mhcClass, peptideLength, minCount, nrows int
	var humanOnly, groupByAllele, joined bool

	flag.StringVar(&tcellPath, "tcell", "", "Path to the compact T-cell assay CSV export.")
	flag.StringVar(&mhcPath, "mhc", "", "Path to the compact MHC binding CSV export.")
	flag.StringVar(&output, "output", "", "Output CSV path. If empty, writes to stdout.")
	flag.IntVar(&mhcClass, "class", 0, "Restrict to an MHC class (1 or 2; 0 for both).")
	flag.IntVar(&peptideLength, "peptide-length", 0, "Restrict to epitopes of exactly this many residues.")
	flag.IntVar(&minCount, "min-count", 0, "Drop epitopes observed fewer than this many times.")
	flag.IntVar(&nrows, "nrows", 0, "Read only the first N rows of each dataset.")
	flag.BoolVar(&humanOnly, "human", true, "Restrict to human assay records.")
	flag.BoolVar(&groupByAllele, "group-by-allele", false, "Keep assays against different alleles as separate groups.")
	flag.BoolVar(&joined, "joined", false, "Write the joined T-cell vs MHC table instead of one dataset's groups.")
	flag.Parse()

	if tcellPath == "" && mhcPath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	loader := &iedb.Loader{Log: log.New(os.Stderr, "", 0)}
	if tcellPath != "" {
		loader.TCellSource = &iedb.CSVSource{Path: tcellPath}
	}
	if mhcPath != "" {
		loader.MHCSource = &iedb.CSVSource{Path: mhcPath}
	}

	opts := iedb.Options{
		Criteria: iedb.Criteria{
			HumanOnly:     humanOnly,
			MHCClass:      iedb.MHCClass(mhcClass),
			PeptideLength: peptideLength,
		},
		NRows:         nrows,
		GroupByAllele: groupByAllele,
		MinCount:      minCount,
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		out = f
	}

	if joined {
		if tcellPath == "" || mhcPath == "" {
			log.Fatalln("-joined requires both -tcell and -mhc")
		}
		rows, err := loader.TCellVsMHC(opts)
		if err != nil {
			log.Fatalln(err)
		}
		if err := gocsv.Marshal(&rows, out); err != nil {
			log.Fatalln(err)
		}
		return
	}

	var groups []iedb.EpitopeGroup
	var err error
	if tcellPath != "" {
		groups, err = loader.TCellValues(opts)
	} else {
		groups, err = loader.MHCValues(opts)
	}
	if err != nil {
		log.Fatalln(err)
	}

	if err := gocsv.Marshal(&groups, out); err != nil {
		log.Fatalln(err)
	}
}
