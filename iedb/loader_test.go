package iedb

import (
	"math"
	"testing"
)

// sliceSource serves an in-memory record slice as a dataset.
type sliceSource []Record

func (s sliceSource) Read(limit int) ([]Record, error) {
	if limit > 0 && limit < len(s) {
		return s[:limit], nil
	}
	return s, nil
}

func testLoader() *Loader {
	tcell := sliceSource{
		rec("SIINFEKL", "Homo sapiens", "HLA-A*02:01", "Positive", ""),
		rec("SIINFEKL", "Homo sapiens", "HLA-A*02:01", "Positive", ""),
		rec("SIINFEKL", "Homo sapiens", "HLA-A*02:01", "Negative", ""),
		rec("GILGFVFTL", "Homo sapiens", "HLA-A*02:01", "Positive", ""),
	}
	mhc := sliceSource{
		rec("SIINFEKL", "Homo sapiens", "HLA-A*02:01", "Positive-High", ""),
		rec("NLVPMVATV", "Homo sapiens", "HLA-A*02:01", "Negative", ""),
	}
	return &Loader{TCellSource: tcell, MHCSource: mhc}
}

func TestLoaderValuesEndToEnd(t *testing.T) {
	groups, err := testLoader().TCellValues(Options{
		Criteria: Criteria{HumanOnly: true},
		MinCount: 2,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(groups) != 1 {
		t.Fatalf("expected only SIINFEKL to meet the count threshold, got %+v", groups)
	}
	g := groups[0]
	if g.Epitope != "SIINFEKL" || g.Count != 3 {
		t.Errorf("unexpected group: %+v", g)
	}
	if math.Abs(g.PositiveFraction-2.0/3.0) > 1e-9 {
		t.Errorf("unexpected positive fraction: %v", g.PositiveFraction)
	}
}

func TestLoaderClassesEndToEnd(t *testing.T) {
	set, err := testLoader().TCellClasses(Options{
		Criteria:    Criteria{HumanOnly: true},
		MinCount:    2,
		NoisyLabels: NoisyMajority,
	})
	if err != nil {
		t.Fatal(err)
	}

	// 2/3 positive results beats the 0.5 majority threshold.
	if _, ok := set.Positive["SIINFEKL"]; !ok {
		t.Errorf("expected SIINFEKL in the positive set, got %+v", set)
	}
	if _, ok := set.Negative["SIINFEKL"]; ok {
		t.Error("SIINFEKL must not be in both sets")
	}
}

func TestLoaderNgrams(t *testing.T) {
	loader := testLoader()
	res, err := loader.TCellNgrams(Options{
		Criteria:    Criteria{HumanOnly: true},
		NoisyLabels: NoisyMajority,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Transformer == nil {
		t.Fatal("expected a transformer")
	}
	if len(res.X) != 2 || len(res.Y) != 2 {
		t.Fatalf("expected 2 labeled rows, got X=%d Y=%d", len(res.X), len(res.Y))
	}
	if res.Y[0] != 1 || res.Y[1] != 1 {
		// Both SIINFEKL (majority) and GILGFVFTL (unanimous) are positive.
		t.Errorf("unexpected labels: %v", res.Y)
	}
}

func TestLoaderTCellVsMHC(t *testing.T) {
	rows, err := testLoader().TCellVsMHC(Options{Criteria: Criteria{HumanOnly: true}})
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 1 {
		t.Fatalf("expected only the shared epitope, got %+v", rows)
	}
	r := rows[0]
	if r.Epitope != "SIINFEKL" || r.MHCFraction != 1 {
		t.Errorf("unexpected joined row: %+v", r)
	}
	if math.Abs(r.TCellFraction-2.0/3.0) > 1e-9 {
		t.Errorf("unexpected T-cell fraction: %v", r.TCellFraction)
	}
}

func TestLoaderNRows(t *testing.T) {
	records, err := testLoader().TCell(Options{NRows: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("expected the row cap to apply, got %d records", len(records))
	}
}

func TestLoaderMissingSource(t *testing.T) {
	loader := &Loader{}
	if _, err := loader.TCell(Options{}); err == nil {
		t.Error("expected an error when no source is configured")
	}
}
