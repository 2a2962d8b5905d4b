package iedb

import "sort"

// JoinedRow pairs an epitope's positive fraction from the T-cell
// response assays with its positive fraction from the MHC binding
// assays.
type JoinedRow struct {
	Epitope       string  `csv:"Epitope Linear Sequence"`
	TCellFraction float64 `csv:"T-cell Positive Fraction"`
	MHCFraction   float64 `csv:"MHC Positive Fraction"`
}

// Join aligns two independently aggregated group tables by epitope and
// keeps only the epitopes present in both. No imputation is done for
// epitopes missing from either side. When a side was grouped by allele
// and contains an epitope more than once, the last group wins for that
// side. Rows are returned sorted by epitope.
func Join(tcell, mhc []EpitopeGroup) []JoinedRow {
	mhcByEpitope := make(map[string]float64, len(mhc))
	for _, g := range mhc {
		mhcByEpitope[g.Epitope] = g.PositiveFraction
	}

	tcellByEpitope := make(map[string]float64, len(tcell))
	for _, g := range tcell {
		tcellByEpitope[g.Epitope] = g.PositiveFraction
	}

	rows := make([]JoinedRow, 0, len(tcellByEpitope))
	for epitope, tf := range tcellByEpitope {
		mf, ok := mhcByEpitope[epitope]
		if !ok {
			continue
		}
		rows = append(rows, JoinedRow{Epitope: epitope, TCellFraction: tf, MHCFraction: mf})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Epitope < rows[j].Epitope })

	return rows
}
