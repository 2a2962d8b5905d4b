package iedb

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
	"github.com/gocarina/gocsv"
	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

// Source yields raw assay records from one of the IEDB datasets. A
// limit of zero or less reads the whole dataset; a positive limit
// reads at most that many records.
type Source interface {
	Read(limit int) ([]Record, error)
}

// CSVSource reads records from a compact IEDB CSV export.
type CSVSource struct {
	Path string

	// Comma is the field delimiter. When zero, the delimiter is
	// sniffed from the file contents.
	Comma rune
}

// Read parses the CSV file into records. Leading whitespace within
// fields is trimmed, matching the formatting of the compact exports.
func (s *CSVSource) Read(limit int) ([]Record, error) {
	fileBytes, err := ioutil.ReadFile(s.Path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	comma := s.Comma
	if comma == 0 {
		comma = DetermineDelimiter(bytes.NewReader(fileBytes))
	}

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = comma
		r.LazyQuotes = true
		r.TrimLeadingSpace = true
		return r
	})

	records := []*Record{}
	if err := gocsv.UnmarshalBytes(fileBytes, &records); err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, *r)
	}

	return out, nil
}

// DetermineDelimiter returns the single most likely rune that would
// delimit the values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// SQLSource reads records from a table holding the five assay columns
// (epitope, host_organism, mhc_allele, qualitative_measure,
// assay_group), e.g. a local SQLite cache of the IEDB exports.
type SQLSource struct {
	DB    *sqlx.DB
	Table string
}

// Read selects up to limit records from the table.
func (s *SQLSource) Read(limit int) ([]Record, error) {
	query := fmt.Sprintf("SELECT epitope, host_organism, mhc_allele, qualitative_measure, assay_group FROM %s", s.Table)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	records := []Record{}
	if err := s.DB.Select(&records, query); err != nil {
		return nil, pfx.Err(err)
	}

	return records, nil
}

// OpenSQLite connects to a SQLite database at the given path.
func OpenSQLite(path string) (*sqlx.DB, error) {
	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return db, nil
}
