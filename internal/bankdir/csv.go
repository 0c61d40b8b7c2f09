package bankdir

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/jbub/banking/swift"
)

// Header is the CSV header for bank-directory.csv.
const Header = "country,bank_code,bic,name"

const (
	numFields   = 4
	colCountry  = 0
	colBankCode = 1
	colBIC      = 2
	colName     = 3
)

// ReadEntries reads all entries from a bank-directory.csv reader.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading bank directory CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := unmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes entries to a bank-directory.csv writer (including header).
func WriteEntries(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		row := make([]string, numFields)
		row[colCountry] = e.Country
		row[colBankCode] = e.BankCode
		row[colBIC] = e.BIC
		row[colName] = e.Name
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func unmarshalEntry(record []string) (Entry, error) {
	e := Entry{
		Country:  strings.ToUpper(strings.TrimSpace(record[colCountry])),
		BankCode: strings.ToUpper(strings.TrimSpace(record[colBankCode])),
		BIC:      strings.ToUpper(strings.TrimSpace(record[colBIC])),
		Name:     strings.TrimSpace(record[colName]),
	}

	if len(e.Country) != 2 {
		return Entry{}, fmt.Errorf("invalid country code %q", record[colCountry])
	}
	if e.BankCode == "" {
		return Entry{}, fmt.Errorf("missing bank code")
	}
	if err := swift.Validate(e.BIC); err != nil {
		return Entry{}, fmt.Errorf("invalid BIC %q: %w", record[colBIC], err)
	}
	return e, nil
}
