// Package payfile parses tab-delimited experiment payment exports into
// validated payment rows. Two historical schemas exist; the presence of
// the literal "adress" header column selects between them.
package payfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/labpay-dev/labpay/internal/bankdir"
	"github.com/labpay-dev/labpay/internal/iban"
	"github.com/labpay-dev/labpay/internal/model"
)

// ErrNoPayments means no row survived validation; the import must not
// proceed to an empty batch.
var ErrNoPayments = errors.New("no valid payment entries found")

// Unknown is the placeholder for a rejected-row field that was never
// computed before the row failed.
const Unknown = "(unknown)"

// Result partitions the input rows. Rejected rows are diagnostics only and
// never enter a batch.
type Result struct {
	Accepted []model.PaymentRow
	Rejected []model.RejectedRow
}

// Parse reads decoded payment-file text and validates every row. Rows with
// missing required fields are structurally blank export lines and are
// dropped silently; rows that fail validation are collected in Rejected.
// When nothing is accepted, Parse returns ErrNoPayments together with the
// partial Result so callers can still show the rejected rows.
func Parse(text string, banks *bankdir.Directory) (*Result, error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading payment file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("payment file has no header row")
	}

	header := headerIndex(records[0])
	sc := detectSchema(header)

	res := &Result{}
	for _, rec := range records[1:] {
		// All per-row fields live in this iteration's rawRow so a failed
		// row can never report a previous row's values.
		raw, ok := sc.extract(rec, header)
		if !ok {
			continue
		}

		row, rej, err := buildRow(raw, banks)
		if err != nil {
			res.Rejected = append(res.Rejected, rej)
			continue
		}
		res.Accepted = append(res.Accepted, row)
	}

	if len(res.Accepted) == 0 {
		return res, ErrNoPayments
	}
	return res, nil
}

// rawRow holds the unvalidated field strings extracted for one input row.
type rawRow struct {
	name   string // transliterated display name, Unknown if never derived
	iban   string // raw IBAN string as found in the file
	amount string // raw amount string
}

// buildRow validates one extracted row. On failure the RejectedRow carries
// only fields derived from this same row.
func buildRow(raw rawRow, banks *bankdir.Directory) (model.PaymentRow, model.RejectedRow, error) {
	rej := model.RejectedRow{Name: raw.name, IBAN: raw.iban}

	// A row whose name was never derived (legacy line without the comma
	// separator) is not payable, even when the remaining segment happens
	// to be a valid IBAN.
	if raw.name == Unknown {
		return model.PaymentRow{}, rej, errors.New("name segment missing")
	}

	amount, err := ParseAmount(raw.amount)
	if err != nil {
		return model.PaymentRow{}, rej, err
	}

	acct, err := iban.Parse(raw.iban)
	if err != nil {
		return model.PaymentRow{}, rej, err
	}

	bic, _ := banks.Lookup(acct.CountryCode(), acct.BankCode())

	return model.PaymentRow{
		Name:   raw.name,
		IBAN:   acct.String(),
		BIC:    bic,
		Amount: amount,
	}, model.RejectedRow{}, nil
}

// ParseAmount parses a decimal amount accepting both "." and "," as the
// decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	return idx
}
