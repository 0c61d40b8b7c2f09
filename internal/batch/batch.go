// Package batch holds the editable in-memory payment batch between import
// and export. The batch is owned by a single interactive session; rows are
// kept sorted by case-insensitive name after every mutation.
package batch

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/labpay-dev/labpay/internal/bankdir"
	"github.com/labpay-dev/labpay/internal/iban"
	"github.com/labpay-dev/labpay/internal/id"
	"github.com/labpay-dev/labpay/internal/model"
	"github.com/labpay-dev/labpay/internal/normalize"
	"github.com/labpay-dev/labpay/internal/payfile"
)

const (
	maxNameLen = 70
	maxDescLen = 140
)

// ValidationError describes a rejected manual entry. The batch is left
// unchanged; the caller may retry.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Batch is the editable collection of payment rows plus payer metadata.
type Batch struct {
	Payer model.Payer
	rows  []model.PaymentRow
}

// New creates a Batch from already-validated rows, sorted by name.
func New(payer model.Payer, rows []model.PaymentRow) *Batch {
	b := &Batch{Payer: payer, rows: append([]model.PaymentRow(nil), rows...)}
	b.sortRows()
	return b
}

// Rows returns a copy of the rows in case-insensitive name order. Callers
// must not rely on insertion order.
func (b *Batch) Rows() []model.PaymentRow {
	return append([]model.PaymentRow(nil), b.rows...)
}

// Len returns the number of rows.
func (b *Batch) Len() int { return len(b.rows) }

// AddRow validates and inserts a surplus participant, re-sorting the batch.
// Validation matches the file parser: transliterated name, canonical IBAN,
// "," or "." decimal separator.
func (b *Batch) AddRow(banks *bankdir.Directory, name, rawIBAN, rawAmount string) error {
	name = normalize.Transliterate(strings.TrimSpace(name))
	if name == "" {
		return ValidationError{Field: "name", Value: name, Reason: "must not be empty"}
	}

	acct, err := iban.Parse(rawIBAN)
	if err != nil {
		return ValidationError{Field: "iban", Value: rawIBAN, Reason: err.Error()}
	}

	amount, err := payfile.ParseAmount(rawAmount)
	if err != nil {
		return ValidationError{Field: "amount", Value: rawAmount, Reason: err.Error()}
	}

	bic, _ := banks.Lookup(acct.CountryCode(), acct.BankCode())

	b.rows = append(b.rows, model.PaymentRow{
		Name:   name,
		IBAN:   acct.String(),
		BIC:    bic,
		Amount: amount,
	})
	b.sortRows()
	return nil
}

// AdjustAll adds delta to every row's amount in place. Negative or zero
// results are allowed here; the exporter rejects them at quantization.
func (b *Batch) AdjustAll(delta decimal.Decimal) {
	for i := range b.rows {
		b.rows[i].Amount = b.rows[i].Amount.Add(delta)
	}
}

// Total returns the exact sum of all row amounts.
func (b *Batch) Total() decimal.Decimal {
	total := decimal.Zero
	for _, row := range b.rows {
		total = total.Add(row.Amount)
	}
	return total
}

// ExportRows quantizes the batch for the wire format: names truncated to
// 70 characters, the batch reference truncated to 140 as the per-payment
// description, amounts converted to integer cents with banker's rounding,
// and a fresh end-to-end identifier per row.
func (b *Batch) ExportRows(execDate time.Time, ids *id.Generator) []model.ExportRow {
	desc := truncate(b.Payer.Reference, maxDescLen)

	out := make([]model.ExportRow, 0, len(b.rows))
	for _, row := range b.rows {
		out = append(out, model.ExportRow{
			Name:          truncate(row.Name, maxNameLen),
			IBAN:          row.IBAN,
			BIC:           row.BIC,
			AmountCents:   Cents(row.Amount),
			ExecutionDate: execDate,
			Description:   desc,
			EndToEndID:    ids.EndToEnd(),
		})
	}
	return out
}

// Cents converts a major-unit amount to integer minor units, rounding
// half to even.
func Cents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).RoundBank(0).IntPart()
}

func (b *Batch) sortRows() {
	sort.SliceStable(b.rows, func(i, j int) bool {
		return strings.ToLower(b.rows[i].Name) < strings.ToLower(b.rows[j].Name)
	})
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
