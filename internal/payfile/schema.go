package payfile

import (
	"strings"

	"github.com/labpay-dev/labpay/internal/normalize"
)

// schema extracts the raw name/IBAN/amount strings for one row of a
// specific export format. The bool result is false for structurally blank
// lines, which are skipped without a rejection.
type schema interface {
	extract(rec []string, header map[string]int) (rawRow, bool)
}

// detectSchema picks the format by the presence of the legacy "adress"
// column, which only the v5+ combo-pay export carries.
func detectSchema(header map[string]int) schema {
	if _, ok := header["adress"]; ok {
		return comboSchema{}
	}
	return legacySchema{}
}

// legacySchema handles pre-v6 exports: a single "Name" column holding
// "<IBAN>, <name>", the amount in "Profit", and "Computer" used only as a
// presence check for real participant rows.
type legacySchema struct{}

func (legacySchema) extract(rec []string, header map[string]int) (rawRow, bool) {
	nameField := field(rec, header, "Name")
	profit := field(rec, header, "Profit")
	computer := field(rec, header, "Computer")
	if nameField == "" || profit == "" || computer == "" {
		return rawRow{}, false
	}

	// The first comma-split segment is the IBAN, the remainder the name.
	ibanPart, namePart, found := strings.Cut(nameField, ",")
	raw := rawRow{
		name:   Unknown,
		iban:   strings.ReplaceAll(strings.TrimSpace(ibanPart), " ", ""),
		amount: profit,
	}
	if found {
		raw.name = normalize.Transliterate(strings.TrimSpace(namePart))
	}
	return raw, true
}

// comboSchema handles v5+ combo-pay exports with discrete firstName,
// lastName, adress and Payment columns.
type comboSchema struct{}

func (comboSchema) extract(rec []string, header map[string]int) (rawRow, bool) {
	first := field(rec, header, "firstName")
	last := field(rec, header, "lastName")
	adress := field(rec, header, "adress")
	payment := field(rec, header, "Payment")

	name := normalize.Transliterate(strings.TrimSpace(first + " " + last))
	if name == "" || adress == "" || payment == "" {
		return rawRow{}, false
	}

	return rawRow{
		name:   name,
		iban:   strings.ToUpper(strings.ReplaceAll(adress, " ", "")),
		amount: payment,
	}, true
}

func field(rec []string, header map[string]int, col string) string {
	i, ok := header[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
