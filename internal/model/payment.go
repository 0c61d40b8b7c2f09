package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRow is one payee's validated transfer instruction.
type PaymentRow struct {
	Name   string          // ASCII-transliterated display name
	IBAN   string          // canonical form: upper case, no spaces
	BIC    string          // empty when the bank code is not in the directory
	Amount decimal.Decimal // major currency units
}

// RejectedRow is a row the parser could not validate. It carries the
// best-effort name/IBAN strings available at the point of failure and is
// only ever shown to the user; it never enters a batch.
type RejectedRow struct {
	Name string
	IBAN string
}

// Payer holds the ordering party and batch metadata for an export.
type Payer struct {
	Name       string
	IBAN       string
	BIC        string
	Currency   string
	Reference  string // free-text payment reference, becomes the remittance info
	Experiment string // free-text experiment/session label
}

// ExportRow is a PaymentRow quantized for the wire format. Amounts are
// integer minor units; this is the only representation in which they
// leave decimal form.
type ExportRow struct {
	Name          string // truncated to 70 characters
	IBAN          string
	BIC           string
	AmountCents   int64
	ExecutionDate time.Time
	Description   string // truncated to 140 characters
	EndToEndID    string
}
