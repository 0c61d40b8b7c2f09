package sepa

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/labpay-dev/labpay/internal/id"
	"github.com/labpay-dev/labpay/internal/model"
)

// RowError reports a payment row the exporter refused, with enough context
// for the user to locate it in the preview.
type RowError struct {
	Index int // 1-based row index in export order
	Name  string
	IBAN  string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (%s - %s): %v", e.Index, e.Name, e.IBAN, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Build assembles a pain.001.001.03 document from the payer and quantized
// export rows. All rows are validated before any serialization happens, so
// a failure never produces a partial document.
func Build(payer model.Payer, rows []model.ExportRow, created time.Time) (*Document, error) {
	if payer.Name == "" || payer.IBAN == "" {
		return nil, fmt.Errorf("payer name and IBAN are required")
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no payments to export")
	}

	var ctrlSum int64
	txs := make([]CdtTrfTxInf, 0, len(rows))
	for i, row := range rows {
		if err := validateRow(row); err != nil {
			return nil, &RowError{Index: i + 1, Name: row.Name, IBAN: row.IBAN, Err: err}
		}
		ctrlSum += row.AmountCents

		tx := CdtTrfTxInf{
			PmtID: PmtID{EndToEndID: row.EndToEndID},
			Amt: Amt{InstdAmt: InstdAmt{
				Value: centsString(row.AmountCents),
				Ccy:   payer.Currency,
			}},
			Cdtr:     Party{Nm: row.Name},
			CdtrAcct: CashAccount{ID: AccountID{IBAN: row.IBAN}},
		}
		if row.BIC != "" {
			tx.CdtrAgt = &Agent{FinInstnID: FinInstnID{BIC: row.BIC}}
		}
		if row.Description != "" {
			tx.RmtInf = &RmtInf{Ustrd: row.Description}
		}
		txs = append(txs, tx)
	}

	pmtInf := PmtInf{
		PmtInfID:    id.MessageID(created),
		PmtMtd:      "TRF",
		BtchBookg:   true,
		NbOfTxs:     len(txs),
		CtrlSum:     centsString(ctrlSum),
		PmtTpInf:    PmtTpInf{SvcLvl: SvcLvl{Cd: "SEPA"}},
		ReqdExctnDt: rows[0].ExecutionDate.Format("2006-01-02"),
		Dbtr:        Party{Nm: payer.Name},
		DbtrAcct:    CashAccount{ID: AccountID{IBAN: payer.IBAN}},
		ChrgBr:      "SLEV",
		CdtTrfTxInf: txs,
	}
	if payer.BIC != "" {
		pmtInf.DbtrAgt = &Agent{FinInstnID: FinInstnID{BIC: payer.BIC}}
	}

	return &Document{
		Xmlns: namespace,
		CstmrCdtTrfInitn: CstmrCdtTrfInitn{
			GrpHdr: GrpHdr{
				MsgID:    id.MessageID(created),
				CreDtTm:  created.Format("2006-01-02T15:04:05"),
				NbOfTxs:  len(txs),
				CtrlSum:  centsString(ctrlSum),
				InitgPty: Party{Nm: payer.Name},
			},
			PmtInf: pmtInf,
		},
	}, nil
}

// Encode writes the document as indented XML with the standard header.
func (d *Document) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing XML header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}

func validateRow(row model.ExportRow) error {
	if row.Name == "" {
		return fmt.Errorf("missing payee name")
	}
	if row.IBAN == "" {
		return fmt.Errorf("missing IBAN")
	}
	if row.AmountCents <= 0 {
		return fmt.Errorf("amount must be positive, got %s", centsString(row.AmountCents))
	}
	if row.EndToEndID == "" {
		return fmt.Errorf("missing end-to-end identifier")
	}
	return nil
}

// centsString renders integer minor units as a major-unit decimal string.
func centsString(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
