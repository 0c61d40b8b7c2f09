package sepa

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labpay-dev/labpay/internal/model"
)

func testPayer() model.Payer {
	return model.Payer{
		Name:     "My Company GmbH",
		IBAN:     "DE02100100109307118603",
		BIC:      "PBNKDEFFXXX",
		Currency: "EUR",
	}
}

func exportRow(name string, cents int64) model.ExportRow {
	return model.ExportRow{
		Name:          name,
		IBAN:          "DE89370400440532013000",
		BIC:           "COBADEFFXXX",
		AmountCents:   cents,
		ExecutionDate: time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
		Description:   "Lab Payment",
		EndToEndID:    "LP-20250831-ABCDEF123456",
	}
}

func TestBuildComputesTotals(t *testing.T) {
	doc, err := Build(testPayer(), []model.ExportRow{
		exportRow("Jane Doe", 1050),
		exportRow("John Doe", 750),
	}, time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 2, doc.CstmrCdtTrfInitn.GrpHdr.NbOfTxs)
	assert.Equal(t, "18.00", doc.CstmrCdtTrfInitn.GrpHdr.CtrlSum)
	assert.Equal(t, "18.00", doc.CstmrCdtTrfInitn.PmtInf.CtrlSum)
	assert.Equal(t, "2025-09-02", doc.CstmrCdtTrfInitn.PmtInf.ReqdExctnDt)
	assert.Equal(t, "SEPA", doc.CstmrCdtTrfInitn.PmtInf.PmtTpInf.SvcLvl.Cd)
	assert.True(t, doc.CstmrCdtTrfInitn.PmtInf.BtchBookg)
}

func TestBuildRejectsNonPositiveAmount(t *testing.T) {
	rows := []model.ExportRow{
		exportRow("Jane Doe", 1050),
		exportRow("Broke Guy", 0),
	}
	_, err := Build(testPayer(), rows, time.Now())

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 2, rowErr.Index)
	assert.Equal(t, "Broke Guy", rowErr.Name)
	assert.Equal(t, "DE89370400440532013000", rowErr.IBAN)
	assert.Contains(t, err.Error(), "row 2")
}

func TestBuildRejectsMissingName(t *testing.T) {
	r := exportRow("", 500)
	_, err := Build(testPayer(), []model.ExportRow{r}, time.Now())

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 1, rowErr.Index)
}

func TestBuildOmitsMissingBIC(t *testing.T) {
	r := exportRow("No Bic", 500)
	r.BIC = ""
	doc, err := Build(testPayer(), []model.ExportRow{r}, time.Now())
	require.NoError(t, err)
	assert.Nil(t, doc.CstmrCdtTrfInitn.PmtInf.CdtTrfTxInf[0].CdtrAgt, "missing BIC is not an error")
}

func TestEncode(t *testing.T) {
	doc, err := Build(testPayer(), []model.ExportRow{exportRow("Jöhn transliterated earlier", 1050)},
		time.Date(2025, 8, 31, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.Encode(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `xmlns="urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"`)
	assert.Contains(t, out, "<InstdAmt Ccy=\"EUR\">10.50</InstdAmt>")
	assert.Contains(t, out, "<EndToEndId>LP-20250831-ABCDEF123456</EndToEndId>")
	assert.Contains(t, out, "<IBAN>DE89370400440532013000</IBAN>")
	assert.Contains(t, out, "<ChrgBr>SLEV</ChrgBr>")
}

func TestCentsString(t *testing.T) {
	assert.Equal(t, "10.50", centsString(1050))
	assert.Equal(t, "0.05", centsString(5))
	assert.Equal(t, "-1.50", centsString(-150))
	assert.Equal(t, "0.00", centsString(0))
}
