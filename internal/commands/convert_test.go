package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labpay-dev/labpay/internal/auditlog"
	"github.com/labpay-dev/labpay/internal/config"
)

const comboFile = "firstName\tlastName\tadress\tPayment\n" +
	"Jöhn\tMüller\tDE02 1001 0010 9307 1186 03\t7,50\n" +
	"Jane\tDoe\tDE89370400440532013000\t10.00\n"

func setupWorkspace(t *testing.T, payContent string) (root, payPath string, opts convertOptions) {
	t.Helper()
	root = t.TempDir()
	require.NoError(t, runInit(root))

	payPath = filepath.Join(root, "session1.pay")
	require.NoError(t, os.WriteFile(payPath, []byte(payContent), 0o644))

	opts = convertOptions{
		configPath: filepath.Join(root, config.FileName),
		outDir:     filepath.Join(root, "export"),
		reference:  "Lab Payment 10 July 2025",
		experiment: "Study A - Session 1",
		execDays:   2,
	}
	return root, payPath, opts
}

func TestRunConvertEndToEnd(t *testing.T) {
	root, payPath, opts := setupWorkspace(t, comboFile)

	var out bytes.Buffer
	require.NoError(t, runConvert(&out, payPath, opts))

	base := "Study_A_-_Session_1_Lab_Payment_10_July_2025"
	xmlData, err := os.ReadFile(filepath.Join(opts.outDir, base+".xml"))
	require.NoError(t, err)
	assert.Contains(t, string(xmlData), "pain.001.001.03")
	assert.Contains(t, string(xmlData), "<Nm>Joehn Mueller</Nm>")
	assert.Contains(t, string(xmlData), "<IBAN>DE02100100109307118603</IBAN>")
	assert.Contains(t, string(xmlData), `<InstdAmt Ccy="EUR">7.50</InstdAmt>`)
	assert.Contains(t, string(xmlData), "<CtrlSum>17.50</CtrlSum>")

	pdfData, err := os.ReadFile(filepath.Join(opts.outDir, base+".pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfData, []byte("%PDF")))

	entries, err := auditlog.Read(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "import", entries[0].Action)
	assert.Equal(t, "export", entries[1].Action)
	assert.Equal(t, "17.50", entries[1].Total)

	// Preview is sorted by case-insensitive name.
	preview := out.String()
	assert.Less(t, strings.Index(preview, "Jane Doe"), strings.Index(preview, "Joehn Mueller"))
}

func TestRunConvertDryRunWritesNothing(t *testing.T) {
	_, payPath, opts := setupWorkspace(t, comboFile)
	opts.dryRun = true

	var out bytes.Buffer
	require.NoError(t, runConvert(&out, payPath, opts))
	assert.Contains(t, out.String(), "Dry run")

	matches, err := filepath.Glob(filepath.Join(opts.outDir, "*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRunConvertEditsApplied(t *testing.T) {
	_, payPath, opts := setupWorkspace(t, comboFile)
	opts.adds = []string{"Weiß, Jürgen;DE02 1001 0010 9307 1186 03;5"}
	opts.adjust = "-2,00"

	var out bytes.Buffer
	require.NoError(t, runConvert(&out, payPath, opts))

	preview := out.String()
	assert.Contains(t, preview, "Weiss, Juergen")
	// 7.50 + 10.00 + 5.00 adjusted by -2.00 each = 16.50
	assert.Contains(t, preview, "Total: 16.50 EUR (3 payments)")
}

func TestRunConvertReportsRejectedRows(t *testing.T) {
	content := comboFile + "Bad\tActor\tnot-an-iban\t5.00\n"
	_, payPath, opts := setupWorkspace(t, content)

	var out bytes.Buffer
	require.NoError(t, runConvert(&out, payPath, opts))
	assert.Contains(t, out.String(), "1 rows were discarded")
	assert.Contains(t, out.String(), "Bad Actor")
}

func TestRunConvertEmptyBatchFails(t *testing.T) {
	_, payPath, opts := setupWorkspace(t, "firstName\tlastName\tadress\tPayment\n")

	var out bytes.Buffer
	err := runConvert(&out, payPath, opts)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no valid payment entries")
}

func TestRunConvertInvalidAddFails(t *testing.T) {
	_, payPath, opts := setupWorkspace(t, comboFile)
	opts.adds = []string{"Jane;not-an-iban;5.00"}

	var out bytes.Buffer
	err := runConvert(&out, payPath, opts)
	assert.Error(t, err)
}

func TestRunConvertBadPayerIBANFails(t *testing.T) {
	root, payPath, opts := setupWorkspace(t, comboFile)

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	require.NoError(t, err)
	cfg.Payer.IBAN = "DE00invalid"
	require.NoError(t, config.Save(filepath.Join(root, config.FileName), cfg))

	var out bytes.Buffer
	err = runConvert(&out, payPath, opts)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "payer IBAN")
}
