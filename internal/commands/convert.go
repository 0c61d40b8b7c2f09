package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/labpay-dev/labpay/internal/auditlog"
	"github.com/labpay-dev/labpay/internal/bankdir"
	"github.com/labpay-dev/labpay/internal/batch"
	"github.com/labpay-dev/labpay/internal/config"
	"github.com/labpay-dev/labpay/internal/iban"
	"github.com/labpay-dev/labpay/internal/id"
	"github.com/labpay-dev/labpay/internal/model"
	"github.com/labpay-dev/labpay/internal/normalize"
	"github.com/labpay-dev/labpay/internal/payfile"
	"github.com/labpay-dev/labpay/internal/report"
	"github.com/labpay-dev/labpay/internal/sepa"
	"github.com/labpay-dev/labpay/internal/textenc"
)

type convertOptions struct {
	configPath string
	outDir     string
	reference  string
	experiment string
	adds       []string
	adjust     string
	execDays   int
	dryRun     bool
}

func newConvertCommand() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <file.pay>",
		Short: "Convert a payment export into a SEPA batch file and summary PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", config.FileName, "settings file with payer details")
	cmd.Flags().StringVar(&opts.outDir, "out", ".", "output directory for the batch file and summary")
	cmd.Flags().StringVar(&opts.reference, "reference", "", "payment reference text (required)")
	cmd.Flags().StringVar(&opts.experiment, "experiment", "", "experiment/session label (required)")
	cmd.Flags().StringArrayVar(&opts.adds, "add", nil, `surplus participant as "name;iban;amount" (repeatable)`)
	cmd.Flags().StringVar(&opts.adjust, "adjust", "", "signed delta added to every amount, e.g. -2.00")
	cmd.Flags().IntVar(&opts.execDays, "execution-days", 2, "days from today until the requested execution date")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "stop after the preview, write nothing")
	_ = cmd.MarkFlagRequired("reference")
	_ = cmd.MarkFlagRequired("experiment")

	return cmd
}

func runConvert(out io.Writer, payPath string, opts convertOptions) error {
	payer, root, err := loadPayer(opts)
	if err != nil {
		return err
	}

	banks, err := bankdir.Load(root)
	if err != nil {
		return err
	}

	b, rejected, err := importFile(payPath, banks, payer, root)
	if err != nil {
		return err
	}
	printRejected(out, rejected)

	if err := applyEdits(b, banks, opts); err != nil {
		return err
	}

	printPreview(out, b)

	if opts.dryRun {
		fmt.Fprintln(out, "Dry run: no files written.")
		return nil
	}

	return export(out, b, opts, root)
}

// loadPayer reads the settings file, validates the payer IBAN and fills in
// the per-run reference and experiment labels. The workspace root is the
// settings file's directory.
func loadPayer(opts convertOptions) (model.Payer, string, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return model.Payer{}, "", err
	}

	acct, err := iban.Parse(cfg.Payer.IBAN)
	if err != nil {
		return model.Payer{}, "", fmt.Errorf("payer IBAN in %s is not valid: %w", opts.configPath, err)
	}

	reference := strings.TrimSpace(opts.reference)
	experiment := strings.TrimSpace(opts.experiment)
	if reference == "" || experiment == "" {
		return model.Payer{}, "", fmt.Errorf("reference and experiment must not be empty")
	}

	payer := model.Payer{
		Name:       cfg.Payer.Name,
		IBAN:       acct.String(),
		BIC:        strings.TrimSpace(cfg.Payer.BIC),
		Currency:   strings.ToUpper(strings.TrimSpace(cfg.Currency)),
		Reference:  reference,
		Experiment: experiment,
	}
	if payer.Name == "" || payer.Currency == "" {
		return model.Payer{}, "", fmt.Errorf("payer name and currency must be set in %s", opts.configPath)
	}

	root := filepath.Dir(opts.configPath)
	return payer, root, nil
}

// importFile decodes and parses the payment export into a fresh batch.
func importFile(payPath string, banks *bankdir.Directory, payer model.Payer, root string) (*batch.Batch, []model.RejectedRow, error) {
	raw, err := os.ReadFile(payPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading payment file: %w", err)
	}

	text, err := textenc.Decode(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("importing %s: %w", payPath, err)
	}

	res, err := payfile.Parse(text, banks)
	if errors.Is(err, payfile.ErrNoPayments) {
		return nil, nil, fmt.Errorf("importing %s: %w (%d rows rejected)", payPath, err, len(res.Rejected))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("importing %s: %w", payPath, err)
	}

	b := batch.New(payer, res.Accepted)

	logErr := auditlog.Append(root, []auditlog.Entry{{
		Timestamp: time.Now(),
		Action:    "import",
		File:      filepath.Base(payPath),
		Rows:      b.Len(),
		Total:     b.Total().StringFixed(2),
		Reference: payer.Reference,
	}})
	if logErr != nil {
		return nil, nil, logErr
	}

	return b, res.Rejected, nil
}

// applyEdits performs the manual editing step: surplus participants first,
// then the bulk amount adjustment.
func applyEdits(b *batch.Batch, banks *bankdir.Directory, opts convertOptions) error {
	for _, add := range opts.adds {
		parts := strings.Split(add, ";")
		if len(parts) != 3 {
			return fmt.Errorf("invalid --add %q: want \"name;iban;amount\"", add)
		}
		if err := b.AddRow(banks, parts[0], parts[1], parts[2]); err != nil {
			return fmt.Errorf("adding participant: %w", err)
		}
	}

	if opts.adjust != "" {
		delta, err := payfile.ParseAmount(opts.adjust)
		if err != nil {
			return fmt.Errorf("invalid --adjust %q: %w", opts.adjust, err)
		}
		b.AdjustAll(delta)
	}
	return nil
}

func printRejected(out io.Writer, rejected []model.RejectedRow) {
	if len(rejected) == 0 {
		return
	}
	fmt.Fprintf(out, "Warning: %d rows were discarded due to invalid IBANs or parsing errors:\n", len(rejected))
	for _, r := range rejected {
		fmt.Fprintf(out, "  %s | IBAN: %s\n", r.Name, r.IBAN)
	}
	fmt.Fprintln(out)
}

func printPreview(out io.Writer, b *batch.Batch) {
	fmt.Fprintf(out, "%-5s %-30s %-26s %-12s %10s\n", "Index", "Name", "IBAN", "BIC", "Amount")
	for i, row := range b.Rows() {
		fmt.Fprintf(out, "%-5d %-30s %-26s %-12s %10s\n", i+1, row.Name, row.IBAN, row.BIC, row.Amount.StringFixed(2))
	}
	fmt.Fprintf(out, "Total: %s %s (%d payments)\n\n", b.Total().StringFixed(2), b.Payer.Currency, b.Len())
}

// export serializes the batch file and summary PDF. Both documents are
// rendered in memory first so a failure never leaves a partial file.
func export(out io.Writer, b *batch.Batch, opts convertOptions, root string) error {
	now := time.Now()
	execDate := now.AddDate(0, 0, opts.execDays)

	rows := b.ExportRows(execDate, id.NewGenerator(now))
	doc, err := sepa.Build(b.Payer, rows, now)
	if err != nil {
		return fmt.Errorf("building batch file: %w", err)
	}

	var xmlBuf bytes.Buffer
	if err := doc.Encode(&xmlBuf); err != nil {
		return err
	}

	var pdfBuf bytes.Buffer
	err = report.Write(&pdfBuf, report.Params{
		Experiment: b.Payer.Experiment,
		Currency:   b.Payer.Currency,
		Reference:  b.Payer.Reference,
		Rows:       b.Rows(),
		Total:      b.Total(),
		Generated:  now,
	})
	if err != nil {
		return err
	}

	base := normalize.Filename(b.Payer.Experiment) + "_" + normalize.Filename(b.Payer.Reference)
	xmlPath := filepath.Join(opts.outDir, base+".xml")
	pdfPath := filepath.Join(opts.outDir, base+".pdf")

	if err := os.WriteFile(xmlPath, xmlBuf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing batch file: %w", err)
	}
	if err := os.WriteFile(pdfPath, pdfBuf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing summary PDF: %w", err)
	}

	logErr := auditlog.Append(root, []auditlog.Entry{{
		Timestamp: now,
		Action:    "export",
		File:      filepath.Base(xmlPath),
		Rows:      b.Len(),
		Total:     b.Total().StringFixed(2),
		Reference: b.Payer.Reference,
	}})
	if logErr != nil {
		return logErr
	}

	fmt.Fprintf(out, "Wrote %s\n", xmlPath)
	fmt.Fprintf(out, "Wrote %s\n", pdfPath)
	return nil
}
