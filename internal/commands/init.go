package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/labpay-dev/labpay/internal/bankdir"
	"github.com/labpay-dev/labpay/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a labpay workspace with default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	for _, d := range []string{"banks", "export", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write labpay.yaml with placeholder payer details.
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}
	if err := config.Save(cfgPath, config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the editable bank-directory overlay seeded with the built-in
	// entries so users can see the expected format.
	f, err := os.Create(filepath.Join(dir, "banks", "bank-directory.csv"))
	if err != nil {
		return fmt.Errorf("creating bank directory file: %w", err)
	}
	defer f.Close()
	if err := bankdir.WriteEntries(f, bankdir.DefaultEntries()); err != nil {
		return fmt.Errorf("writing bank directory: %w", err)
	}

	fmt.Printf("Initialized labpay workspace at %s\n", dir)
	fmt.Printf("Edit %s with your payer banking details before converting.\n", config.FileName)
	return nil
}
