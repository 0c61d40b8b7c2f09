package main

import (
	"os"

	"github.com/labpay-dev/labpay/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
