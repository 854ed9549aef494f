package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:          "ubl2cii",
	Short:        "Convert UBL 2.1 e-invoices to CII D16B",
	Long:         "ubl2cii converts UBL 2.1 invoice and credit note documents to the UN/CEFACT Cross Industry Invoice D16B syntax.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds a production logger at the given level. The logger
// writes to stderr; stdout is reserved for the converted document.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
