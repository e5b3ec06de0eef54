package cmd

import (
	"fmt"
	"os"

	"domain-checker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "domain-checker",
	Short: "Domain availability table reconciler",
	Long: `Domain Checker fills the blank cells of a domain/extension table with
"Registered" or "Not Registered" by probing DNS or RDAP, leaving every
recorded answer untouched. Tables can be .xlsx or .csv, on disk or in S3.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps to suit a CLI tool
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
