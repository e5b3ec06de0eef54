package cmd

import (
	"context"
	"fmt"

	"domain-checker/feature/domains"

	"github.com/spf13/cobra"
)

var probeOutput string

// probeCmd checks names without a table.
var probeCmd = &cobra.Command{
	Use:   "probe <name> [name...]",
	Short: "Check whether domain names are registered",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProbe,
}

func init() {
	probeCmd.Flags().StringVarP(&probeOutput, "output", "o", outputText, "Output format: text, json or yaml")
	RootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	if err := validateOutput(probeOutput); err != nil {
		return err
	}

	rt, err := newRuntime(false)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := context.Background()
	reports := make([]domains.ProbeReport, 0, len(args))
	for _, name := range args {
		reports = append(reports, rt.service.Probe(ctx, name))
	}

	out := cmd.OutOrStdout()
	if probeOutput != outputText {
		return writeStructured(out, probeOutput, reports)
	}

	failed := 0
	for _, rep := range reports {
		switch {
		case rep.Error != "":
			failed++
			fmt.Fprintf(out, "[ERROR CHECKING] %s: %s\n", rep.Name, rep.Error)
		case rep.Outcome == "registered":
			fmt.Fprintf(out, "[REGISTERED] %s\n", rep.Name)
		default:
			fmt.Fprintf(out, "[NOT REGISTERED] %s\n", rep.Name)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d probes failed", failed, len(reports))
	}
	return nil
}
