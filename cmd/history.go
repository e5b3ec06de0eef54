package cmd

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"domain-checker/feature/domains"

	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyOutput string
)

// historyCmd lists recorded probes of a name.
var historyCmd = &cobra.Command{
	Use:   "history <name>",
	Short: "Show recent checks of a domain name",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Maximum rows (default from HISTORY_RECENT_LIMIT)")
	historyCmd.Flags().StringVarP(&historyOutput, "output", "o", outputText, "Output format: text, json or yaml")
	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := validateOutput(historyOutput); err != nil {
		return err
	}

	rt, err := newRuntime(true)
	if err != nil {
		return err
	}
	defer rt.Close()

	records, err := rt.service.History(context.Background(), args[0], historyLimit)
	if err != nil {
		if errors.Is(err, domains.ErrHistoryDisabled) {
			return fmt.Errorf("%w: check the database settings", err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if historyOutput != outputText {
		return writeStructured(out, historyOutput, records)
	}

	if len(records) == 0 {
		fmt.Fprintf(out, "no checks recorded for %s\n", args[0])
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHECKED AT\tOUTCOME\tELAPSED\tRUN\tERROR")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.CheckedAt.Local().Format(time.DateTime),
			r.Outcome,
			(time.Duration(r.ElapsedMillis) * time.Millisecond).String(),
			r.RunID,
			r.Error,
		)
	}
	return tw.Flush()
}
