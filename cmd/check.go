package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"domain-checker/core/grid"
	"domain-checker/core/reconcile"
	"domain-checker/feature/domains"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkWorkers   int
	checkMinDelay  time.Duration
	checkMaxDelay  time.Duration
	checkDryRun    bool
	checkOutput    string
	checkNoHistory bool
)

// checkCmd reconciles a domain table.
var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Fill the blank cells of a domain table",
	Long: `Reads a table whose first column lists domain names and whose header row
lists extensions, probes every blank cell and writes the answers back in place.
Cells that already hold a value are never touched.

Examples:
  # Reconcile a local workbook
  check domains.xlsx

  # Four probes in flight, no courtesy delay
  check domains.csv --workers 4 --min-delay 0 --max-delay 0

  # A table kept in object storage, report as YAML without saving
  check s3://domains/list.xlsx --dry-run --output yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&checkWorkers, "workers", 0, "Probes in flight (default from RECONCILE_WORKERS)")
	checkCmd.Flags().DurationVar(&checkMinDelay, "min-delay", 0, "Minimum pause before each probe")
	checkCmd.Flags().DurationVar(&checkMaxDelay, "max-delay", 0, "Maximum pause before each probe")
	checkCmd.Flags().BoolVar(&checkDryRun, "dry-run", false, "Probe but do not write the table")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", outputText, "Output format: text, json or yaml")
	checkCmd.Flags().BoolVar(&checkNoHistory, "no-history", false, "Do not record probes in the history database")

	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := validateOutput(checkOutput); err != nil {
		return err
	}

	location, err := resolveLocation(args[0])
	if err != nil {
		return err
	}

	rt, err := newRuntime(!checkNoHistory)
	if err != nil {
		return err
	}
	defer rt.Close()

	opts := domains.Options{
		Workers:   checkWorkers,
		DryRun:    checkDryRun,
		NoHistory: checkNoHistory,
	}
	if cmd.Flags().Changed("min-delay") || cmd.Flags().Changed("max-delay") {
		minDelay := time.Duration(rt.cfg.Reconcile.MinDelayMillis) * time.Millisecond
		maxDelay := time.Duration(rt.cfg.Reconcile.MaxDelayMillis) * time.Millisecond
		if cmd.Flags().Changed("min-delay") {
			minDelay = checkMinDelay
		}
		if cmd.Flags().Changed("max-delay") {
			maxDelay = checkMaxDelay
		}
		delay := reconcile.NewDelayPolicy(minDelay, maxDelay)
		opts.Delay = &delay
	}

	out := cmd.OutOrStdout()
	if checkOutput == outputText {
		opts.Observers = append(opts.Observers, domains.ConsoleObserver(out))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := rt.service.Check(ctx, location, opts)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			rt.logger.Warn("Interrupted, table left unchanged", zap.String("location", location))
		}
		return err
	}

	if checkOutput != outputText {
		return writeStructured(out, checkOutput, report)
	}

	s := report.Summary
	fmt.Fprintf(out, "checked %d, registered %d, not registered %d, errors %d, kept %d (%s)\n",
		s.Checked, s.Registered, s.Available, s.Errors, s.Preserved, s.Duration.Round(time.Millisecond))
	if report.Saved {
		fmt.Fprintf(out, "file updated: %s\n", location)
	} else {
		fmt.Fprintf(out, "dry run: %s not written\n", location)
	}
	return nil
}

// resolveLocation makes local paths absolute and checks that they exist.
// Object locations are passed through.
func resolveLocation(arg string) (string, error) {
	if strings.HasPrefix(arg, grid.ObjectScheme) {
		if _, _, err := grid.ParseObjectLocation(arg); err != nil {
			return "", err
		}
		return arg, nil
	}

	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", arg, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file not found: %s", abs)
		}
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, expected a table file", abs)
	}
	return abs, nil
}
