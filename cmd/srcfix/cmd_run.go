package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"srcfix/internal/batch"
	"srcfix/internal/config"
	"srcfix/internal/status"
)

var (
	dryRun  bool
	jsonOut bool
)

// runCmd executes the configured batch once
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply the configured fixes to every target file",
	Long: `Reads each target file, applies its configured fix operations in order,
and writes the file back only when the result differs. Files are isolated:
a missing or unreadable file is reported and skipped, never fatal.

Exit status is non-zero when any file recorded an error; "nothing to fix"
is success.`,
	RunE: runBatch,
}

// checkCmd runs detectors only
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run detectors only and report deficits, changing nothing",
	RunE:  runCheck,
}

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "log what would change without writing")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print the run metrics as JSON")
}

func loadEntries() ([]batch.Entry, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return cfg.Entries()
}

func runBatch(cmd *cobra.Command, args []string) error {
	entries, err := loadEntries()
	if err != nil {
		return err
	}

	runner := batch.NewRunner(logger)
	runner.DryRun = dryRun
	report := runner.Run(entries)

	if jsonOut {
		data, err := json.MarshalIndent(status.Snapshot(report), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		printReport(report)
	}

	if errored := report.Errored(); errored > 0 {
		return fmt.Errorf("%d of %d files failed", errored, report.Total)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	entries, err := loadEntries()
	if err != nil {
		return err
	}

	report := batch.NewRunner(logger).Run(config.CheckOnly(entries))
	for _, f := range report.Files {
		for _, rep := range f.Reports {
			fmt.Printf("%s: %s deficit of %d (%d declared, %d fulfilled)\n",
				f.Path, rep.Detector, rep.Deficit, rep.Declarations, rep.Fulfillments)
		}
	}
	if report.Deficits() == 0 {
		fmt.Println("No deficits found")
	}

	if errored := report.Errored(); errored > 0 {
		return fmt.Errorf("%d of %d files failed", errored, report.Total)
	}
	return nil
}

func printReport(report *batch.Report) {
	for _, f := range report.Files {
		switch {
		case f.Err != nil:
			fmt.Printf("error: %s\n", f.Error)
		case f.Changed && dryRun:
			fmt.Printf("Would fix: %s\n", f.Path)
		case f.Changed:
			fmt.Printf("Fixed: %s\n", f.Path)
		}
		for _, rep := range f.Reports {
			fmt.Printf("Found %d unfulfilled declarations in %s\n", rep.Deficit, f.Path)
		}
	}
	fmt.Printf("\nFixed %d of %d files\n", report.Fixed, report.Total)
}
