package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"srcfix/internal/batch"
	"srcfix/internal/watch"
)

var debounce time.Duration

// watchCmd re-runs the batch whenever a target file changes
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the target files and re-apply fixes on change",
	Long: `Watches every configured target file and re-runs the batch after a quiet
period following the last change. Fix operations are idempotent, so the run
triggered by srcfix's own write-back settles immediately. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before re-running")
}

func runWatch(cmd *cobra.Command, args []string) error {
	entries, err := loadEntries()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watch.New(logger, batch.NewRunner(logger), entries, debounce)
	w.OnRun = func(report *batch.Report) {
		fmt.Printf("Fixed %d of %d files (%d errors)\n",
			report.Fixed, report.Total, report.Errored())
	}

	fmt.Printf("Watching %d files, debounce %s\n", len(entries), debounce)
	return w.Run(ctx)
}
