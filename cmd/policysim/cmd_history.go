package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/urban-sandbox/internal/persistence"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List archived runs, or show one in full",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openArchive()
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		res, err := db.GetRun(args[0])
		if errors.Is(err, persistence.ErrNotFound) {
			return fmt.Errorf("no archived run %q", args[0])
		}
		if err != nil {
			return err
		}
		printResult(out, res)
		return nil
	}

	runs, err := db.RecentRuns(historyLimit)
	if err != nil {
		return err
	}
	total, err := db.CountRuns()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("%s archived runs", humanize.Comma(int64(total)))))
	for _, r := range runs {
		fmt.Fprintf(out, "%s  %s  %-2s %2dy  %s\n",
			mutedStyle.Render(r.ID),
			supportBar(r.Support),
			r.Locale,
			r.Years,
			r.Policy,
		)
		fmt.Fprintf(out, "    %s\n", mutedStyle.Render(humanize.Time(r.CreatedAt)))
	}
	return nil
}
