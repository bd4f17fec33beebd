package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/urban-sandbox/internal/engine"
	"github.com/talgya/urban-sandbox/internal/narrative"
	"github.com/talgya/urban-sandbox/internal/regions"
)

var (
	runYears      int
	runLocale     string
	runSeed       int64
	runPopulation int
	runStaged     bool
	runSave       bool
	runJSON       bool
	runRegions    bool
)

var runCmd = &cobra.Command{
	Use:   "run <policy>",
	Short: "Simulate one policy and print the report",
	Example: `  policysim run "Increase public housing supply by 30% over 5 years" --years 5
  policysim run "推行智能城市計劃" --locale zh --staged`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulation,
}

func init() {
	runCmd.Flags().IntVarP(&runYears, "years", "y", 0, "trend horizon in years (default from config)")
	runCmd.Flags().StringVarP(&runLocale, "locale", "l", "", "report language: en or zh")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "population seed (0 = config or random)")
	runCmd.Flags().IntVar(&runPopulation, "population", 0, "population size (default from config)")
	runCmd.Flags().BoolVar(&runStaged, "staged", false, "walk the analysis phases with progress output")
	runCmd.Flags().BoolVar(&runSave, "save", false, "archive the result in the run database")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the raw result as JSON")
	runCmd.Flags().BoolVar(&runRegions, "regions", false, "include the per-district breakdown")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var adj *regions.Adjuster
	if runRegions {
		a, closeFn, err := newAdjuster(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		adj = a
	}

	sim, err := newSimulation(runPopulation, runSeed, adj)
	if err != nil {
		return err
	}

	locale := runLocale
	if locale == "" {
		locale = cfg.Simulation.DefaultLocale
	}
	years := runYears
	if years == 0 {
		years = cfg.Simulation.DefaultYears
	}
	req := engine.Request{
		Policy: strings.Join(args, " "),
		Years:  years,
		Locale: narrative.ParseLocale(locale),
	}

	out := cmd.OutOrStdout()
	var res *engine.Result
	if runStaged {
		progress := cmd.ErrOrStderr()
		res, err = sim.RunStaged(ctx, req, func(phase int, message string, percent float64) {
			fmt.Fprintf(progress, "%s %s\n", mutedStyle.Render(fmt.Sprintf("[%5.1f%%]", percent)), message)
		})
	} else {
		res, err = sim.Run(ctx, req)
	}
	if err != nil {
		return err
	}

	if runSave {
		db, err := openArchive()
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.SaveRun(res); err != nil {
			return fmt.Errorf("archive run: %w", err)
		}
		slog.Info("run archived", "run_id", res.RunID, "path", cfg.Storage.Path)
	}

	if runJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printResult(out, res)
	return nil
}

// printResult writes the human-readable report.
func printResult(w io.Writer, res *engine.Result) {
	labels := narrative.LabelsFor(res.Locale)

	fmt.Fprintln(w, titleStyle.Render(res.Policy))
	fmt.Fprintf(w, "%s\n\n", mutedStyle.Render(fmt.Sprintf("run %s · %s citizens · seed %d · %s",
		res.RunID, humanize.Comma(int64(res.Population)), res.Seed, humanize.Time(res.CreatedAt))))

	fmt.Fprintf(w, "%-12s %s\n", labels.Support, supportBar(res.SupportPercentage))
	fmt.Fprintf(w, "%-12s %s\n\n", labels.Opposition, supportBar(100-res.SupportPercentage))

	h := res.HerdingAnalysis
	fmt.Fprintln(w, headingStyle.Render("Herding"))
	fmt.Fprintf(w, "  strong support %s, strong opposition %s\n",
		humanize.Comma(int64(h.StrongSupport)), humanize.Comma(int64(h.StrongOpposition)))
	fmt.Fprintf(w, "  trend %s, strength %d%%, polarization %d%%\n\n", h.DominantTrend, h.HerdingStrength, h.Polarization)

	fmt.Fprintln(w, headingStyle.Render(labels.StrategicRec))
	for _, e := range res.Vulnerabilities {
		fmt.Fprintf(w, "• %s\n", titleStyle.Render(e.Issue))
		fmt.Fprintf(w, "  %s\n", e.Description)
		if e.Reasoning != "" {
			fmt.Fprintf(w, "  %s %s\n", mutedStyle.Render(labels.WhyMatters+":"), e.Reasoning)
		}
		if e.Recommendation != "" {
			fmt.Fprintf(w, "  → %s\n", e.Recommendation)
		}
	}
	fmt.Fprintln(w)

	if len(res.EnvironmentalData) > 0 {
		fmt.Fprintln(w, headingStyle.Render("Indicators"))
		keys := make([]string, 0, len(res.EnvironmentalData))
		for k := range res.EnvironmentalData {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "  %-30s %s\n", k, humanize.FtoaWithDigits(res.EnvironmentalData[k], 1))
		}
	} else {
		fmt.Fprintln(w, mutedStyle.Render(labels.NoMetrics))
	}
	fmt.Fprintln(w)

	if len(res.CitizenVoices) == 0 {
		fmt.Fprintln(w, mutedStyle.Render(labels.NoVoices))
	}
	for _, v := range res.CitizenVoices {
		fmt.Fprintf(w, "  [%s] %s: %q\n", v.Type, v.Demographic, v.Quote)
	}
	fmt.Fprintln(w)

	td := res.TrendData
	fmt.Fprintln(w, headingStyle.Render("Trend"))
	for i := 0; i < td.Len(); i++ {
		fmt.Fprintf(w, "  %2d  %s\n", td.Years[i], supportBar(td.Support[i]))
	}

	if len(res.RegionalSupport) > 0 {
		fmt.Fprintln(w)
		printRegions(w, res.Locale, res.RegionalSupport)
	}

	fmt.Fprintf(w, "\n%s %s\n", mutedStyle.Render(labels.Completed), res.ActivityLabel)
}
