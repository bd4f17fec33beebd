package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talgya/urban-sandbox/internal/narrative"
	"github.com/talgya/urban-sandbox/internal/regions"
)

var (
	regionsSupport int
	regionsLocale  string
)

var regionsCmd = &cobra.Command{
	Use:   "regions [policy]",
	Short: "Show how a support figure shifts across districts",
	Long: `Without a policy, lists the districts. With a policy, applies the
district adjustment to --support and prints the breakdown.`,
	RunE: runRegionsCmd,
}

func init() {
	regionsCmd.Flags().IntVarP(&regionsSupport, "support", "s", 50, "overall support percentage to adjust")
	regionsCmd.Flags().StringVarP(&regionsLocale, "locale", "l", "", "district names: en or zh")
}

func runRegionsCmd(cmd *cobra.Command, args []string) error {
	if regionsSupport < 0 || regionsSupport > 100 {
		return fmt.Errorf("--support must be within 0..100, got %d", regionsSupport)
	}
	locale := regionsLocale
	if locale == "" {
		locale = cfg.Simulation.DefaultLocale
	}
	l := narrative.ParseLocale(locale)
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, d := range regions.Districts {
			fmt.Fprintf(out, "%-16s %s\n", d.ID, regionName(l, d))
		}
		return nil
	}

	adj := regions.NewAdjuster(nil)
	figures := adj.Adjust(strings.Join(args, " "), regionsSupport)
	printRegions(out, l, figures)
	return nil
}

func regionName(l narrative.Locale, d regions.Region) string {
	if l == narrative.Chinese {
		return d.NameZH
	}
	return d.Name
}

// printRegions writes the districts in table order, skipping any missing.
func printRegions(w io.Writer, l narrative.Locale, figures map[string]int) {
	fmt.Fprintln(w, headingStyle.Render("Districts"))
	for _, d := range regions.Districts {
		v, ok := figures[d.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-22s %s\n", regionName(l, d), supportBar(v))
	}
}
