package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/urban-sandbox/internal/narrative"
)

var samplesLocale string

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Print the sample policies and evaluation criteria",
	RunE: func(cmd *cobra.Command, args []string) error {
		locale := samplesLocale
		if locale == "" {
			locale = cfg.Simulation.DefaultLocale
		}
		l := narrative.ParseLocale(locale)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, headingStyle.Render("Sample policies"))
		for i, p := range narrative.SamplePolicies(l) {
			fmt.Fprintf(out, "%2d. %s\n", i+1, p)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, headingStyle.Render("Criteria"))
		for _, c := range narrative.Criteria(l) {
			fmt.Fprintf(out, "  • %s\n", c)
		}
		return nil
	},
}

func init() {
	samplesCmd.Flags().StringVarP(&samplesLocale, "locale", "l", "", "en or zh")
}
