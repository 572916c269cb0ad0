package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available styles",
	Long: `List every registered style, built-in and from the config file,
with its output sample rate and target peak level.`,
	Args: cobra.NoArgs,
	RunE: runStyles,
}

func runStyles(cmd *cobra.Command, _ []string) error {
	reg, err := cfg.Registry(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, id := range reg.Identifiers() {
		p, _ := reg.Lookup(id)
		marker := ""
		if id == reg.Fallback() {
			marker = " (fallback)"
		}
		fmt.Fprintf(out, "%-*s %6d Hz %6.1f dBFS  %s%s\n",
			styleColumnWidth, id, p.SampleRate, p.TargetPeakDB, p.Description, marker)
	}
	return nil
}
