package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"rescue-dashboard/internal/domain/presets"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var presetsJSON bool

// presetsCmd imprime las reglas de cada rescue type
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Print the rescue type presets and their queries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printPresets(cmd.OutOrStdout(), presetsJSON)
	},
}

func init() {
	presetsCmd.Flags().BoolVar(&presetsJSON, "json", false, "print each preset's store query as JSON")
}

func printPresets(w io.Writer, asJSON bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLABEL\tSEX\tWEEKS\tBREEDS")

	for _, r := range presets.All() {
		weeks := "-"
		if !r.Unconstrained() {
			weeks = fmt.Sprintf("%g-%g", r.MinWeeks, r.MaxWeeks)
		}
		sex := r.Sex
		if sex == "" {
			sex = "-"
		}
		breeds := strings.Join(r.Breeds, ", ")
		if breeds == "" {
			breeds = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Name, r.Label, sex, weeks, breeds)

		if asJSON {
			b, err := json.Marshal(r.Query().Map())
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "\tquery: %s\t\t\t\n", b)
		}
	}
	return tw.Flush()
}
