// @title       Grazioso Salvare rescue dashboard API
// @version     1.0
// @description Preset filters, table view, breed chart and map over the animal outcomes store.
// @BasePath    /
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Rescue dog candidate dashboard",
	Long: `Dashboard over animal shelter outcomes for Grazioso Salvare.

Available subcommands:
  serve       - Run the HTTP dashboard
  presets     - Print the rescue type presets and their queries
  healthcheck - Probe a running dashboard's /health endpoint`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, presetsCmd, healthcheckCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
