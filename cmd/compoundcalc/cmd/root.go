package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "compoundcalc",
	Short: "Compound-interest projection and goal-seeking calculator",
	Long: `compoundcalc projects investment growth under eight compounding
conventions and solves for a missing parameter (contribution, rate, or
duration) against a target future value.

Commands:
  calculate - solve a scenario from a file or flags
  serve     - run the HTTP calculation service`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
