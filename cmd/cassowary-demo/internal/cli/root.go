package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// log is shared by every subcommand so --verbose has one place to take
// effect.
var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "cassowary-demo",
	Short: "Exercises the cassowary constraint solver and layout package.",
	Long:  "cassowary-demo is a small toolbox for poking at the cassowary constraint solver and the layout package built on top of it.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every solver mutation at debug level")
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(layoutCmd)
}
