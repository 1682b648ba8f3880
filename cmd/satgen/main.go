package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var debug bool

func main() {
	log := logrus.New()

	rootCmd := &cobra.Command{
		Use:   "satgen",
		Short: "satgen",
		Long:  "satgen drives the declarative constraint solver in pkg/solver from YAML problem definitions.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newSolveCmd(log))
	rootCmd.AddCommand(newWatchCmd(log))
	rootCmd.AddCommand(newBatchCmd(log))
	rootCmd.AddCommand(newServeCmd(log))

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("satgen failed")
		os.Exit(1)
	}
}
