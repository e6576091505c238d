package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string

	rootCmd = &cobra.Command{
		Use:           "celes",
		Short:         "celes project tooling",
		Long:          "celes reads and validates Project.toml files for the celes language tooling.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command and returns whatever error a
// subcommand's RunE produced, so main can map it to an exit code.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	return rootCmd.Execute()
}

// newLogger builds the logrus.FieldLogger every subcommand logs
// through, honoring --log-level the way the teacher's debug lexer
// constructor (NewWithDebug) gates its own trace output.
func newLogger() logrus.FieldLogger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
}
