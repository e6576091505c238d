package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LainAmongYou/celes/pkgs/toml"
)

var (
	checkFile string

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Parse a TOML file and report diagnostics without building",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			logger.WithField("file", checkFile).Debug("checking file")

			root, errText, status := toml.Open(checkFile)
			switch status {
			case toml.StatusFileNotFound:
				return fmt.Errorf("%s: not found", checkFile)
			case toml.StatusError:
				return errors.New(errText)
			}
			root.Release()

			logger.WithField("file", checkFile).Info("no diagnostics")
			return nil
		},
	}
)

func init() {
	checkCmd.Flags().StringVar(&checkFile, "file", "Project.toml", "path to the TOML file to check")
}
