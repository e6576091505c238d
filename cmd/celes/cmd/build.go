package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LainAmongYou/celes/pkgs/toml"
)

var (
	projectFile string

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Read Project.toml and validate the [Build] section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			logger.WithField("file", projectFile).Debug("opening project file")

			root, errText, status := toml.Open(projectFile)
			switch status {
			case toml.StatusFileNotFound:
				return fmt.Errorf("%s: not found", projectFile)
			case toml.StatusError:
				return errors.New(errText)
			}
			defer root.Release()

			if !toml.HasUserValue(root, "Build", "Name") {
				return errors.New("no program name specified")
			}
			name := toml.GetString(root, "Build", "Name")
			logger.WithField("name", name).Info("build configuration valid")
			return nil
		},
	}
)

func init() {
	buildCmd.Flags().StringVar(&projectFile, "file", "Project.toml", "path to the project TOML file")
}
