package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/cmyk/internal/logging"
	"github.com/mesh-intelligence/cmyk/internal/paths"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long:  "Create the configuration directory and a default config.yaml. An existing file is left untouched.",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	configDir := a.flags.configDir
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	path := paths.ConfigFile(configDir)
	written, err := writeConfigIfMissing(path)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	a.log.V(logging.DEBUG).Info("init", "path", path, "written", written)

	if written {
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Config already exists:", path)
	}
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{Output: defaultOutput})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
