// Package cli implements the cmyk command-line interface, a host for the
// cmyk, cmyk_mix and cmyk_scale functions.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/cmyk/internal/logging"
	"github.com/mesh-intelligence/cmyk/internal/paths"
	"github.com/mesh-intelligence/cmyk/pkg/functions"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	output    string
	verbose   bool
}

// app is the state shared by the subcommands of one root command.
type app struct {
	flags    rootFlags
	cfg      *viper.Viper
	log      logr.Logger
	registry *functions.Registry
}

// NewRootCmd creates the top-level "cmyk" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{
		log:      logr.Discard(),
		registry: functions.NewRegistry(),
	}

	root := &cobra.Command{
		Use:   "cmyk",
		Short: "Construct, mix and scale CMYK colors",
		Long: "cmyk works with CMYK colors whose components are whole percentages.\n" +
			"Component arguments are fractions (0.25) or percentages (25%);\n" +
			"colors are written cmyk(C%,M%,Y%,K%).",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/cmyk)")
	root.PersistentFlags().StringVarP(&a.flags.output, "output", "o", defaultOutput, "output format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(a.newNewCmd())
	root.AddCommand(a.newMixCmd())
	root.AddCommand(a.newScaleCmd())
	root.AddCommand(a.newNormalizeCmd())
	root.AddCommand(a.newCallCmd())
	root.AddCommand(a.newFunctionsCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads the configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.flags.configDir = configDir

	cfg, err := loadConfig(configDir, cmd.Flags())
	if err != nil {
		return sysError(err)
	}
	a.cfg = cfg

	verbosity := logging.INFO
	if cfg.GetBool(cfgKeyVerbose) {
		verbosity = logging.DEBUG
	}
	a.log = logging.NewLogger(cmd.ErrOrStderr(), verbosity)
	a.log.V(logging.DEBUG).Info("configuration loaded",
		"configDir", configDir,
		"configFile", cfg.ConfigFileUsed(),
		"output", cfg.GetString(cfgKeyOutput))
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cmyk:", err)
	}
	os.Exit(exitCode(err))
}

// systemError marks failures of the environment (file system, config) as
// opposed to bad user input.
type systemError struct {
	err error
}

func sysError(err error) error {
	return &systemError{err: err}
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

// exitCode maps an error returned by the root command to a process exit code.
// Color errors and command-line mistakes are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
