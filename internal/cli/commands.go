package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cmyk/internal/logging"
	"github.com/mesh-intelligence/cmyk/pkg/cmyk"
)

func (a *app) newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new CYAN MAGENTA YELLOW BLACK",
		Short: "Construct a color from four components",
		Long: "Construct a color. Each component is a fraction between 0 and 1 (0.25)\n" +
			"or a whole percentage between 0 and 100 (25%).",
		Example: "  cmyk new 20% 40% 60% 70%\n  cmyk new 0.2 0.4 0 1",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.callAndWrite(cmd, "cmyk", args)
		},
	}
}

func (a *app) newMixCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "mix COLOR COLOR",
		Short:   "Mix two colors",
		Long:    "Add two colors component by component, capping each at 100%, and normalize the result.",
		Example: "  cmyk mix 'cmyk(75%,50%,0%,0%)' 'cmyk(30%,0%,20%,0%)'",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.callAndWrite(cmd, "cmyk_mix", args)
		},
	}
}

func (a *app) newScaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "scale COLOR PERCENT",
		Short:   "Scale a color by a percentage",
		Long:    "Multiply every component by PERCENT/100 and normalize the result.\nScaling that would push a component over 100% is an error.",
		Example: "  cmyk scale 'cmyk(20%,40%,60%,70%)' 50%",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.callAndWrite(cmd, "cmyk_scale", args)
		},
	}
}

func (a *app) newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize COLOR",
		Short: "Move the gray component of a color into black",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := cmyk.Parse(args[0])
			if err != nil {
				return err
			}
			res := col.Normalize()
			a.log.V(logging.DEBUG).Info("normalized", "color", col.String(), "result", res.String())
			return a.writeColor(cmd.OutOrStdout(), res)
		},
	}
}

func (a *app) newCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "call FUNCTION [ARG...]",
		Short:   "Call a declared function by name",
		Example: "  cmyk call cmyk_scale 'cmyk(20%,40%,60%,70%)' 50%",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.callAndWrite(cmd, args[0], args[1:])
		},
	}
}

func (a *app) newFunctionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the declared functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range a.registry.Functions() {
				fmt.Fprintln(cmd.OutOrStdout(), f.Signature())
			}
			return nil
		},
	}
}

// callAndWrite tags the raw arguments, calls the named function and prints
// the resulting color.
func (a *app) callAndWrite(cmd *cobra.Command, name string, raw []string) error {
	args, err := parseArgs(raw)
	if err != nil {
		return err
	}

	col, err := a.registry.Call(name, args...)
	if err != nil {
		a.log.V(logging.DEBUG).Info("call failed", "function", name, "args", strings.Join(raw, " "), "error", err.Error())
		return err
	}
	a.log.V(logging.DEBUG).Info("call", "function", name, "args", strings.Join(raw, " "), "result", col.String())

	return a.writeColor(cmd.OutOrStdout(), col)
}
