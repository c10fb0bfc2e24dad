package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release of the cmyk command.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/cmyk"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cmyk version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "cmyk v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
