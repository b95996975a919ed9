package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/mcoot/blockgame-go/internal/cli.Version=..."
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(Version)
			return nil
		},
	}
}
