package cli

import (
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/wizardgames-client/internal/session"
)

// Root builds the command tree. Each game gets its own subcommand driving
// its session; the sessions are wired by the application layer.
func Root(hexpawnSession *session.BoardSession, nimSession *session.PileSession) *cobra.Command {
	root := &cobra.Command{
		Use:   "wizardgames",
		Short: "Challenge Hans the divination wizard",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(Hexpawn(hexpawnSession))
	root.AddCommand(Nim(nimSession))

	return root
}
