package application

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/wizardgames-client/internal/arbiter"
	"github.com/rocketscienceinc/wizardgames-client/internal/cli"
	"github.com/rocketscienceinc/wizardgames-client/internal/config"
	"github.com/rocketscienceinc/wizardgames-client/internal/session"
)

// RunApp - wires the arbiter clients and game sessions from the config and
// hands them to the command tree.
func RunApp(logger *slog.Logger, conf *config.Config, args []string) error {
	log := logger.With("component", "app")

	timeout := conf.HTTPTimeoutDuration()

	hexpawnClient := arbiter.NewHexpawnClient(logger, conf.Hexpawn.BaseURL, timeout)
	nimClient := arbiter.NewNimClient(logger, conf.Nim.BaseURL, timeout)

	hexpawnSession := session.NewBoardSession(logger, hexpawnClient)
	nimSession := session.NewPileSession(logger, nimClient)

	root := cli.Root(hexpawnSession, nimSession)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	log.Debug("done")

	return nil
}
