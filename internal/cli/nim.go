package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/wizardgames-client/internal/entity"
	"github.com/rocketscienceinc/wizardgames-client/internal/flavor"
	"github.com/rocketscienceinc/wizardgames-client/internal/nim"
	"github.com/rocketscienceinc/wizardgames-client/internal/session"
	"github.com/rocketscienceinc/wizardgames-client/internal/store"
)

// wizardgames nim
func Nim(sess *session.PileSession) *cobra.Command {
	return &cobra.Command{
		Use:   "nim",
		Short: "Play the stone-counting game against Hans",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`nim starts a match of the stone-counting game.

			The pile starts with 21 stones. On your turn you take one, two
			or three stones; Hans then takes his share. Whoever takes the
			last stone wins.

			Enter a number between 1 and 3 to take stones. "reset"
			restarts the match, "quit" leaves the table.`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return playNim(cmd, sess)
		},
	}
}

func playNim(cmd *cobra.Command, sess *session.PileSession) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	update, err := sess.Reset(ctx)
	if err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}
	fmt.Fprintln(out, update.StatusMessage)
	fmt.Fprintln(out, flavor.Line(flavor.Greeting))
	renderPile(out, update.Remaining)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		promptNim(out, sess.Snapshot())
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit":
			return nil
		case "reset":
			update, err = sess.Reset(ctx)
			fmt.Fprintln(out, update.StatusMessage)
			if err != nil {
				continue
			}
			renderPile(out, update.Remaining)
			continue
		}

		amount, parseErr := strconv.Atoi(line)
		if parseErr != nil {
			fmt.Fprintln(out, `Enter a number between 1 and 3, "reset" or "quit".`)
			continue
		}

		update = takeStones(ctx, out, sess, amount)
		renderPile(out, update.Remaining)
	}

	return nil
}

// takeStones forwards one take to the session, showing a spinner for the
// round trip.
func takeStones(ctx context.Context, out io.Writer, sess *session.PileSession, amount int) session.PileUpdate {
	submits := submitsTake(sess.Snapshot(), amount)

	var spin *spinner.Spinner
	if submits {
		spin = spinner.New(spinner.CharSets[spinCharset], 100*time.Millisecond)
		spin.Suffix = " " + flavor.Line(flavor.Thinking)
		spin.Start()
	}

	update, _ := sess.Take(ctx, amount)

	if spin != nil {
		spin.Stop()
	}

	if update.TakenByOpponent > 0 {
		fmt.Fprintf(out, "Hans takes %d.\n", update.TakenByOpponent)
	}

	if update.StatusMessage != "" {
		fmt.Fprintln(out, update.StatusMessage)
	}

	return update
}

// submitsTake reports whether the amount will go out as a request, which is
// when the round-trip spinner is warranted.
func submitsTake(snap store.PileSnapshot, amount int) bool {
	return snap.Phase == entity.PhaseIdle && nim.IsLegalTake(snap.Remaining, amount)
}

func promptNim(out io.Writer, snap store.PileSnapshot) {
	if snap.Phase == entity.PhaseTerminal {
		if line := flavor.Line(flavor.ForOutcome(snap.Outcome)); line != "" {
			fmt.Fprintln(out, line)
		}
		fmt.Fprint(out, `Match over. "reset" or "quit" > `)
		return
	}

	if options := nim.TakeOptions(snap.Remaining); len(options) > 0 {
		fmt.Fprintf(out, "take 1-%d > ", options[len(options)-1])
		return
	}

	fmt.Fprint(out, "> ")
}
