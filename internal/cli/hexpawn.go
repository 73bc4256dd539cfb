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
	"github.com/rocketscienceinc/wizardgames-client/internal/hexpawn"
	"github.com/rocketscienceinc/wizardgames-client/internal/session"
	"github.com/rocketscienceinc/wizardgames-client/internal/store"
)

const spinCharset = 11

// wizardgames hexpawn
func Hexpawn(sess *session.BoardSession) *cobra.Command {
	var resume bool

	command := &cobra.Command{
		Use:   "hexpawn",
		Short: "Play the three-pawn board game against Hans",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`hexpawn starts a match of the three-pawn board game.

			Your pawns (W) start on the bottom row and advance toward the
			top. A pawn moves one square straight ahead into an empty
			square, or one square diagonally ahead to capture one of Hans'
			pawns (B).

			Enter "row col" to tap a square: the first tap selects a pawn,
			tapping a starred square commits the move, tapping anything
			else drops the selection. "reset" restarts the match, "quit"
			leaves the table.`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return playHexpawn(cmd, sess, resume)
		},
	}

	command.Flags().BoolVar(&resume, "resume", false, "Resynchronize an ongoing match instead of starting fresh")

	return command
}

func playHexpawn(cmd *cobra.Command, sess *session.BoardSession, resume bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if resume {
		if _, err := sess.Sync(ctx); err != nil {
			return fmt.Errorf("failed to resume match: %w", err)
		}
	} else {
		update, err := sess.Reset(ctx)
		if err != nil {
			return fmt.Errorf("failed to start match: %w", err)
		}
		fmt.Fprintln(out, update.StatusMessage)
	}

	fmt.Fprintln(out, flavor.Line(flavor.Greeting))
	renderBoard(out, sess.Snapshot())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		promptHexpawn(out, sess.Snapshot())
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
			update, err := sess.Reset(ctx)
			fmt.Fprintln(out, update.StatusMessage)
			if err != nil {
				continue
			}
			renderBoard(out, update.BoardSnapshot)
			continue
		}

		pos, err := parsePosition(line)
		if err != nil {
			fmt.Fprintln(out, `Enter "row col" (0-indexed), "reset" or "quit".`)
			continue
		}

		update := tapSquare(ctx, out, sess, pos)
		renderBoard(out, update.BoardSnapshot)
	}

	return nil
}

// tapSquare forwards one square tap to the session, showing a spinner for
// the round trip when the tap commits a move.
func tapSquare(ctx context.Context, out io.Writer, sess *session.BoardSession, pos entity.Position) session.BoardUpdate {
	commits := commitsMove(sess.Snapshot(), pos)

	var spin *spinner.Spinner
	if commits {
		spin = spinner.New(spinner.CharSets[spinCharset], 100*time.Millisecond)
		spin.Suffix = " " + flavor.Line(flavor.Thinking)
		spin.Start()
	}

	update, _ := sess.Select(ctx, pos)

	if spin != nil {
		spin.Stop()
	}

	if update.OpponentMove != nil {
		move := update.OpponentMove
		fmt.Fprintf(out, "Hans moves (%d,%d) to (%d,%d).\n", move.From.Row, move.From.Col, move.To.Row, move.To.Col)
	}

	if update.StatusMessage != "" {
		fmt.Fprintln(out, update.StatusMessage)
	}

	return update
}

// commitsMove reports whether tapping pos will submit a move, which is when
// the round-trip spinner is warranted.
func commitsMove(snap store.BoardSnapshot, pos entity.Position) bool {
	if snap.Selection == nil {
		return false
	}

	return hexpawn.IsLegal(snap.Board, entity.Move{From: *snap.Selection, To: pos})
}

// promptHexpawn prints the prompt. A finished match still accepts input so
// the player can reset or quit.
func promptHexpawn(out io.Writer, snap store.BoardSnapshot) {
	if snap.Phase == entity.PhaseTerminal {
		if line := flavor.Line(flavor.ForOutcome(snap.Outcome)); line != "" {
			fmt.Fprintln(out, line)
		}
		fmt.Fprint(out, `Match over. "reset" or "quit" > `)
		return
	}

	if len(hexpawn.PlayerMoves(snap.Board)) == 0 {
		fmt.Fprintln(out, "None of your pawns can move.")
	}

	fmt.Fprint(out, "> ")
}

func parsePosition(line string) (entity.Position, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Position{}, fmt.Errorf("expected two fields, got %d", len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Position{}, fmt.Errorf("invalid row: %w", err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Position{}, fmt.Errorf("invalid col: %w", err)
	}

	return entity.Position{Row: row, Col: col}, nil
}
