package arbiter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rocketscienceinc/wizardgames-client/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHexpawnClient_SubmitMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Success response decodes into a delta", func(t *testing.T) {
		// Given: an arbiter answering with a board, a countermove and a message
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/move", r.URL.Path)

			var request map[string][]int
			require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			assert.Equal(t, []int{2, 1}, request["from_pos"])
			assert.Equal(t, []int{1, 1}, request["to_pos"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"board": [[2,0,2],[0,2,0],[1,0,1]],
				"game_over": false,
				"winner": null,
				"message": "Every move brings you closer to the inevitable.",
				"ai_from": [0,1],
				"ai_to": [1,1]
			}`))
		}))
		defer server.Close()

		client := NewHexpawnClient(testLogger(), server.URL, time.Second)

		// When: submitting a move
		delta, err := client.SubmitMove(ctx, entity.Move{
			From: entity.Position{Row: 2, Col: 1},
			To:   entity.Position{Row: 1, Col: 1},
		})

		// Then: the delta mirrors the wire payload
		require.NoError(t, err)
		assert.Equal(t, entity.Board{
			{entity.CellOpponent, entity.CellEmpty, entity.CellOpponent},
			{entity.CellEmpty, entity.CellOpponent, entity.CellEmpty},
			{entity.CellPlayer, entity.CellEmpty, entity.CellPlayer},
		}, delta.Board)
		assert.False(t, delta.GameOver)
		assert.Equal(t, entity.OutcomeNone, delta.Outcome)
		assert.Equal(t, "Every move brings you closer to the inevitable.", delta.Message)
		require.NotNil(t, delta.OpponentMove)
		assert.Equal(t, entity.Position{Row: 0, Col: 1}, delta.OpponentMove.From)
		assert.Equal(t, entity.Position{Row: 1, Col: 1}, delta.OpponentMove.To)
	})

	t.Run("Omitted countermove fields leave OpponentMove unset", func(t *testing.T) {
		// Given: a terminal response without ai_from/ai_to
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{
				"board": [[0,0,0],[0,0,0],[1,1,1]],
				"game_over": true,
				"winner": "player",
				"message": "You win!"
			}`))
		}))
		defer server.Close()

		client := NewHexpawnClient(testLogger(), server.URL, time.Second)

		// When: submitting a move
		delta, err := client.SubmitMove(ctx, entity.Move{})

		// Then: the delta carries the outcome and no countermove
		require.NoError(t, err)
		assert.True(t, delta.GameOver)
		assert.Equal(t, entity.OutcomePlayerWin, delta.Outcome)
		assert.Nil(t, delta.OpponentMove)
	})

	t.Run("Rejection payload becomes a rejected fault", func(t *testing.T) {
		// Given: an arbiter rejecting the move inside a 200 response
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"error": "Invalid move!", "board": [[2,2,2],[0,0,0],[1,1,1]]}`))
		}))
		defer server.Close()

		client := NewHexpawnClient(testLogger(), server.URL, time.Second)

		// When: submitting a move
		delta, err := client.SubmitMove(ctx, entity.Move{})

		// Then: a rejected fault with the verbatim message, no delta
		require.Error(t, err)
		assert.Nil(t, delta)

		var fault *Fault
		require.ErrorAs(t, err, &fault)
		assert.Equal(t, FaultRejected, fault.Kind)
		assert.Equal(t, "Invalid move!", fault.Message)
	})

	t.Run("Non-200 status becomes a transport fault", func(t *testing.T) {
		// Given: an arbiter answering 500
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewHexpawnClient(testLogger(), server.URL, time.Second)

		// When: submitting a move
		_, err := client.SubmitMove(ctx, entity.Move{})

		// Then: a transport fault
		var fault *Fault
		require.ErrorAs(t, err, &fault)
		assert.Equal(t, FaultTransport, fault.Kind)
	})

	t.Run("Unreachable arbiter becomes a transport fault", func(t *testing.T) {
		// Given: a server that is already down
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		client := NewHexpawnClient(testLogger(), server.URL, time.Second)

		// When: submitting a move
		_, err := client.SubmitMove(ctx, entity.Move{})

		// Then: a transport fault
		var fault *Fault
		require.ErrorAs(t, err, &fault)
		assert.Equal(t, FaultTransport, fault.Kind)
	})
}

func TestHexpawnClient_ResetMatch(t *testing.T) {
	// Given: an arbiter answering the reset with the initial board
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/reset", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"board": [[2,2,2],[0,0,0],[1,1,1]],
			"game_over": false,
			"message": "Game reset. You go first!"
		}`))
	}))
	defer server.Close()

	client := NewHexpawnClient(testLogger(), server.URL, time.Second)

	// When: resetting the match
	delta, err := client.ResetMatch(context.Background())

	// Then: the delta holds the initial configuration
	require.NoError(t, err)
	assert.Equal(t, entity.NewBoard(), delta.Board)
	assert.False(t, delta.GameOver)
	assert.Equal(t, "Game reset. You go first!", delta.Message)
}

func TestHexpawnClient_FetchState(t *testing.T) {
	// Given: an arbiter exposing its current view of the match
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/get_game_state", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"board": [[2,0,2],[0,1,0],[1,0,1]],
			"game_over": false,
			"winner": null
		}`))
	}))
	defer server.Close()

	client := NewHexpawnClient(testLogger(), server.URL, time.Second)

	// When: fetching the state
	delta, err := client.FetchState(context.Background())

	// Then: the board mirrors the server's view
	require.NoError(t, err)
	assert.Equal(t, entity.CellPlayer, delta.Board.At(entity.Position{Row: 1, Col: 1}))
	assert.False(t, delta.GameOver)
}
