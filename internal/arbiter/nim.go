package arbiter

import (
	"context"
	"log/slog"
	"time"
)

// PileDelta is the server-confirmed outcome of one counting game round trip.
// TakenByOpponent is zero when the arbiter did not move (player won or the
// response omitted it).
type PileDelta struct {
	Remaining       int
	TakenByOpponent int
	GameOver        bool
	Outcome         string
	Message         string
}

type takeRequest struct {
	StonesTaken int `json:"stones_taken"`
}

type pileResponse struct {
	Error           string `json:"error"`
	Stones          int    `json:"stones"`
	StonesTakenByAI int    `json:"stones_taken_by_ai"`
	GameOver        bool   `json:"game_over"`
	Winner          string `json:"winner"`
	Message         string `json:"message"`
}

// NimClient talks to the counting game arbiter service.
type NimClient struct {
	client *client
}

func NewNimClient(logger *slog.Logger, baseURL string, timeout time.Duration) *NimClient {
	return &NimClient{
		client: newClient(logger, "nim-arbiter", baseURL, timeout),
	}
}

// SubmitTake sends the player's take amount to the arbiter and returns the
// confirmed delta.
func (that *NimClient) SubmitTake(ctx context.Context, amount int) (*PileDelta, error) {
	request := takeRequest{StonesTaken: amount}

	var response pileResponse
	if err := that.client.postJSON(ctx, "/play", request, &response); err != nil {
		return nil, err
	}

	return response.toDelta()
}

// ResetMatch asks the arbiter for a freshly initialized match.
func (that *NimClient) ResetMatch(ctx context.Context) (*PileDelta, error) {
	var response pileResponse
	if err := that.client.postJSON(ctx, "/reset", nil, &response); err != nil {
		return nil, err
	}

	return response.toDelta()
}

func (that *pileResponse) toDelta() (*PileDelta, error) {
	if that.Error != "" {
		return nil, &Fault{Kind: FaultRejected, Message: that.Error}
	}

	return &PileDelta{
		Remaining:       that.Stones,
		TakenByOpponent: that.StonesTakenByAI,
		GameOver:        that.GameOver,
		Outcome:         that.Winner,
		Message:         that.Message,
	}, nil
}
