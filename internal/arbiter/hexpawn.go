package arbiter

import (
	"context"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/wizardgames-client/internal/entity"
)

// BoardDelta is the server-confirmed outcome of one hexapawn round trip: the
// new committed board, the arbiter's countermove when it made one, and the
// terminal outcome when the match ended.
type BoardDelta struct {
	Board        entity.Board
	GameOver     bool
	Outcome      string
	Message      string
	OpponentMove *entity.Move
}

type moveRequest struct {
	FromPos [2]int `json:"from_pos"`
	ToPos   [2]int `json:"to_pos"`
}

type boardResponse struct {
	Error    string       `json:"error"`
	Board    entity.Board `json:"board"`
	GameOver bool         `json:"game_over"`
	Winner   string       `json:"winner"`
	Message  string       `json:"message"`
	AIFrom   *[2]int      `json:"ai_from"`
	AITo     *[2]int      `json:"ai_to"`
}

// HexpawnClient talks to the hexapawn arbiter service.
type HexpawnClient struct {
	client *client
}

func NewHexpawnClient(logger *slog.Logger, baseURL string, timeout time.Duration) *HexpawnClient {
	return &HexpawnClient{
		client: newClient(logger, "hexpawn-arbiter", baseURL, timeout),
	}
}

// SubmitMove sends the player's move to the arbiter and returns the
// confirmed delta, including the arbiter's own countermove when present.
func (that *HexpawnClient) SubmitMove(ctx context.Context, move entity.Move) (*BoardDelta, error) {
	request := moveRequest{
		FromPos: [2]int{move.From.Row, move.From.Col},
		ToPos:   [2]int{move.To.Row, move.To.Col},
	}

	var response boardResponse
	if err := that.client.postJSON(ctx, "/move", request, &response); err != nil {
		return nil, err
	}

	return response.toDelta()
}

// ResetMatch asks the arbiter for a freshly initialized match.
func (that *HexpawnClient) ResetMatch(ctx context.Context) (*BoardDelta, error) {
	var response boardResponse
	if err := that.client.postJSON(ctx, "/reset", nil, &response); err != nil {
		return nil, err
	}

	return response.toDelta()
}

// FetchState pulls the arbiter's current view of the match, used to
// resynchronize the local mirror.
func (that *HexpawnClient) FetchState(ctx context.Context) (*BoardDelta, error) {
	var response boardResponse
	if err := that.client.getJSON(ctx, "/get_game_state", &response); err != nil {
		return nil, err
	}

	return response.toDelta()
}

func (that *boardResponse) toDelta() (*BoardDelta, error) {
	if that.Error != "" {
		return nil, &Fault{Kind: FaultRejected, Message: that.Error}
	}

	delta := &BoardDelta{
		Board:    that.Board,
		GameOver: that.GameOver,
		Outcome:  that.Winner,
		Message:  that.Message,
	}

	if that.AIFrom != nil && that.AITo != nil {
		delta.OpponentMove = &entity.Move{
			From: entity.Position{Row: that.AIFrom[0], Col: that.AIFrom[1]},
			To:   entity.Position{Row: that.AITo[0], Col: that.AITo[1]},
		}
	}

	return delta, nil
}
