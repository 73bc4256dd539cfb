package arbiter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// FaultKind separates application-level rejections from transport failures.
// The turn orchestrator drives the same rollback transition for both; the
// kind only decides which message the user sees.
type FaultKind string

const (
	FaultRejected  FaultKind = "rejected"
	FaultTransport FaultKind = "transport"
)

// Fault is the single error surface of the sync client. Rejected faults
// carry the arbiter's message verbatim; transport faults carry diagnostic
// detail meant for logs, not for the user.
type Fault struct {
	Kind    FaultKind
	Message string
}

func (that *Fault) Error() string {
	return fmt.Sprintf("%s: %s", that.Kind, that.Message)
}

// client is the HTTP plumbing shared by both game clients.
type client struct {
	logger  *slog.Logger
	baseURL string
	httpc   *http.Client
}

func newClient(logger *slog.Logger, component, baseURL string, timeout time.Duration) *client {
	return &client{
		logger:  logger.With("component", component),
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// postJSON sends a JSON request and decodes the response body into out. Any
// failure to reach the arbiter or to parse its reply comes back as a
// transport Fault; application-level rejections live in the decoded body and
// are the caller's to interpret.
func (that *client) postJSON(ctx context.Context, path string, body, out any) error {
	payload := bytes.NewReader(nil)
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, that.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return that.do(req, out)
}

func (that *client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, that.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	return that.do(req, out)
}

func (that *client) do(req *http.Request, out any) error {
	resp, err := that.httpc.Do(req)
	if err != nil {
		that.logger.Debug("request failed", "path", req.URL.Path, "error", err)
		return &Fault{Kind: FaultTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		that.logger.Debug("unexpected status", "path", req.URL.Path, "status", resp.StatusCode)
		return &Fault{Kind: FaultTransport, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Fault{Kind: FaultTransport, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}

	return nil
}
