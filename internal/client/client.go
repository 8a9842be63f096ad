// internal/client/client.go
//
// HTTP implementation of game.Service.
// Endpoints:
//   - GET  /dictionary  → [{word, desc}]
//   - GET  /new-game    → 200 ack
//   - POST /check-word  → {mask, isWin, solution?} or non-200 {error}
//
// Notes:
//   - The service identifies players by cookie, so the client keeps a jar.
//   - Transport failures become *game.ServiceUnavailableError; non-200 guess
//     answers become *game.ValidationError.
//   - Only the dictionary fetch is retried.

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/jordle/internal/game"
)

// Config controls the HTTP client.
type Config struct {
	BaseURL string
	// Timeout bounds each request; zero means no timeout.
	Timeout time.Duration
	// DictionaryRetries is the number of extra attempts for GET /dictionary.
	DictionaryRetries uint64
}

// Client talks to the JORDLE game service.
type Client struct {
	base    string
	http    *http.Client
	retries uint64
}

var _ game.Service = (*Client)(nil)

// New builds a Client with its own cookie jar.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("client: empty base url")
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &Client{
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout, Jar: jar},
		retries: cfg.DictionaryRetries,
	}, nil
}

// checkWordReq/Res are the POST /check-word payloads.
type checkWordReq struct {
	Guess         string `json:"guess"`
	AttemptNumber int    `json:"attemptNumber"`
}

type errorRes struct {
	Error string `json:"error"`
}

// SubmitGuess posts a guess for scoring.
func (c *Client) SubmitGuess(ctx context.Context, word string, attempt int) (*game.GuessResult, error) {
	body, err := json.Marshal(checkWordReq{Guess: word, AttemptNumber: attempt})
	if err != nil {
		return nil, fmt.Errorf("encode guess: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/check-word", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &game.ServiceUnavailableError{Op: "check-word", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &game.ServiceUnavailableError{Op: "check-word", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var e errorRes
		_ = json.Unmarshal(raw, &e)
		msg := e.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &game.ValidationError{Status: resp.StatusCode, Message: msg}
	}

	var out game.GuessResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode check-word: %v", game.ErrInvalidMaskCode, err)
	}
	return &out, nil
}

// StartNewGame asks the service to pick a new secret word.
func (c *Client) StartNewGame(ctx context.Context) error {
	resp, err := c.get(ctx, "/new-game")
	if err != nil {
		return &game.ServiceUnavailableError{Op: "new-game", Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return &game.ServiceUnavailableError{Op: "new-game", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	return nil
}

// FetchDictionary downloads the playable words, retrying transient failures.
func (c *Client) FetchDictionary(ctx context.Context) ([]game.Entry, error) {
	var entries []game.Entry
	op := func() error {
		resp, err := c.get(ctx, "/dictionary")
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 500 {
			return fmt.Errorf("dictionary status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("dictionary status %d", resp.StatusCode))
		}
		if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
			return backoff.Permanent(fmt.Errorf("decode dictionary: %w", err))
		}
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.retries), ctx)
	notify := func(err error, wait time.Duration) {
		log.Debug().Err(err).Dur("wait", wait).Msg("retrying dictionary fetch")
	}
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return nil, &game.ServiceUnavailableError{Op: "dictionary", Err: err}
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, err
	}
	return c.http.Do(req)
}
