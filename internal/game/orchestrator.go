// internal/game/orchestrator.go
//
// Orchestrator owns the session and drives it against the game service.
// Responsibilities:
//   - Translate key events into session transitions.
//   - Issue tickets for service calls and apply their completions.
//   - Discard completions that belong to a session replaced by a reset.
//
// Notes:
//   - Not safe for concurrent use. Front-ends run service calls wherever they
//     like but must feed completions back on the goroutine that owns the
//     orchestrator (e.g. as Bubble Tea messages).
//   - Submit/Reset/Start are synchronous wrappers for callers without an
//     event loop.

package game

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Service is the remote game service contract.
type Service interface {
	// SubmitGuess scores word as attempt number attempt (0-based).
	// Rejections are returned as *ValidationError.
	SubmitGuess(ctx context.Context, word string, attempt int) (*GuessResult, error)
	// StartNewGame asks the service for a fresh secret word.
	StartNewGame(ctx context.Context) error
	// FetchDictionary lists every playable word.
	FetchDictionary(ctx context.Context) ([]Entry, error)
}

// Ticket identifies one outstanding service call.
type Ticket struct {
	Token   uint64 // session token at issue time
	Word    string // guess to submit; empty for resets
	Attempt int    // 0-based attempt number
}

// Orchestrator composes the session state machine with a Service.
type Orchestrator struct {
	svc        Service
	state      Session
	token      uint64
	dictionary []Entry
}

// NewOrchestrator returns an orchestrator holding a fresh session.
func NewOrchestrator(svc Service) *Orchestrator {
	return &Orchestrator{svc: svc, state: NewSession()}
}

// State returns the current session.
func (o *Orchestrator) State() Session { return o.state }

// Token is the current session token; it grows on every reset.
func (o *Orchestrator) Token() uint64 { return o.token }

// Dictionary returns the loaded dictionary entries.
func (o *Orchestrator) Dictionary() []Entry { return o.dictionary }

// Service exposes the underlying service for front-ends that run calls themselves.
func (o *Orchestrator) Service() Service { return o.svc }

// ---------------------------------------------------------------------------
// input

// AppendLetter adds a letter to the buffer (see Session.AppendLetter).
func (o *Orchestrator) AppendLetter(r rune) { o.state = o.state.AppendLetter(r) }

// DeleteLetter removes the last letter (see Session.DeleteLetter).
func (o *Orchestrator) DeleteLetter() { o.state = o.state.DeleteLetter() }

// HandleKey routes a physical key name. When the key triggers a submit,
// the returned ticket must be completed with CompleteSubmit.
func (o *Orchestrator) HandleKey(key string) (Ticket, bool) {
	action, r := NormalizeKey(key, o.state.GuessLen())
	switch action {
	case KeyLetter:
		o.AppendLetter(r)
	case KeyBackspace:
		o.DeleteLetter()
	case KeyEnter:
		return o.BeginSubmit()
	}
	return Ticket{}, false
}

// OpenDictionary shows the dictionary view; the buffer is frozen meanwhile.
func (o *Orchestrator) OpenDictionary() { o.state = o.state.SetDictionaryOpen(true) }

// CloseDictionary hides the dictionary view.
func (o *Orchestrator) CloseDictionary() { o.state = o.state.SetDictionaryOpen(false) }

// ---------------------------------------------------------------------------
// submit

// BeginSubmit marks the buffered guess as in flight and returns its ticket.
// It reports false (and changes nothing) when the guess cannot be submitted.
func (o *Orchestrator) BeginSubmit() (Ticket, bool) {
	if o.state.Locked() {
		return Ticket{}, false
	}
	o.state.Message = ""
	if !o.state.CanSubmit() {
		return Ticket{}, false
	}
	o.state.Pending = true
	return Ticket{Token: o.token, Word: o.state.Guess, Attempt: o.state.Row()}, true
}

// CompleteSubmit applies the outcome of a ticket from BeginSubmit.
// It reports false when the ticket is stale and was ignored.
func (o *Orchestrator) CompleteSubmit(t Ticket, res *GuessResult, err error) bool {
	if t.Token != o.token || !o.state.Pending {
		log.Debug().Uint64("ticket", t.Token).Uint64("token", o.token).Msg("discarding stale guess response")
		return false
	}
	switch {
	case err != nil:
		log.Warn().Err(err).Str("guess", t.Word).Int("attempt", t.Attempt).Msg("guess not accepted")
		o.state = o.state.Fail(err)
	case res == nil:
		o.state = o.state.Fail(ErrInvalidMaskCode)
	default:
		next, aerr := o.state.Accept(*res)
		if aerr != nil {
			log.Error().Err(aerr).Str("guess", t.Word).Msg("malformed guess response")
		}
		o.state = next
		if next.Over {
			log.Info().Bool("won", next.Won).Int("attempts", len(next.Attempts)).Msg("game over")
		}
	}
	return true
}

// Submit sends the buffered guess and waits for the result.
// It returns the error surfaced to the player, if any; it does nothing when
// the guess cannot be submitted.
func (o *Orchestrator) Submit(ctx context.Context) error {
	t, ok := o.BeginSubmit()
	if !ok {
		return nil
	}
	res, err := o.svc.SubmitGuess(ctx, t.Word, t.Attempt)
	o.CompleteSubmit(t, res, err)
	return err
}

// ---------------------------------------------------------------------------
// reset

// BeginReset invalidates every outstanding ticket and returns a reset ticket.
func (o *Orchestrator) BeginReset() Ticket {
	o.token++
	o.state.Pending = true
	return Ticket{Token: o.token}
}

// CompleteReset applies the service's answer to a new-game request.
// On success the session is replaced; only the dictionary view stays as the
// player left it. On failure the old session stays and carries the error message.
func (o *Orchestrator) CompleteReset(t Ticket, err error) bool {
	if t.Token != o.token {
		return false
	}
	if err != nil {
		log.Warn().Err(err).Msg("new game failed")
		o.state = o.state.Fail(err)
		return true
	}
	o.state = NewSession().SetDictionaryOpen(o.state.DictionaryOpen)
	return true
}

// Reset starts a new game on the service and resets local state.
func (o *Orchestrator) Reset(ctx context.Context) error {
	t := o.BeginReset()
	err := o.svc.StartNewGame(ctx)
	o.CompleteReset(t, err)
	return err
}

// ---------------------------------------------------------------------------
// dictionary & startup

// LoadDictionary fetches and caches the dictionary.
func (o *Orchestrator) LoadDictionary(ctx context.Context) error {
	entries, err := o.svc.FetchDictionary(ctx)
	if err != nil {
		return err
	}
	o.SetDictionary(entries)
	return nil
}

// SetDictionary stores entries fetched elsewhere.
func (o *Orchestrator) SetDictionary(entries []Entry) { o.dictionary = entries }

// Start loads the dictionary and starts a new game concurrently.
// A dictionary failure is logged and otherwise ignored.
func (o *Orchestrator) Start(ctx context.Context) error {
	var (
		entries []Entry
		dictErr error
		g       errgroup.Group
	)
	g.Go(func() error {
		entries, dictErr = o.svc.FetchDictionary(ctx)
		return nil
	})
	t := o.BeginReset()
	g.Go(func() error { return o.svc.StartNewGame(ctx) })
	err := g.Wait()

	if dictErr != nil {
		log.Error().Err(dictErr).Msg("failed to load dictionary")
	} else {
		o.SetDictionary(entries)
	}
	o.CompleteReset(t, err)
	return err
}
