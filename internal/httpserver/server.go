// internal/httpserver/server.go
//
// HTTP server for the reference JORDLE game service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Diagnostics: "/", "/health".
//   - Game contract: GET /dictionary, GET /new-game, POST /check-word.
//   - Player stats: GET /stats (when results persistence is enabled).
//
// Notes:
//   - Players are identified by a signed cookie (see player.go); no login.
//   - Each player has one current round in the Store; /new-game replaces it.
//   - Finished rounds are recorded best effort; a DB failure never fails a guess.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/jordle/internal/daily"
	"github.com/robalobadob/jordle/internal/game"
	"github.com/robalobadob/jordle/internal/results"
	"github.com/robalobadob/jordle/internal/service"
	"github.com/robalobadob/jordle/internal/store"
	"github.com/robalobadob/jordle/internal/words"
)

// Word selection modes.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// Config holds the server's tunables.
type Config struct {
	ClientOrigin  string
	JWTSecret     string
	SecureCookies bool
	WordMode      string         // ModeRandom or ModeDaily
	DailySalt     string         // keys the daily schedule
	DailyZone     *time.Location // daily rollover zone; nil means UTC
}

// Server bundles router, round store, dictionary and optional results DB.
type Server struct {
	r       *chi.Mux
	cfg     Config
	dict    *words.Dictionary
	store   store.Store
	results *results.Store // nil when persistence is disabled
	daily   daily.Schedule
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg Config, dict *words.Dictionary, st store.Store, res *results.Store) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		cfg:     cfg,
		dict:    dict,
		store:   st,
		results: res,
		daily:   daily.NewSchedule(cfg.DailySalt, cfg.DailyZone),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one debug line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(cfg.ClientOrigin))          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"jordle","endpoints":["/health","/dictionary","/new-game","POST /check-word","/stats"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- game contract ---
	s.r.Get("/dictionary", s.handleDictionary)
	s.r.Get("/new-game", s.handleNewGame)
	s.r.Post("/check-word", s.handleCheckWord)
	s.r.Get("/stats", s.handleStats)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server listen failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server stopped with error: %w", err)
		}
		return nil
	}
}

// ------------------------------ GAME ---------------------------------------

// handleDictionary lists every playable word.
func (s *Server) handleDictionary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.dict.Entries())
}

// handleNewGame replaces the caller's round with a fresh secret word.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	pid := s.playerID(w, r)
	g := s.newRound(pid)
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Debug().Str("player", pid).Str("gameId", g.ID).Msg("new round")
	body := map[string]any{"ok": true, "gameId": g.ID}
	if s.cfg.WordMode == ModeDaily {
		body["nextWordAt"] = s.daily.NextRollover(time.Now()).UTC().Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, body)
}

// checkWordReq is the POST /check-word payload.
type checkWordReq struct {
	Guess         string `json:"guess"`
	AttemptNumber int    `json:"attemptNumber"`
}

// handleCheckWord validates and scores a guess against the caller's round.
// A round is started implicitly if the caller has none. The guess is applied
// inside store.Update, so concurrent guesses of one player never interleave.
func (s *Server) handleCheckWord(w http.ResponseWriter, r *http.Request) {
	var req checkWordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	pid := s.playerID(w, r)

	var (
		res  *game.GuessResult
		done service.Game // copy taken under the store lock
	)
	err := s.store.Update(r.Context(), pid, func() *service.Game { return s.newRound(pid) }, func(g *service.Game) error {
		var err error
		if res, err = g.ApplyGuess(s.dict, req.Guess); err != nil {
			return err
		}
		done = *g
		return nil
	})
	switch {
	case errors.Is(err, service.ErrFinished):
		writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, service.ErrInvalidLength), errors.Is(err, service.ErrNotInDictionary):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		log.Error().Err(err).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	if req.AttemptNumber != done.Guesses-1 {
		log.Debug().Int("attemptNumber", req.AttemptNumber).Int("guesses", done.Guesses).Str("gameId", done.ID).Msg("client attempt count differs")
	}
	if done.Finished {
		s.recordResult(r.Context(), &done)
	}

	writeJSON(w, http.StatusOK, res)
}

// handleStats reports the caller's finished rounds.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		writeError(w, http.StatusNotFound, "stats_disabled")
		return
	}
	st, err := s.results.PlayerStats(r.Context(), s.playerID(w, r))
	if err != nil {
		log.Error().Err(err).Msg("player stats")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// newRound picks a secret word according to the configured mode.
func (s *Server) newRound(playerID string) *service.Game {
	idx := s.dict.RandomIndex()
	if s.cfg.WordMode == ModeDaily {
		idx = s.daily.Index(time.Now(), s.dict.Len())
	}
	return service.New(uuid.NewString(), playerID, s.dict.At(idx))
}

// recordResult persists a finished round (best effort).
func (s *Server) recordResult(ctx context.Context, g *service.Game) {
	if s.results == nil {
		return
	}
	err := s.results.Insert(ctx, results.Result{
		GameID:    g.ID,
		PlayerID:  g.PlayerID,
		Word:      g.Answer.Word,
		Guesses:   g.Guesses,
		Won:       g.Won,
		StartedAt: g.StartedAt,
	})
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("record result")
	}
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
