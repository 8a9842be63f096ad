package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/jordle/internal/config"
	"github.com/robalobadob/jordle/internal/httpserver"
	"github.com/robalobadob/jordle/internal/logging"
	"github.com/robalobadob/jordle/internal/results"
	"github.com/robalobadob/jordle/internal/store"
	"github.com/robalobadob/jordle/internal/words"
)

var (
	servePort string
	serveDB   string
	serveMode string
	serveDict string
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the reference game service",
		Args:  cobra.NoArgs,
		Run:   runServe,
	}
	cmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (default: $PORT or 3001)")
	cmd.Flags().StringVar(&serveDB, "db", "", "SQLite results database (default: $DB_PATH, empty disables stats)")
	cmd.Flags().StringVar(&serveMode, "mode", "", "Word selection: random or daily (default: $WORD_MODE or random)")
	cmd.Flags().StringVar(&serveDict, "dictionary", "", "Dictionary JSON file (default: $DICTIONARY_FILE or embedded)")

	RootCmd.AddCommand(cmd)
}

// serverConfig merges env settings with the flags that were set.
func serverConfig(cmd *cobra.Command) (config.Server, error) {
	cfg, err := config.LoadServer()
	if err != nil {
		return cfg, err
	}
	f := cmd.Flags()
	if f.Changed("port") {
		cfg.Port = servePort
	}
	if f.Changed("db") {
		cfg.DBPath = serveDB
	}
	if f.Changed("mode") {
		cfg.WordMode = serveMode
	}
	if f.Changed("dictionary") {
		cfg.Dictionary = serveDict
	}
	cfg.LogLevel = level(cfg.LogLevel)
	return cfg, cfg.Validate()
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := serverConfig(cmd)
	if err != nil {
		exitErr("config", err)
	}
	logging.Console(cfg.LogLevel)

	dict, err := words.Load(cfg.Dictionary)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}

	var res *results.Store
	if cfg.DBPath != "" {
		res, err = results.Open(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open results db")
		}
		defer res.Close()
	}

	srv := httpserver.New(httpserver.Config{
		ClientOrigin:  cfg.ClientOrigin,
		JWTSecret:     cfg.JWTSecret,
		SecureCookies: cfg.SecureCookies,
		WordMode:      cfg.WordMode,
		DailySalt:     cfg.DailySalt,
		DailyZone:     cfg.DailyZone,
	}, dict, store.NewMemoryStore(), res)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("port", cfg.Port).Str("mode", cfg.WordMode).Int("words", dict.Len()).Msg("starting jordle service")
	if err := srv.Serve(ctx, ":"+cfg.Port); err != nil {
		exitErr("serve", err)
	}
	log.Info().Msg("server stopped")
}
