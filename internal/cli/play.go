package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/jordle/internal/game"
	"github.com/robalobadob/jordle/internal/logging"
	"github.com/robalobadob/jordle/internal/tui"
)

var playPlain bool

func init() {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		Run:   runPlay,
	}
	addClientFlags(cmd)
	cmd.Flags().BoolVar(&playPlain, "plain", false, "Line mode: one guess per line (default when stdin is not a terminal)")

	RootCmd.AddCommand(cmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := clientConfig(cmd)
	if err != nil {
		exitErr("config", err)
	}
	closer := logging.File(cfg.LogFile, cfg.LogLevel)
	defer closer.Close()

	c, err := newClient(cfg)
	if err != nil {
		exitErr("client", err)
	}
	log.Info().Str("api", cfg.APIURL).Msg("starting client")

	o := game.NewOrchestrator(c)
	if playPlain || !isatty.IsTerminal(os.Stdin.Fd()) {
		err = tui.Plain(cmd.Context(), o, os.Stdin, os.Stdout)
	} else {
		err = tui.Run(cmd.Context(), o)
	}
	if err != nil {
		exitErr("play", err)
	}
}
