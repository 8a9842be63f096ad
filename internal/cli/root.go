// Package cli implements the jordle commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robalobadob/jordle/internal/config"
)

var logLevel string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "jordle",
	Short: "Guess the five-letter Russian word in six tries",
	Long:  "JORDLE: a terminal client for the word-guess game, plus the reference game service it talks to.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadDotenv()
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (default: $LOG_LEVEL or info)")
}

// level returns the --log-level flag, falling back to the configured value.
func level(fromEnv string) string {
	if logLevel != "" {
		return logLevel
	}
	return fromEnv
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
