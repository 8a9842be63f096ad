package cli

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/robalobadob/jordle/internal/game"
	"github.com/robalobadob/jordle/internal/logging"
)

var dictFormat string

func init() {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Print the game dictionary",
		Args:  cobra.NoArgs,
		Run:   runDict,
	}
	addClientFlags(cmd)
	cmd.Flags().StringVarP(&dictFormat, "format", "f", "text", "Output format: json or text")

	RootCmd.AddCommand(cmd)
}

func runDict(cmd *cobra.Command, args []string) {
	cfg, err := clientConfig(cmd)
	if err != nil {
		exitErr("config", err)
	}
	logging.Console(cfg.LogLevel)

	c, err := newClient(cfg)
	if err != nil {
		exitErr("client", err)
	}
	o := game.NewOrchestrator(c)
	if err := o.LoadDictionary(cmd.Context()); err != nil {
		exitErr("fetch dictionary", err)
	}
	if err := printDictionary(os.Stdout, o.Dictionary(), dictFormat); err != nil {
		exitErr("print", err)
	}
}

func printDictionary(w io.Writer, entries []game.Entry, format string) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "text":
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", e.Word, e.Desc); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}
