package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/jordle/internal/client"
	"github.com/robalobadob/jordle/internal/config"
)

var (
	apiURL      string
	httpTimeout time.Duration
)

// addClientFlags registers the flags shared by commands that talk to the service.
func addClientFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&apiURL, "api-url", "", "Game service URL (default: $JORDLE_API_URL or http://localhost:3001)")
	cmd.Flags().DurationVar(&httpTimeout, "timeout", 0, "Per-request timeout (default: $JORDLE_HTTP_TIMEOUT, 0 disables)")
}

// clientConfig merges env settings with the flags that were set.
func clientConfig(cmd *cobra.Command) (config.Client, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = apiURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.HTTPTimeout = httpTimeout
	}
	cfg.LogLevel = level(cfg.LogLevel)
	return cfg, nil
}

func newClient(cfg config.Client) (*client.Client, error) {
	return client.New(client.Config{
		BaseURL:           cfg.APIURL,
		Timeout:           cfg.HTTPTimeout,
		DictionaryRetries: 3,
	})
}
