package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	SetLevel("debug")
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("level %s", zerolog.GlobalLevel())
	}
	SetLevel("nonsense")
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("level %s", zerolog.GlobalLevel())
	}
}

func TestFileWritesJSON(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	path := filepath.Join(t.TempDir(), "jordle.log")
	c := File(path, "info")
	log.Info().Str("guess", "ШКОЛА").Msg("submitted")
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"guess":"ШКОЛА"`) {
		t.Errorf("log line missing: %s", b)
	}
}

func TestFileEmptyPathDiscards(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
	c := File("", "info")
	log.Info().Msg("dropped")
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}
