package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/jordle/internal/game"
)

// Line-mode commands.
const (
	cmdNew  = ":new"
	cmdDict = ":dict"
	cmdQuit = ":q"
)

// Plain plays line by line on r/w, for terminals without cursor control and
// for piped input. Each line is one guess; the service is called synchronously.
func Plain(ctx context.Context, o *game.Orchestrator, r io.Reader, w io.Writer) error {
	if err := o.Start(ctx); err != nil {
		fmt.Fprintln(w, o.State().Message)
	}
	fmt.Fprintf(w, "JORDLE: угадайте слово из %d букв за %d попыток (%s, %s, %s)\n",
		game.WordLen, game.MaxAttempts, cmdNew, cmdDict, cmdQuit)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case cmdQuit:
			return nil
		case cmdDict:
			writeDictionary(w, o.Dictionary())
			continue
		case cmdNew:
			_ = o.Reset(ctx)
			writeBoard(w, o.State())
			continue
		}
		if o.State().Over {
			fmt.Fprintf(w, "Игра окончена. Новая игра: %s\n", cmdNew)
			continue
		}

		for o.State().Guess != "" {
			o.DeleteLetter()
		}
		for _, ch := range line {
			o.HandleKey(string(ch))
		}
		if !o.State().CanSubmit() {
			fmt.Fprintf(w, "Нужно %d букв\n", game.WordLen)
			continue
		}
		_ = o.Submit(ctx)
		writeBoard(w, o.State())
	}
	return sc.Err()
}

// writeBoard prints the attempts as [Х] correct, (Х) present, ' Х ' absent.
func writeBoard(w io.Writer, st game.Session) {
	for _, a := range st.Attempts {
		var b strings.Builder
		for i, r := range a.Letters() {
			switch a.Mask[i] {
			case game.VerdictCorrect:
				fmt.Fprintf(&b, "[%c]", r)
			case game.VerdictPresent:
				fmt.Fprintf(&b, "(%c)", r)
			default:
				fmt.Fprintf(&b, " %c ", r)
			}
		}
		fmt.Fprintln(w, b.String())
	}
	if st.Message != "" {
		fmt.Fprintln(w, st.Message)
	}
	if !st.Over {
		return
	}
	if st.Won {
		fmt.Fprintf(w, "Победа с %d-й попытки!\n", len(st.Attempts))
	} else {
		fmt.Fprintln(w, "Увы, попытки закончились")
	}
	if st.Solution != nil {
		fmt.Fprintf(w, "%s: %s\n", st.Solution.Word, st.Solution.Desc)
	}
}

func writeDictionary(w io.Writer, entries []game.Entry) {
	fmt.Fprintf(w, "Словарь JORDLE (%d)\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Word, e.Desc)
	}
}
