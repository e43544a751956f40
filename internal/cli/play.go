package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/mcoot/wordscramble/internal/factory"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/game"
)

// lineReader yields one line of player input at a time
type lineReader interface {
	Readline() (string, error)
}

func newPlayCmd() *cobra.Command {
	var (
		corpusPath     string
		dictionaryPath string
		rootWord       string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a local game in the terminal",
		Long: `Play a local game in the terminal.

Type words made from the letters of the root word and press enter.
Commands: /new starts over with a new root word, /quit exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			if cfg.Verbose {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}

			app, err := factory.New(factory.Config{Logger: logger})
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.LoadWordLists(cmd.Context(), corpusPath, dictionaryPath); err != nil {
				return err
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "> ",
				InterruptPrompt: "^C",
				EOFPrompt:       "/quit",
				HistoryLimit:    -1,
			})
			if err != nil {
				return fmt.Errorf("failed to start interactive mode: %w", err)
			}
			defer func() { _ = rl.Close() }()

			p := &player{
				controller: app.GameController,
				out:        cmd.OutOrStdout(),
			}
			return p.run(cmd.Context(), rl, rootWord)
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "data/start.txt", "Root word list, one per line")
	cmd.Flags().StringVar(&dictionaryPath, "dictionary", "data/words.txt", "Dictionary word list, one per line")
	cmd.Flags().StringVar(&rootWord, "root", "", "Root word for the first round (default: random)")

	return cmd
}

// player runs a single local session against the game controller
type player struct {
	controller *game.Controller
	out        io.Writer
	session    *model.Session
}

func (p *player) run(ctx context.Context, in lineReader, rootWord string) error {
	var err error
	if rootWord != "" {
		p.session, err = p.controller.NewSessionWithRoot(ctx, rootWord)
	} else {
		p.session, err = p.controller.NewSession(ctx)
	}
	if err != nil {
		return err
	}
	defer func() { _ = p.controller.EndSession(context.WithoutCancel(ctx), p.session.ID) }()

	p.printRound()

	for {
		line, err := in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		} else if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "/quit", "/exit":
			p.printf("Final score: %d\n", p.session.Score())
			return nil
		case "/new":
			if err := p.restart(ctx); err != nil {
				return err
			}
			continue
		}

		if err := p.submit(ctx, line); err != nil {
			return err
		}
	}

	p.printf("Final score: %d\n", p.session.Score())
	return nil
}

func (p *player) submit(ctx context.Context, line string) error {
	result, err := p.controller.Submit(ctx, p.session.ID, line)
	if err != nil {
		rej, ok := model.AsRejection(err)
		if !ok {
			return err
		}
		if rej.Alert() {
			p.printf("%s\n  %s\n", rej.Title(), rej.Message())
		}
		return nil
	}

	p.session = result.Session
	p.printWords()
	return nil
}

func (p *player) restart(ctx context.Context) error {
	session, err := p.controller.Restart(ctx, p.session.ID)
	if err != nil {
		return err
	}
	p.session = session
	p.printRound()
	return nil
}

func (p *player) printRound() {
	p.printf("\n%s\n%s\n", strings.ToUpper(p.session.RootWord), strings.Repeat("=", utf8.RuneCountInString(p.session.RootWord)))
	p.printf("Your current score is %d\n", p.session.Score())
}

func (p *player) printWords() {
	for _, w := range p.session.UsedWords {
		p.printf("  %2d  %s\n", utf8.RuneCountInString(w), w)
	}
	p.printf("Your current score is %d\n", p.session.Score())
}

func (p *player) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}
