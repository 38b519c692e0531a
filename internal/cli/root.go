// Package cli wires config, logging, storage and the prompt into the REPL.
package cli

import (
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/danirb97/P4-Quiz/internal/config"
	"github.com/danirb97/P4-Quiz/internal/lib/slogcolor"
	"github.com/danirb97/P4-Quiz/internal/prompt"
	"github.com/danirb97/P4-Quiz/internal/quiz"
	"github.com/danirb97/P4-Quiz/internal/quiz/sqlite"
	"github.com/danirb97/P4-Quiz/internal/repl"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		dbPath   string
		logLevel string
		memory   bool
	)

	cmd := &cobra.Command{
		Use:   "quizzes",
		Short: "Interactive trivia quiz trainer",
		Long: `Quizzes keeps a set of question/answer pairs in a local database and
quizzes you on them from an interactive prompt. Type 'help' inside the
session for the command list.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Flags win over the environment.
			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("memory") {
				cfg.Memory = memory
			}

			log := slog.New(slogcolor.NewHandler(os.Stderr, slogcolor.ParseLevel(cfg.LogLevel)))
			slog.SetDefault(log)

			var repo quiz.Repository
			if cfg.Memory {
				repo = quiz.NewMemoryRepository()
			} else {
				store, err := sqlite.New(cfg.DBPath)
				if err != nil {
					return err
				}
				defer store.Close()
				repo = store
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			line, err := prompt.NewReadline()
			if err != nil {
				return err
			}
			defer line.Close()

			return repl.New(repo, line, line.Stdout(), log).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the sqlite database file")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	cmd.Flags().BoolVar(&memory, "memory", false, "keep quizzes in memory, nothing persisted")
	return cmd
}
