package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/byxorna/stackit/pkg/app"
	"github.com/byxorna/stackit/pkg/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const configEnv = "STACKIT_CONFIG"

var (
	flags = struct {
		ConfigFile string
		LogFile    string
		PageSize   int
		PprofPort  int
	}{}

	root = &cobra.Command{
		Use:   "stackit",
		Short: "StackIt is a terminal based question and answer board",
		Args:  cobra.MaximumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.ConfigFile
			if !cmd.Flags().Changed("config") {
				if env := os.Getenv(configEnv); env != "" {
					path = env
				}
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if flags.LogFile != "" {
				if err := cfg.SetLogFile(flags.LogFile); err != nil {
					return err
				}
			}
			if flags.PageSize > 0 {
				cfg.PageSize = flags.PageSize
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			logPath, err := cfg.LogPath()
			if err != nil {
				return fmt.Errorf("unable to resolve log file: %w", err)
			}
			f, err := tea.LogToFile(logPath, "stackit")
			if err != nil {
				return fmt.Errorf("unable to open log file: %w", err)
			}
			defer f.Close()
			slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))

			if flags.PprofPort > 0 {
				addr := fmt.Sprintf("localhost:%d", flags.PprofPort)
				slog.Info("listening for pprof", "addr", addr)
				go func() {
					if err := http.ListenAndServe(addr, nil); err != nil {
						slog.Warn("pprof listener stopped", "err", err)
					}
				}()
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			m, err := app.New(ctx, cfg, true)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m)
			_, err = p.Run()
			return err
		},
	}
)

func init() {
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", config.DefaultPath, "configuration file (or $"+configEnv+")")
	root.PersistentFlags().StringVar(&flags.LogFile, "log-file", "", "log file (default $XDG_STATE_HOME/stackit/stackit.log)")
	root.PersistentFlags().IntVarP(&flags.PageSize, "page-size", "p", 0, "questions per page")
	root.PersistentFlags().IntVar(&flags.PprofPort, "pprof", 0, "serve pprof on this localhost port")
}

func Execute() {
	// a missing .env is fine
	_ = godotenv.Load()

	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
