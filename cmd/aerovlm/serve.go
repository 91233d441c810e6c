package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aerovlm/config"
	"github.com/katalvlaran/aerovlm/server"
	"github.com/katalvlaran/aerovlm/store"
)

var serveFlags struct {
	envFiles []string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	Long: `Serve the HTTP and websocket API. Settings come from the environment
(optionally loaded from .env files): AEROVLM_ADDR, DATABASE_URL, TOKEN_KEY,
API_CLIENT_ID, API_SECRET_HASH, RATE_LIMIT, RATE_BURST.

Without DATABASE_URL sweeps are kept in memory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadService(serveFlags.envFiles...)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		repo, closeRepo, err := openRepository(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		return server.New(cfg, repo, server.WithLogger(log)).Run(ctx)
	},
}

func openRepository(ctx context.Context, cfg *config.Service) (store.Repository, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Warn("serve: DATABASE_URL not set, sweeps are kept in memory")
		return store.NewMemoryRepository(), func() {}, nil
	}
	db, err := store.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	repo := store.NewPostgresRepository(db)
	if err = repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return repo, func() { _ = db.Close() }, nil
}

var hashSecretCmd = &cobra.Command{
	Use:   "hash-secret <secret>",
	Short: "Print the bcrypt hash to use as API_SECRET_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := server.HashSecret(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)

		return nil
	},
}

func init() {
	serveCmd.Flags().StringSliceVar(&serveFlags.envFiles, "env", nil, "dotenv files to load (default .env)")
	rootCmd.AddCommand(serveCmd, hashSecretCmd)
}
