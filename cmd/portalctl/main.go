package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/daniilsolovey/truck-portal/config"
	"github.com/daniilsolovey/truck-portal/internal/auth"
	"github.com/daniilsolovey/truck-portal/internal/db"
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

type rootFlags struct {
	config  string
	envFile string
}

func main() {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "portalctl",
		Short:         "Operate the truck portal database and sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.config, "config", "config.toml", "Path to TOML configuration file")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Optional dotenv file with secrets")

	root.AddCommand(
		newMigrateCmd(&flags),
		newSeedCmd(&flags),
		newTokenCmd(&flags),
	)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newMigrateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down|status>",
		Short:     "Apply, roll back or inspect schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{db.MigrateUp, db.MigrateDown, db.MigrateStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			sqldb, err := db.OpenSQL(&cfg.Database)
			if err != nil {
				return codeError(2, "open database: %s", err)
			}
			defer sqldb.Close()

			if err := db.Migrate(cmd.Context(), sqldb, args[0]); err != nil {
				return codeError(2, "migrate %s: %s", args[0], err)
			}

			return nil
		},
	}
}

func newSeedCmd(flags *rootFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Truncate all portal tables and load the demo data set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return codeError(3, "seed wipes every portal table, rerun with --yes")
			}

			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			conn := pg.Connect(&cfg.Database)
			defer conn.Close()

			return seed(cmd.Context(), conn)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm that existing data may be deleted")

	return cmd
}

func seed(ctx context.Context, conn *pg.DB) error {
	if err := conn.Ping(ctx); err != nil {
		return codeError(2, "ping database: %s", err)
	}

	err := conn.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return db.LoadFixtures(ctx, tx)
	})
	if err != nil {
		return codeError(2, "load fixtures: %s", err)
	}

	fmt.Fprintln(os.Stdout, "fixtures loaded")
	return nil
}

func newTokenCmd(flags *rootFlags) *cobra.Command {
	var openID, name string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a session token for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if openID == "" {
				return codeError(3, "--open-id is required")
			}

			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			token, err := auth.NewSessions(cfg.Auth.Secret, cfg.Auth.TokenTTL).Issue(openID, name)
			if err != nil {
				return codeError(1, "issue token: %s", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&openID, "open-id", "", "Identity provider subject of the user")
	cmd.Flags().StringVar(&name, "name", "", "Display name stored in the token")

	return cmd
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	if err := godotenv.Load(flags.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, codeError(3, "load env file: %s", err)
	}

	cfg, err := config.Load(flags.config)
	if err != nil {
		return nil, codeError(3, "load config: %s", err)
	}

	return cfg, nil
}
