package dbinit

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pricememory/internal/common/fsutil"
)

const defaultMigrationsDir = "supabase/migrations"

// Config holds the dbinit command-line settings.
type Config struct {
	Dir    string
	LogLvl string
}

// Run announces the migrations in cfg.Dir. The directory is checked before the
// credentials; an empty directory is a warning, not an error.
func Run(cfg Config, out io.Writer) error {
	fmt.Fprintln(out, "=== Supabase database initialization ===")

	if !fsutil.IsDir(cfg.Dir) {
		return missingDirError{dir: cfg.Dir}
	}
	creds, err := CredentialsFromEnv()
	if err != nil {
		return err
	}
	info("project %s (service role key %s)", creds.URL, creds.MaskedKey())

	migs, err := ListMigrations(cfg.Dir)
	if err != nil {
		return err
	}
	if len(migs) == 0 {
		warn("no migration files found in %s", cfg.Dir)
		fmt.Fprintln(out, "Warning: no migration files found")
		return nil
	}
	fmt.Fprintf(out, "Found %d migration files\n", len(migs))

	if err := Announce(out, migs); err != nil {
		return err
	}
	fmt.Fprintln(out, "\n=== Initialization finished ===")
	printUsage(out)
	return nil
}

func buildRootCmd(cfg *Config, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "dbinit",
		Short:         "Print the Supabase migrations and how to apply them (never executes SQL)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			SetLogOutput(os.Stderr, cfg.LogLvl)
			return Run(*cfg, out)
		},
	}
	root.Flags().StringVar(&cfg.Dir, "dir", cfg.Dir, "Migrations directory (defaults DBINIT_MIGRATIONS_DIR or supabase/migrations)")
	root.Flags().StringVar(&cfg.LogLvl, "log-level", cfg.LogLvl, "Log level: debug|info|warn|error (defaults DBINIT_LOG_LEVEL or info)")
	root.SetOut(out)
	return root
}

// MainWithArgs runs dbinit with explicit args and returns the exit code.
func MainWithArgs(args []string, out io.Writer) int {
	cfg := &Config{
		Dir:    envStr("DBINIT_MIGRATIONS_DIR", defaultMigrationsDir),
		LogLvl: envStr("DBINIT_LOG_LEVEL", "info"),
	}
	root := buildRootCmd(cfg, out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		errl("%v", err)
		return 1
	}
	return 0
}

// Main returns an exit code for use by cmd/dbinit.
func Main() int { return MainWithArgs(os.Args[1:], os.Stdout) }
