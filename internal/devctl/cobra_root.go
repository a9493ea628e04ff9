package devctl

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// buildRootCmdWith constructs the devctl command tree wired to the fn* actions.
// Running the root with no subcommand is the same as "up".
func buildRootCmdWith(cfg *Config) *cobra.Command {
	up := func(cmd *cobra.Command, args []string) error {
		return runUp(cmd.Context(), cfg, cmd.OutOrStdout())
	}

	root := &cobra.Command{
		Use:           "devctl",
		Short:         "Start the Price Memory backend and admin frontend for local development",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          up,
	}

	// Persistent flags -> Config
	pf := root.PersistentFlags()
	pf.StringVar(&cfg.LogLvl, "log-level", cfg.LogLvl, "Log level: debug|info|warn|error (defaults DEVCTL_LOG_LEVEL or info)")
	pf.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Optional project file (.yaml|.json|.toml); defaults DEVCTL_CONFIG")
	pf.StringVar(&cfg.Root, "root", cfg.Root, "Project root containing the backend and frontend dirs (defaults DEVCTL_ROOT or .)")
	pf.StringVar(&cfg.StatusAddr, "status-addr", cfg.StatusAddr, "Serve the session status API on this address, e.g. 127.0.0.1:7070 (defaults DEVCTL_STATUS_ADDR; empty disables)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		SetLogLevel(cfg.LogLvl)
		return cfg.loadFile()
	}

	upCmd := &cobra.Command{Use: "up", Short: "Check, configure and run both services until they exit or Ctrl+C", Args: cobra.NoArgs, RunE: up}

	checkCmd := &cobra.Command{Use: "check", Short: "Verify Python modules and frontend packages are installed", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		if err := fnCheckDependencies(cmd.Context(), cfg); err != nil {
			if hint := DependencyHint(err); hint != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Please run: %s\n", hint)
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All dependencies are installed")
		return nil
	}}

	setupCmd := &cobra.Command{Use: "setup", Short: "Create missing environment files for both services", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		if err := fnSetupEnvironment(cfg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Environment files ready")
		return nil
	}}

	root.AddCommand(upCmd, checkCmd, setupCmd)

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(os.Stdout, true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenPowerShellCompletionWithDesc(os.Stdout) }})
	root.AddCommand(completionCmd)

	return root
}
