package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Skpow1234/Shardvault/internal/config"
	"github.com/Skpow1234/Shardvault/internal/util"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Global flag values shared across all commands.
var (
	flagJSON     bool
	flagQuiet    bool
	flagVerbose  bool
	flagAuditLog string
	flagConfig   string
	flagProfile  string
)

// NewRootCmd creates the top-level cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "shardvault",
		Short:   "Split secrets into printable threshold shards and recover them",
		Long:    "ShardVault splits key material into Shamir shards over GF(2^32); any threshold-sized subset recovers the secret, fewer reveal nothing.",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure zerolog level based on --verbose / --quiet.
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if flagVerbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			if flagQuiet {
				zerolog.SetGlobalLevel(zerolog.ErrorLevel)
			}
			// File-based config; flags still win where a command reads both.
			_, _ = config.Load(flagConfig, flagProfile)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags available to every subcommand.
	pf := root.PersistentFlags()
	pf.BoolVar(&flagJSON, "json", false, "output results as JSON")
	pf.BoolVar(&flagQuiet, "quiet", false, "minimal output (errors only)")
	pf.BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	pf.StringVar(&flagConfig, "config", "", "config file (or SHARDVAULT_CONFIG env)")
	pf.StringVar(&flagProfile, "profile", "", "config profile (or SHARDVAULT_PROFILE env)")

	// Audit trail.
	pf.StringVar(&flagAuditLog, "audit-log", "", "append-only audit log file (or SHARDVAULT_AUDIT_LOG env)")

	// Register subcommands.
	root.AddCommand(newSplitCmd())
	root.AddCommand(newRecoverCmd())
	root.AddCommand(newExpandCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newMenuCmd())

	return root
}

// Execute runs the root command and exits with the correct code.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(util.ExitCodeForError(err))
	}
}
