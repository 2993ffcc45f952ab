package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Skpow1234/Shardvault/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration and precedence",
		Long: "Show the effective configuration used by shardvault (from config file and profile).\n\n" +
			"Precedence (highest wins):\n" +
			"  1. CLI flags (e.g. --audit-log, --threshold)\n" +
			"  2. Environment variables (e.g. SHARDVAULT_AUDIT_LOG)\n" +
			"  3. Config file (from --config, SHARDVAULT_CONFIG, or ~/.shardvault.yaml / ./.shardvault.yaml)\n" +
			"  4. Profile overrides (from --profile or SHARDVAULT_PROFILE)\n" +
			"  5. Built-in defaults\n\n" +
			"Config file keys: audit_log, threshold, shards, output_dir.\n" +
			"Profiles can override any of these under the 'profiles' key (e.g. profiles.prod.threshold).",
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			cfg := config.Get()
			if cfg == nil {
				cfg = &config.EffectiveConfig{}
				*cfg = config.DefaultEffective()
			}

			switch printer.Mode {
			case OutputJSON:
				out, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, string(out))
			default:
				printer.Human("Effective configuration:")
				printer.Human("  audit_log:  %q", cfg.AuditLog)
				printer.Human("  threshold:  %d", cfg.Threshold)
				printer.Human("  shards:     %d", cfg.Shards)
				printer.Human("  output_dir: %q", cfg.OutputDir)
			}
			return nil
		},
	}
	return cmd
}
