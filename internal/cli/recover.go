package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Skpow1234/Shardvault/internal/audit"
	"github.com/Skpow1234/Shardvault/internal/shamir"
	"github.com/Skpow1234/Shardvault/internal/util"
)

// readShardFiles loads and parses every shard file given on the
// command line.
func readShardFiles(paths []string, printer *Printer) ([]*shamir.Shard, error) {
	shards := make([]*shamir.Shard, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			printer.Error(err, fmt.Sprintf("failed to read shard %s", path))
			return nil, err
		}
		s, err := shamir.UnmarshalShard(data)
		if err != nil {
			printer.Error(err, fmt.Sprintf("failed to parse shard %s", path))
			return nil, err
		}
		shards = append(shards, s)
	}
	return shards, nil
}

// trimToThreshold cuts an oversupplied shard set down to the exact
// quorum the library demands, preferring distinct shard IDs.
func trimToThreshold(shards []*shamir.Shard, printer *Printer) []*shamir.Shard {
	if len(shards) == 0 {
		return shards
	}
	k := int(shards[0].Threshold())
	if len(shards) <= k {
		return shards
	}

	distinct := make([]*shamir.Shard, 0, k)
	seen := make(map[string]bool, k)
	for _, s := range shards {
		if seen[s.ID()] {
			printer.Warn(fmt.Sprintf("ignoring duplicate shard %s", s.ID()))
			continue
		}
		seen[s.ID()] = true
		distinct = append(distinct, s)
		if len(distinct) == k {
			break
		}
	}
	if len(distinct) < len(shards) {
		printer.Warn(fmt.Sprintf("using %d of %d supplied shards (threshold %d)", len(distinct), len(shards), k))
	}
	return distinct
}

func newRecoverCmd() *cobra.Command {
	var (
		shardFiles []string
		outFile    string
	)

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Reconstruct a secret from K Shamir shards",
		Long: `Reconstruct a secret from K-of-N Shamir shards.

The threshold K is read from the shard metadata. Provide at least K shard
files; additional shards are accepted but only K distinct ones are used.

Example:
  shardvault recover --shard master.key.shard1 --shard master.key.shard3 --shard master.key.shard5 --out master.key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			auditor := auditLogger(printer)

			if len(shardFiles) == 0 {
				return fmt.Errorf("at least one --shard is required")
			}
			if outFile == "" {
				return fmt.Errorf("--out is required")
			}

			shards, err := readShardFiles(shardFiles, printer)
			if err != nil {
				return err
			}

			k := int(shards[0].Threshold())
			if len(shards) < k {
				return fmt.Errorf("%w: need at least %d shards (threshold), got %d", util.ErrRecoverFailed, k, len(shards))
			}
			quorum := trimToThreshold(shards, printer)

			ids := make([]string, len(quorum))
			for i, s := range quorum {
				ids[i] = s.ID()
			}

			secret, err := shamir.RecoverSecret(quorum)
			if err != nil {
				printer.Error(err, "reconstruction failed")
				_ = auditor.Log(&audit.Entry{
					Operation: audit.OpRecover,
					ShardIDs:  ids,
					Threshold: uint32(k),
					Success:   false,
					Error:     err.Error(),
				})
				return fmt.Errorf("%w: %v", util.ErrRecoverFailed, err)
			}

			if err := os.WriteFile(outFile, secret, 0o600); err != nil {
				printer.Error(err, "failed to write output file")
				return err
			}

			_ = auditor.Log(&audit.Entry{
				Operation:  audit.OpRecover,
				OutputFile: outFile,
				ShardIDs:   ids,
				Threshold:  uint32(k),
				Shards:     len(quorum),
				Success:    true,
			})

			if printer.Mode == OutputJSON {
				return printer.JSON(map[string]any{
					"scheme":      "shamir-gf2_32",
					"shards_used": len(quorum),
					"threshold":   k,
					"output":      outFile,
					"secret_len":  len(secret),
				})
			}

			printer.Human("Secret reconstructed from %d shards (threshold %d)", len(quorum), k)
			printer.Human("Output: %s", outFile)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&shardFiles, "shard", nil, "path to a shard file (repeat for each shard)")
	f.StringVar(&outFile, "out", "", "output path for the reconstructed secret")

	return cmd
}
