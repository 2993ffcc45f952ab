package cli

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Skpow1234/Shardvault/internal/audit"
	"github.com/Skpow1234/Shardvault/internal/config"
	"github.com/Skpow1234/Shardvault/internal/shamir"
)

func newSplitCmd() *cobra.Command {
	var (
		inFile    string
		outDir    string
		shards    int
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret file into N Shamir shards (K-of-N threshold)",
		Long: `Split a secret file into N shards using Shamir's Secret Sharing over GF(2^32).

At least K shards are required to reconstruct the original secret; fewer than
K shards reveal zero information about it. Shard files are armored text
suitable for printing.

Example:
  shardvault split --in master.key --shards 5 --threshold 3
  # produces master.key.shard1 … master.key.shard5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			auditor := auditLogger(printer)

			if inFile == "" {
				return fmt.Errorf("--in is required")
			}
			// Flags default to the config file's values; 0 means unset.
			if cfg := config.Get(); cfg != nil {
				if threshold == 0 {
					threshold = cfg.Threshold
				}
				if shards == 0 {
					shards = cfg.Shards
				}
				if outDir == "" && cfg.OutputDir != "." {
					outDir = cfg.OutputDir
				}
			}
			if threshold < 1 {
				return fmt.Errorf("--threshold must be at least 1")
			}
			if shards < threshold {
				return fmt.Errorf("--shards must be at least the threshold (%d)", threshold)
			}

			secret, err := os.ReadFile(inFile)
			if err != nil {
				printer.Error(err, "failed to read secret file")
				return err
			}

			dealer, err := shamir.NewDealer(uint32(threshold), secret, rand.Reader)
			if err != nil {
				printer.Error(err, "split failed")
				return err
			}

			// Mint shards, redrawing on the rare x collision so the
			// caller really gets N usable shards.
			minted := make([]*shamir.Shard, 0, shards)
			seen := make(map[string]bool, shards)
			for len(minted) < shards {
				s, err := dealer.NextShard(rand.Reader)
				if err != nil {
					printer.Error(err, "shard generation failed")
					return err
				}
				if seen[s.ID()] {
					continue
				}
				seen[s.ID()] = true
				minted = append(minted, s)
			}

			dir := outDir
			if dir == "" {
				dir = filepath.Dir(inFile)
			}
			baseName := filepath.Base(inFile)

			paths := make([]string, len(minted))
			ids := make([]string, len(minted))
			for i, s := range minted {
				name := fmt.Sprintf("%s.shard%d", baseName, i+1)
				p := filepath.Join(dir, name)
				if err := os.WriteFile(p, shamir.MarshalShard(s), 0o600); err != nil {
					printer.Error(err, fmt.Sprintf("failed to write shard %d", i+1))
					return err
				}
				paths[i] = p
				ids[i] = s.ID()
			}

			_ = auditor.Log(&audit.Entry{
				Operation: audit.OpSplit,
				InputFile: inFile,
				ShardIDs:  ids,
				Threshold: uint32(threshold),
				Shards:    shards,
				Success:   true,
			})

			if printer.Mode == OutputJSON {
				return printer.JSON(map[string]any{
					"scheme":    "shamir-gf2_32",
					"threshold": threshold,
					"total":     shards,
					"shards":    paths,
					"shard_ids": ids,
				})
			}

			printer.Human("Split secret into %d shards (threshold %d):", shards, threshold)
			for i, p := range paths {
				printer.Human("  %s  id=%s", p, ids[i])
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&inFile, "in", "", "path to the secret file to split")
	f.StringVar(&outDir, "out-dir", "", "directory for shard files (default: same as secret file)")
	f.IntVar(&shards, "shards", 0, "total number of shards (default from config, else 5)")
	f.IntVar(&threshold, "threshold", 0, "minimum shards to reconstruct (default from config, else 3)")

	return cmd
}
