package cli

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Skpow1234/Shardvault/internal/audit"
	"github.com/Skpow1234/Shardvault/internal/shamir"
	"github.com/Skpow1234/Shardvault/internal/util"
)

func newExpandCmd() *cobra.Command {
	var (
		shardFiles []string
		outDir     string
		baseName   string
		count      int
	)

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Mint additional shards from an existing quorum",
		Long: `Rebuild the full dealer from exactly K shards and mint new shards from it.

This is how a lost shard is replaced without re-splitting the secret: gather a
quorum, expand, and distribute the fresh shards. Full dealer recovery costs
more up front than plain recovery, so use 'recover' when you only need the
secret back.

Example:
  shardvault expand --shard master.key.shard1 --shard master.key.shard2 --shard master.key.shard4 --count 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := NewPrinter(flagJSON, flagQuiet)
			auditor := auditLogger(printer)

			if len(shardFiles) == 0 {
				return fmt.Errorf("at least one --shard is required")
			}
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
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

			dealer, err := shamir.Recover(quorum)
			if err != nil {
				printer.Error(err, "dealer recovery failed")
				return fmt.Errorf("%w: %v", util.ErrRecoverFailed, err)
			}

			// Fresh shards must not repeat each other or the quorum.
			seen := make(map[string]bool, len(quorum)+count)
			for _, s := range quorum {
				seen[s.ID()] = true
			}
			minted := make([]*shamir.Shard, 0, count)
			for len(minted) < count {
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
				dir = filepath.Dir(shardFiles[0])
			}
			base := baseName
			if base == "" {
				base = strippedShardName(filepath.Base(shardFiles[0]))
			}

			paths := make([]string, len(minted))
			ids := make([]string, len(minted))
			for i, s := range minted {
				name := fmt.Sprintf("%s.shard-new%d", base, i+1)
				p := filepath.Join(dir, name)
				if err := os.WriteFile(p, shamir.MarshalShard(s), 0o600); err != nil {
					printer.Error(err, fmt.Sprintf("failed to write shard %d", i+1))
					return err
				}
				paths[i] = p
				ids[i] = s.ID()
			}

			_ = auditor.Log(&audit.Entry{
				Operation: audit.OpExpand,
				ShardIDs:  ids,
				Threshold: uint32(k),
				Shards:    count,
				Success:   true,
			})

			if printer.Mode == OutputJSON {
				return printer.JSON(map[string]any{
					"scheme":    "shamir-gf2_32",
					"threshold": k,
					"minted":    count,
					"shards":    paths,
					"shard_ids": ids,
				})
			}

			printer.Human("Minted %d new shards (threshold %d):", count, k)
			for i, p := range paths {
				printer.Human("  %s  id=%s", p, ids[i])
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&shardFiles, "shard", nil, "path to a quorum shard file (repeat for each shard)")
	f.StringVar(&outDir, "out-dir", "", "directory for new shard files (default: same as first shard)")
	f.StringVar(&baseName, "base", "", "base name for new shard files (default: derived from first shard)")
	f.IntVar(&count, "count", 1, "number of new shards to mint")

	return cmd
}

// strippedShardName removes a trailing ".shardN" suffix so new shards
// of "master.key.shard1" become "master.key.shard-new1".
func strippedShardName(name string) string {
	ext := filepath.Ext(name)
	if len(ext) > len(".shard") && ext[:len(".shard")] == ".shard" {
		return name[:len(name)-len(ext)]
	}
	return name
}
