package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive mode — guided workflow",
		Long:  "Launch an interactive menu to walk through ShardVault operations step by step.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var action string

			err := huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Split a secret into shards", "split"),
					huh.NewOption("Recover a secret from shards", "recover"),
					huh.NewOption("Mint additional shards from a quorum", "expand"),
					huh.NewOption("Inspect shard files", "inspect"),
					huh.NewOption("Exit", "exit"),
				).
				Value(&action).
				Run()
			if err != nil {
				return err
			}

			switch action {
			case "split":
				return runSplitMenu(cmd)
			case "recover":
				return runRecoverMenu(cmd)
			case "expand":
				return runExpandMenu(cmd)
			case "inspect":
				return runInspectMenu(cmd)
			case "exit":
				fmt.Println("Goodbye.")
				return nil
			}
			return nil
		},
	}
	return cmd
}

func runSplitMenu(cmd *cobra.Command) error {
	var (
		inFile    string
		outDir    string
		shards    string
		threshold string
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Secret file to split").
				Placeholder("/path/to/master.key").
				Value(&inFile),
			huh.NewInput().
				Title("Output directory (leave blank for the secret's directory)").
				Value(&outDir),
			huh.NewInput().
				Title("Total shards (N)").
				Placeholder("5").
				Value(&shards),
			huh.NewInput().
				Title("Threshold (K)").
				Placeholder("3").
				Value(&threshold),
		),
	).Run()
	if err != nil {
		return err
	}

	argv := []string{"split", "--in", inFile}
	if outDir != "" {
		argv = append(argv, "--out-dir", outDir)
	}
	if n, err := strconv.Atoi(shards); err == nil && n > 0 {
		argv = append(argv, "--shards", shards)
	}
	if n, err := strconv.Atoi(threshold); err == nil && n > 0 {
		argv = append(argv, "--threshold", threshold)
	}
	return rerun(cmd, argv)
}

func runRecoverMenu(cmd *cobra.Command) error {
	var (
		shardList string
		outFile   string
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Shard files (one per line)").
				Value(&shardList),
			huh.NewInput().
				Title("Output path for the recovered secret").
				Placeholder("/path/to/master.key").
				Value(&outFile),
		),
	).Run()
	if err != nil {
		return err
	}

	argv := []string{"recover", "--out", outFile}
	for _, p := range splitLines(shardList) {
		argv = append(argv, "--shard", p)
	}
	return rerun(cmd, argv)
}

func runExpandMenu(cmd *cobra.Command) error {
	var (
		shardList string
		count     string
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Quorum shard files (one per line)").
				Value(&shardList),
			huh.NewInput().
				Title("How many new shards to mint").
				Placeholder("1").
				Value(&count),
		),
	).Run()
	if err != nil {
		return err
	}

	argv := []string{"expand"}
	for _, p := range splitLines(shardList) {
		argv = append(argv, "--shard", p)
	}
	if n, err := strconv.Atoi(count); err == nil && n > 0 {
		argv = append(argv, "--count", count)
	}
	return rerun(cmd, argv)
}

func runInspectMenu(cmd *cobra.Command) error {
	var shardList string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Shard files (one per line)").
				Value(&shardList),
		),
	).Run()
	if err != nil {
		return err
	}

	argv := []string{"inspect"}
	for _, p := range splitLines(shardList) {
		argv = append(argv, "--shard", p)
	}
	return rerun(cmd, argv)
}

// rerun dispatches the collected arguments through a fresh root
// command, so menu flows behave exactly like the flag-based CLI.
func rerun(cmd *cobra.Command, argv []string) error {
	root := NewRootCmd()
	root.SetArgs(argv)
	root.SetOut(cmd.OutOrStdout())
	root.SetErr(cmd.ErrOrStderr())
	return root.Execute()
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
