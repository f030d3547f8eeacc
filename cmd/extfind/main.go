// Package main implements extfind, a tool that finds files by extension.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/taigrr/extfind/internal/config"
	"github.com/taigrr/extfind/internal/finder"
	"github.com/taigrr/extfind/internal/logging"
	"github.com/taigrr/extfind/internal/pathfilter"
	"github.com/taigrr/extfind/internal/types"
)

type findOptions struct {
	extension  string
	ignore     string
	maxDepth   int
	count      bool
	verbose    bool
	configPath string
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "extfind [path]",
		Short: "Find files by extension",
		Long: `extfind recursively searches a directory for files whose extension
matches one of the given extensions and prints their paths as they
are found. Directories named in the ignore list are skipped entirely,
wherever they appear in the path.`,
		Example: `extfind -e go,mod
extfind ~/src -e md,txt -i .git,vendor -m 2
extfind serve ~/src`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.extension, "extension", "e", "", "comma-separated file extensions to find, without dots")
	flags.IntVarP(&opts.maxDepth, "max-depth", "m", types.Unlimited, "maximum recursion depth below the root, -1 for unlimited")
	flags.StringVarP(&opts.ignore, "ignore", "i", pathfilter.DefaultIgnore, "comma-separated directory names to skip")
	flags.BoolVarP(&opts.count, "count", "c", false, "print the number of matching files when done")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "report unreadable entries on stderr")
	flags.StringVar(&opts.configPath, "config", "", "YAML file with default settings")

	cmd.AddCommand(newServeCmd())

	return cmd
}

func runFind(cmd *cobra.Command, args []string, opts *findOptions) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	fileConfig, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("extension") && fileConfig.Extensions == nil {
		return fmt.Errorf(`required flag(s) "extension" not set`)
	}

	cfg := config.Resolve(root, config.Flags{
		Extension: opts.extension,
		Ignore:    opts.ignore,
		MaxDepth:  opts.maxDepth,
		Verbose:   opts.verbose,
		Count:     opts.count,
		Changed:   flags.Changed,
	}, fileConfig)

	out := cmd.OutOrStdout()
	if len(cfg.Extensions) == 0 {
		fmt.Fprintln(out, finder.NoExtensionsMessage)
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc := finder.New(logging.New(cmd.ErrOrStderr(), cfg.Verbose))
	found, err := svc.Find(ctx, cfg, func(path string) error {
		_, err := fmt.Fprintln(out, path)
		return err
	})
	if err != nil {
		return fmt.Errorf("search interrupted: %w", err)
	}

	if cfg.Count {
		plural := "s"
		if found == 1 {
			plural = ""
		}
		color.New(color.FgGreen).Fprintf(out, "\nFound %d matching file%s\n", found, plural)
	}

	return nil
}
