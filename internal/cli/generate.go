package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/structlab/gmtgen/pkg/pipeline"
	"github.com/structlab/gmtgen/pkg/target"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output    string // output directory for graph files and the manifest
	compress  bool   // gzip graph files
	noCache   bool   // disable the graph cache
	refresh   bool   // bypass cached graphs
	redisAddr string // redis cache backend (host:port)
}

// generateCommand creates the generate command, the main entry point:
// it reads a TOML target set and produces one graph file per target plus the
// simulator input manifest.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{output: "targets"}

	cmd := &cobra.Command{
		Use:   "generate <targets.toml>",
		Short: "Generate construction graphs for a target set",
		Long: `Generate construction graphs for every target in a TOML target set file.

Each target produces a GraphML file in the output directory, and the batch
produces a manifest.xml with the simulator input metadata for every target
that generated successfully. Failed targets are reported individually and do
not abort the batch.

Example target set:

  [[target]]
  kind         = "ramp"
  anchor       = [0, 0, 0]
  bounding_box = [4, 2, 2]
  orientation  = "E"
  shell        = "boundary"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().BoolVar(&opts.compress, "compress", false, "gzip generated graph files")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the graph cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached graphs")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "redis cache address (host:port)")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, path string, opts *generateOpts) error {
	ctx := cmd.Context()

	entries, err := target.Load(path)
	if err != nil {
		return err
	}
	c.Logger.Infof("loaded %d targets from %s", len(entries), path)

	cch, err := c.newCache(ctx, opts.noCache, opts.redisAddr)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer cch.Close()

	spinner := newSpinner(ctx, fmt.Sprintf("Generating %d targets...", len(entries)))
	spinner.Start()
	start := time.Now()
	results, err := pipeline.NewRunner(cch, c.Logger).Run(ctx, entries, pipeline.Options{
		OutputDir: opts.output,
		Compress:  opts.compress,
		Refresh:   opts.refresh,
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			printError("%s: %v", res.UUID, res.Err)
			continue
		}
		printSuccess("%s", res.UUID)
		printFile(res.Path)
		printStats(res.Nodes, res.Edges, res.Cached)
	}

	elapsed := time.Since(start).Round(time.Millisecond)
	if failed > 0 {
		printWarning("%d/%d targets failed (%s)", failed, len(results), elapsed)
		return fmt.Errorf("%d of %d targets failed", failed, len(results))
	}
	printSuccess("Generated %d targets (%s)", len(results), elapsed)
	return nil
}
