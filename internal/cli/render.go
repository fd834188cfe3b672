package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/structlab/gmtgen/pkg/export"
	"github.com/structlab/gmtgen/pkg/target"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path
	uuid   string // target to render; defaults to the first in the set
	format string // "svg", "png" or "dot"
}

// renderCommand creates the render command: it regenerates one target of a
// set (generation is pure and cheap) and renders its graph via Graphviz.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "render <targets.toml>",
		Short: "Render a target's construction graph via Graphviz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRenderFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <uuid>.<format>)")
	cmd.Flags().StringVarP(&opts.uuid, "target", "t", "", "target UUID to render (default: first target)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")

	return cmd
}

func validateRenderFormat(format string) error {
	switch format {
	case "svg", "png", "dot":
		return nil
	}
	return fmt.Errorf("unknown format %q (want svg, png or dot)", format)
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	t, err := pickTarget(path, opts.uuid)
	if err != nil {
		return err
	}

	g, err := t.Generate(nil)
	if err != nil {
		return err
	}
	dot := export.ToDOT(g)

	out := opts.output
	if out == "" {
		out = t.UUID() + "." + opts.format
	}

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = export.RenderSVG(cmd.Context(), dot)
	case "png":
		data, err = export.RenderPNG(cmd.Context(), dot)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return err
	}

	printSuccess("Rendered %s", t.UUID())
	printFile(out)
	return nil
}

// pickTarget loads a target set and selects one validated target by UUID.
func pickTarget(path, uuid string) (*target.Target, error) {
	entries, err := target.Load(path)
	if err != nil {
		return nil, err
	}

	var uuids []string
	for _, e := range entries {
		t, err := target.NewTarget(e.Spec, e.ID)
		if err != nil {
			if uuid == "" {
				return nil, err
			}
			continue // only fail invalid entries when explicitly selected
		}
		if uuid == "" || t.UUID() == uuid {
			return t, nil
		}
		uuids = append(uuids, t.UUID())
	}
	return nil, fmt.Errorf("target %q not found (have: %s)", uuid, strings.Join(uuids, ", "))
}
