// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planarity/edgelist"
	"github.com/katalvlaran/planarity/preflight"
)

func newInspectCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print structural facts about an edge-list file",
		Args:  cobra.ExactArgs(1),
		RunE:  newInspectAction(input),
	}
	cmd.Flags().BoolVar(&input.showEdges, "edges", false, "also print the graph")
	cmd.Flags().StringVar(&input.format, "format", "auto", "input format: auto, text or yaml")
	cmd.Flags().BoolVar(&input.strict, "strict", false, "treat a malformed line as an error instead of end of input")

	return cmd
}

func newInspectAction(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := input.resolve(cmd); err != nil {
			return err
		}
		g, err := edgelist.ReadFile(args[0], input.readOptions()...)
		if err != nil {
			return err
		}
		rep, err := preflight.Analyze(g)
		if err != nil {
			return err
		}
		bip, _, err := preflight.Bipartite(g)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
		fmt.Fprintf(w, "vertices:\t%d\n", rep.Vertices)
		fmt.Fprintf(w, "edges:\t%d\n", rep.Edges)
		fmt.Fprintf(w, "components:\t%d\n", rep.Components)
		fmt.Fprintf(w, "connected:\t%t\n", rep.Connected)
		fmt.Fprintf(w, "acyclic:\t%t\n", rep.Acyclic)
		fmt.Fprintf(w, "biconnected:\t%t\n", rep.Biconnected)
		fmt.Fprintf(w, "blocks:\t%d\n", rep.Blocks)
		fmt.Fprintf(w, "bipartite:\t%t\n", bip)
		fmt.Fprintf(w, "edge bound:\t%t\n", rep.WithinEdgeBound)
		if err := w.Flush(); err != nil {
			return err
		}
		if input.showEdges {
			return edgelist.Write(cmd.OutOrStdout(), g, edgelist.FormatText)
		}

		return nil
	}
}
