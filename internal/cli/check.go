// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/planarity/edgelist"
	"github.com/katalvlaran/planarity/planar"
	"github.com/katalvlaran/planarity/preflight"
)

func newCheckCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Print planar or nonplanar for each edge-list file",
		Args:  cobra.MinimumNArgs(1),
		RunE:  newCheckAction(input),
	}
	cmd.Flags().BoolVar(&input.explain, "explain", false, "print the reason and the deciding cycle")
	cmd.Flags().BoolVar(&input.strict, "strict", false, "treat a malformed line as an error instead of end of input")
	cmd.Flags().BoolVar(&input.blocks, "blocks", false, "test each biconnected block separately")
	cmd.Flags().IntVar(&input.maxDepth, "max-depth", 0, "recursion ceiling, 0 = unlimited")
	cmd.Flags().StringVar(&input.format, "format", "auto", "input format: auto, text or yaml")

	return cmd
}

func newCheckAction(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := input.resolve(cmd); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, path := range args {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			res, err := input.checkFile(path)
			if err != nil {
				return errors.WithMessage(err, path)
			}
			line := verdict(res)
			if input.explain {
				line = fmt.Sprintf("%s (%s)", line, res.Reason)
				if res.Cycle != nil {
					line = fmt.Sprintf("%s cycle=%v", line, res.Cycle)
				}
			}
			if len(args) > 1 {
				line = path + ": " + line
			}
			fmt.Fprintln(out, line)
		}

		return nil
	}
}

func (i *Input) checkFile(path string) (*planar.Result, error) {
	g, err := edgelist.ReadFile(path, i.readOptions()...)
	if err != nil {
		return nil, err
	}
	entry := i.log.WithField("file", path)

	if i.cfg.Preflight {
		rep, err := preflight.Analyze(g)
		if err != nil {
			return nil, err
		}
		entry.WithFields(log.Fields{
			"vertices":    rep.Vertices,
			"edges":       rep.Edges,
			"components":  rep.Components,
			"biconnected": rep.Biconnected,
			"blocks":      rep.Blocks,
		}).Debug("preflight")
		if !rep.Biconnected && !rep.Acyclic && !i.cfg.Blocks {
			entry.Warn("graph is not biconnected; consider --blocks")
		}
	}

	res, err := planar.IsPlanar(g, i.planarOptions()...)
	if err != nil {
		return nil, err
	}
	entry.WithFields(log.Fields{
		"planar": res.Planar,
		"reason": res.Reason,
		"calls":  res.Calls,
		"depth":  res.MaxDepth,
	}).Info("checked")

	return res, nil
}

func verdict(res *planar.Result) string {
	if res.Planar {
		return "planar"
	}

	return "nonplanar"
}
