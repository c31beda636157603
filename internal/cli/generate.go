// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/planarity/builder"
	"github.com/katalvlaran/planarity/edgelist"
)

// family builds a constructor from positional arguments.
type family struct {
	args  string
	nargs int
	build func(a []string, input *Input) (builder.Constructor, error)
}

var families = map[string]family{
	"cycle":     {"N", 1, unary(builder.Cycle)},
	"path":      {"N", 1, unary(builder.Path)},
	"star":      {"N", 1, unary(builder.Star)},
	"wheel":     {"N", 1, unary(builder.Wheel)},
	"complete":  {"N", 1, unary(builder.Complete)},
	"bipartite": {"N M", 2, binary(builder.CompleteBipartite)},
	"grid":      {"ROWS COLS", 2, binary(builder.Grid)},
	"regular":   {"N D", 2, binary(builder.RandomRegular)},
	"petersen": {"", 0, func([]string, *Input) (builder.Constructor, error) {
		return builder.Petersen(), nil
	}},
	"platonic": {"NAME", 1, func(a []string, input *Input) (builder.Constructor, error) {
		name, err := builder.ParsePlatonicName(a[0])
		if err != nil {
			return nil, err
		}
		return builder.PlatonicSolid(name, input.center), nil
	}},
	"random": {"N P", 2, func(a []string, _ *Input) (builder.Constructor, error) {
		n, err := strconv.Atoi(a[0])
		if err != nil {
			return nil, errors.Wrap(err, "N")
		}
		p, err := strconv.ParseFloat(a[1], 64)
		if err != nil {
			return nil, errors.Wrap(err, "P")
		}
		return builder.RandomSparse(n, p), nil
	}},
}

func unary(fn func(int) builder.Constructor) func([]string, *Input) (builder.Constructor, error) {
	return func(a []string, _ *Input) (builder.Constructor, error) {
		n, err := strconv.Atoi(a[0])
		if err != nil {
			return nil, errors.Wrap(err, "N")
		}
		return fn(n), nil
	}
}

func binary(fn func(int, int) builder.Constructor) func([]string, *Input) (builder.Constructor, error) {
	return func(a []string, _ *Input) (builder.Constructor, error) {
		n, err := strconv.Atoi(a[0])
		if err != nil {
			return nil, errors.Wrap(err, a[0])
		}
		m, err := strconv.Atoi(a[1])
		if err != nil {
			return nil, errors.Wrap(err, a[1])
		}
		return fn(n, m), nil
	}
}

func familyUsage() string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString("Families:\n")
	for _, name := range names {
		b.WriteString("  " + strings.TrimSpace(name+" "+families[name].args) + "\n")
	}

	return b.String()
}

func newGenerateCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate FAMILY [ARGS...]",
		Short: "Write a graph from a standard family as an edge list",
		Long:  familyUsage(),
		Args:  cobra.MinimumNArgs(1),
		RunE:  newGenerateAction(input),
	}
	cmd.Flags().StringVar(&input.format, "format", "auto", "output format: auto, text or yaml")
	cmd.Flags().IntVar(&input.offset, "offset", 1, "label of the first vertex")
	cmd.Flags().Int64Var(&input.seed, "seed", 1, "seed for random families")
	cmd.Flags().BoolVar(&input.center, "center", false, "platonic: add a hub joined to every vertex")
	cmd.Flags().StringVarP(&input.output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func newGenerateAction(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := input.resolve(cmd); err != nil {
			return err
		}
		fam, ok := families[strings.ToLower(args[0])]
		if !ok {
			return errors.Errorf("unknown family %q", args[0])
		}
		if len(args)-1 != fam.nargs {
			return errors.Errorf("%s expects %d argument(s): %s", args[0], fam.nargs, fam.args)
		}
		cons, err := fam.build(args[1:], input)
		if err != nil {
			return err
		}
		g, err := builder.BuildGraph([]builder.BuilderOption{
			builder.WithOffset(input.offset),
			builder.WithSeed(input.seed),
		}, cons)
		if err != nil {
			return err
		}

		format, _ := edgelist.ParseFormat(input.cfg.Format)
		var w io.Writer = cmd.OutOrStdout()
		if input.output != "" {
			f, err := os.Create(input.output)
			if err != nil {
				return errors.Wrap(err, "unable to create output")
			}
			defer f.Close()
			w = f
			if format == edgelist.FormatAuto {
				format = edgelist.FormatForPath(input.output)
			}
		}
		if format == edgelist.FormatAuto {
			format = edgelist.FormatText
		}
		input.log.WithField("family", args[0]).
			WithField("vertices", g.VertexCount()).
			WithField("edges", g.EdgeCount()).
			Debug("generated")

		return edgelist.Write(w, g, format)
	}
}
