// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/planarity/edgelist"
	"github.com/katalvlaran/planarity/planar"
)

// Input holds the values of command-line flags.
type Input struct {
	configPath string
	verbose    bool

	// check
	explain  bool
	strict   bool
	blocks   bool
	maxDepth int
	format   string

	// generate
	offset int
	seed   int64
	center bool
	output string

	// inspect
	showEdges bool

	cfg Config
	log *log.Logger
}

// resolve loads the config file and lets explicitly set flags win.
func (i *Input) resolve(cmd *cobra.Command) error {
	cfg, err := LoadConfig(i.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict = i.strict
	}
	if flags.Changed("blocks") {
		cfg.Blocks = i.blocks
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = i.maxDepth
	}
	if flags.Changed("format") {
		cfg.Format = i.format
	}
	if i.verbose {
		cfg.LogLevel = log.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	i.cfg = cfg
	i.log = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	return nil
}

func newLogger(w io.Writer, level string) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if lvl, err := log.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	}

	return l
}

func (i *Input) readOptions() []edgelist.Option {
	format, _ := edgelist.ParseFormat(i.cfg.Format)
	return []edgelist.Option{
		edgelist.WithFormat(format),
		edgelist.WithStrict(i.cfg.Strict),
		edgelist.WithMaxVertices(i.cfg.MaxVertices),
		edgelist.WithLogger(i.log),
	}
}

func (i *Input) planarOptions() []planar.Option {
	opts := []planar.Option{
		planar.WithMaxDepth(i.cfg.MaxDepth),
		planar.WithLogger(i.log),
	}
	if i.cfg.Blocks {
		opts = append(opts, planar.WithBlocks())
	}

	return opts
}
