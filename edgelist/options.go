// SPDX-License-Identifier: MIT

package edgelist

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Format selects an edge-list encoding.
type Format int

const (
	// FormatAuto picks YAML for .yaml/.yml files or input starting with
	// "edges:" / "vertices:", text otherwise.
	FormatAuto Format = iota
	FormatText
	FormatYAML
)

var formatNames = map[string]Format{
	"auto": FormatAuto,
	"text": FormatText,
	"yaml": FormatYAML,
}

// ParseFormat resolves "auto", "text" or "yaml".
func ParseFormat(s string) (Format, error) {
	f, ok := formatNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return FormatAuto, errors.Wrapf(ErrUnknownFormat, "format %q", s)
	}

	return f, nil
}

func (f Format) String() string {
	for name, v := range formatNames {
		if v == f {
			return name
		}
	}

	return "unknown"
}

// FormatForPath guesses a format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Option configures a reader.
type Option func(*config)

type config struct {
	format      Format
	strict      bool
	maxVertices int
	log         logrus.FieldLogger
}

func newConfig(opts []Option) config {
	l := logrus.New()
	l.SetOutput(io.Discard)
	c := config{log: l}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// WithFormat forces the input format.
func WithFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// WithStrict turns an early stop of the text reader into ErrMalformedLine.
func WithStrict(strict bool) Option {
	return func(c *config) { c.strict = strict }
}

// WithMaxVertices refuses inputs with more than n distinct vertices.
// Zero means unlimited.
func WithMaxVertices(n int) Option {
	return func(c *config) { c.maxVertices = n }
}

// WithLogger receives debug messages about skipped and stopping lines.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
