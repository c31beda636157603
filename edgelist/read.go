// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/planarity/core"
)

// ReadFile reads the graph stored at path. With FormatAuto the extension
// decides, then the content.
func ReadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open edge list")
	}
	defer f.Close()

	c := newConfig(opts)
	if c.format == FormatAuto && FormatForPath(path) == FormatYAML {
		opts = append(opts, WithFormat(FormatYAML))
	}
	g, err := Read(f, opts...)
	if err != nil {
		return nil, errors.WithMessagef(err, "reading %s", path)
	}

	return g, nil
}

// Read parses an edge list from r.
func Read(r io.Reader, opts ...Option) (*core.Graph, error) {
	c := newConfig(opts)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read edge list")
	}

	format := c.format
	if format == FormatAuto {
		format = sniff(data)
	}
	c.log.WithField("format", format).Debug("reading edge list")

	switch format {
	case FormatYAML:
		return readYAML(data, c)
	default:
		return readText(data, c)
	}
}

// sniff recognises YAML by its first significant line.
func sniff(data []byte) Format {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || line == "---" {
			continue
		}
		if strings.HasPrefix(line, "edges:") || strings.HasPrefix(line, "vertices:") {
			return FormatYAML
		}
		return FormatText
	}

	return FormatText
}

func readText(data []byte, c config) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		u, errU := strconv.Atoi(fields[0])
		if errU == nil && len(fields) == 1 {
			return nil, errors.Wrapf(ErrMalformedLine, "line %d: missing second vertex", lineNo)
		}
		var v int
		var errV error
		if errU == nil {
			v, errV = strconv.Atoi(fields[1])
		}
		if errU != nil || errV != nil {
			if c.strict {
				return nil, errors.Wrapf(ErrMalformedLine, "line %d: %q", lineNo, line)
			}
			c.log.WithFields(logrus.Fields{"line": lineNo, "text": line}).Debug("end of edge list")
			break
		}

		if err := addEdge(g, u, v, c); err != nil {
			return nil, errors.WithMessagef(err, "line %d", lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning edge list")
	}

	return g, nil
}

type yamlDoc struct {
	Edges    [][]int `yaml:"edges"`
	Vertices []int   `yaml:"vertices,omitempty"`
}

func readYAML(data []byte, c config) (*core.Graph, error) {
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing YAML edge list")
	}

	g := core.NewGraph()
	for i, e := range doc.Edges {
		if len(e) != 2 {
			return nil, errors.Wrapf(ErrMalformedLine, "edge %d: want 2 vertices, got %d", i, len(e))
		}
		if err := addEdge(g, e[0], e[1], c); err != nil {
			return nil, errors.WithMessagef(err, "edge %d", i)
		}
	}
	for _, v := range doc.Vertices {
		g.AddVertex(v)
		if err := checkSize(g, c); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func addEdge(g *core.Graph, u, v int, c config) error {
	if err := g.AddEdge(u, v); err != nil {
		return errors.Wrapf(err, "edge %d-%d", u, v)
	}

	return checkSize(g, c)
}

func checkSize(g *core.Graph, c config) error {
	if c.maxVertices > 0 && g.VertexCount() > c.maxVertices {
		return errors.Wrapf(ErrTooManyVertices, "limit %d", c.maxVertices)
	}

	return nil
}
