// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/planarity/core"
)

// Write encodes g in the given format. FormatAuto writes text. Edges are
// written once each, smaller endpoint first, in ascending order; isolated
// vertices survive only in YAML.
func Write(w io.Writer, g *core.Graph, f Format) error {
	if f == FormatYAML {
		return writeYAML(w, g)
	}

	return writeText(w, g)
}

func writeText(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.U, e.V); err != nil {
			return errors.Wrap(err, "writing edge list")
		}
	}

	return errors.Wrap(bw.Flush(), "writing edge list")
}

// flowPair renders as "[u, v]".
type flowPair [2]int

func (p flowPair) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range p {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)})
	}

	return n, nil
}

func writeYAML(w io.Writer, g *core.Graph) error {
	doc := struct {
		Edges    []flowPair `yaml:"edges"`
		Vertices []int      `yaml:"vertices,omitempty,flow"`
	}{Edges: []flowPair{}}

	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, flowPair{e.U, e.V})
	}
	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d == 0 {
			doc.Vertices = append(doc.Vertices, v)
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encoding YAML edge list")
	}

	return errors.Wrap(enc.Close(), "encoding YAML edge list")
}
