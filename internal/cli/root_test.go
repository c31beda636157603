// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/planar"
)

const (
	k4   = "1 2\n1 3\n1 4\n2 3\n2 4\n3 4\n"
	k5   = "1 2\n1 3\n1 4\n1 5\n2 3\n2 4\n2 5\n3 4\n3 5\n4 5\n"
	tail = "1 2\n2 3\n3 4\n4 2\n"
)

func writeFixture(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// run executes the root command and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd := createRootCommand(context.Background(), &Input{}, "v0.0.0-test")
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCreateRootCommand(t *testing.T) {
	rootCmd := createRootCommand(context.Background(), &Input{}, "")
	assert.Equal(t, "planarity", rootCmd.Use)
	for _, name := range []string{"check", "generate", "inspect"} {
		sub, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "check", writeFixture(t, "k4.txt", k4))
	require.NoError(t, err)
	assert.Equal(t, "planar\n", out)

	out, _, err = run(t, "check", writeFixture(t, "k5.txt", k5))
	require.NoError(t, err)
	assert.Equal(t, "nonplanar\n", out)
}

func TestCheck_Explain(t *testing.T) {
	out, _, err := run(t, "check", "--explain", writeFixture(t, "k4.txt", k4))
	require.NoError(t, err)
	assert.Equal(t, "planar (pieces embeddable) cycle=[1 3 4]\n", out)

	out, _, err = run(t, "check", "--explain", writeFixture(t, "k5.txt", k5))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "nonplanar (edge bound exceeded)"), out)
}

func TestCheck_ManyFiles(t *testing.T) {
	a := writeFixture(t, "k4.txt", k4)
	b := writeFixture(t, "k5.txt", k5)
	out, _, err := run(t, "check", a, b)
	require.NoError(t, err)
	assert.Equal(t, a+": planar\n"+b+": nonplanar\n", out)
}

func TestCheck_NotBiconnected(t *testing.T) {
	path := writeFixture(t, "tail.txt", tail)
	_, _, err := run(t, "check", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, planar.ErrNotBiconnected)
	assert.Contains(t, err.Error(), path)

	out, _, err := run(t, "check", "--blocks", path)
	require.NoError(t, err)
	assert.Equal(t, "planar\n", out)
}

func TestCheck_ConfigFile(t *testing.T) {
	cfg := writeFixture(t, "planarity.yaml", "blocks: true\nlog_level: warn\n")
	out, _, err := run(t, "--config", cfg, "check", writeFixture(t, "tail.txt", tail))
	require.NoError(t, err)
	assert.Equal(t, "planar\n", out)

	// an explicit flag wins over the file
	_, _, err = run(t, "--config", cfg, "check", "--blocks=false", writeFixture(t, "tail.txt", tail))
	assert.ErrorIs(t, err, planar.ErrNotBiconnected)

	bad := writeFixture(t, "bad.yaml", "max_depth: -1\n")
	_, _, err = run(t, "--config", bad, "check", writeFixture(t, "k4.txt", k4))
	assert.Error(t, err)
}

func TestCheck_Verbose(t *testing.T) {
	_, errOut, err := run(t, "-v", "check", writeFixture(t, "k4.txt", k4))
	require.NoError(t, err)
	assert.Contains(t, errOut, "msg=preflight")
	assert.Contains(t, errOut, "msg=checked")
	assert.Contains(t, errOut, "top-level cycle")
}

func TestCheck_Errors(t *testing.T) {
	_, _, err := run(t, "check")
	assert.Error(t, err)

	_, _, err = run(t, "check", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, _, err = run(t, "check", "--format", "xml", writeFixture(t, "k4.txt", k4))
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "generate", "cycle", "4")
	require.NoError(t, err)
	assert.Equal(t, "1 2\n1 4\n2 3\n3 4\n", out)

	out, _, err = run(t, "generate", "--offset", "0", "path", "3")
	require.NoError(t, err)
	assert.Equal(t, "0 1\n1 2\n", out)

	out, _, err = run(t, "generate", "--format", "yaml", "complete", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "edges:"), out)
	for _, pair := range []string{"[1, 2]", "[1, 3]", "[2, 3]"} {
		assert.Contains(t, out, pair)
	}
}

func TestGenerate_RoundTrip(t *testing.T) {
	cases := []struct {
		args   []string
		planar bool
	}{
		{[]string{"petersen"}, false},
		{[]string{"bipartite", "3", "3"}, false},
		{[]string{"grid", "3", "4"}, true},
		{[]string{"wheel", "7"}, true},
		{[]string{"platonic", "icosahedron"}, true},
		{[]string{"--center", "platonic", "cube"}, false},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "g.yaml")
			args := append([]string{"generate", "-o", path}, tc.args...)
			_, _, err := run(t, args...)
			require.NoError(t, err)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(data), "edges:"))

			out, _, err := run(t, "check", path)
			require.NoError(t, err)
			if tc.planar {
				assert.Equal(t, "planar\n", out)
			} else {
				assert.Equal(t, "nonplanar\n", out)
			}
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"generate", "hypercube", "3"},
		{"generate", "cycle"},
		{"generate", "cycle", "x"},
		{"generate", "cycle", "2"},
		{"generate", "platonic", "sphere"},
		{"generate", "random", "5", "1.5"},
	} {
		_, _, err := run(t, args...)
		assert.Error(t, err, strings.Join(args, " "))
	}
}

func TestInspect(t *testing.T) {
	out, _, err := run(t, "inspect", "--edges", writeFixture(t, "tail.txt", tail))
	require.NoError(t, err)

	facts := map[string]string{}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for _, line := range lines {
		k, v, ok := strings.Cut(line, ":")
		if ok {
			facts[k] = strings.TrimSpace(v)
		}
	}
	assert.Equal(t, "4", facts["vertices"])
	assert.Equal(t, "4", facts["edges"])
	assert.Equal(t, "true", facts["connected"])
	assert.Equal(t, "false", facts["biconnected"])
	assert.Equal(t, "2", facts["blocks"])
	assert.Equal(t, "false", facts["bipartite"])
	assert.Equal(t, "true", facts["edge bound"])
	assert.Contains(t, out, "\n1 2\n2 3\n2 4\n3 4\n")
}
