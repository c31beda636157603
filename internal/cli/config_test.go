// SPDX-License-Identifier: MIT

package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.True(t, cfg.Preflight)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeFixture(t, "c.yaml", "max_depth: 4\nformat: yaml\nstrict: true\npreflight: false\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:  "info",
		MaxDepth:  4,
		Format:    "yaml",
		Strict:    true,
		Preflight: false,
	}, cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)

	for _, body := range []string{
		"max_depth: [1]\n",
		"log_level: loud\n",
		"max_vertices: -2\n",
		"format: csv\n",
	} {
		_, err := LoadConfig(writeFixture(t, "c.yaml", body))
		assert.Error(t, err, body)
	}
}
