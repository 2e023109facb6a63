package config

import (
	"os"
	"path/filepath"
	"testing"

	u "github.com/araddon/gou"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	u.SetupLogging("warn")
}

func TestConfig(t *testing.T) {
	t.Setenv("DFA_HOME", "/tmp/dfa")

	var configData = `
# where saves go
log_level = debug
data_dir  = "$DFA_HOME/saved"
trace     = true
sink_label : dead
`
	conf, err := LoadConfig(configData)
	require.NoError(t, err)

	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, "/tmp/dfa/saved", conf.DataDir)
	assert.True(t, conf.Trace)
	assert.Equal(t, "dead", conf.SinkLabel)
	assert.Equal(t, "dfa> ", conf.Prompt, "unset keys keep defaults")
	assert.True(t, conf.Interactive)
}

func TestLoadConfigError(t *testing.T) {
	_, err := LoadConfig("trace = [")
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dfatool.conf")
	require.NoError(t, os.WriteFile(path, []byte("interactive = false\nprompt = \"> \"\n"), 0o644))

	conf, err := Load(path)
	require.NoError(t, err)
	assert.False(t, conf.Interactive)
	assert.Equal(t, "> ", conf.Prompt)

	_, err = Load(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err, "an explicit file must exist")
}

func TestLoadMissingDefault(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
}
