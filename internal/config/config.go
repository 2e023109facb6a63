// Package config loads dfatool settings from a confl file.
package config

import (
	"errors"
	"io/fs"
	"os"

	u "github.com/araddon/gou"
	"github.com/lytics/confl"
)

// DefaultFile is read when no -config flag is given. It may be absent.
const DefaultFile = "dfatool.conf"

// Config is the session configuration.
type Config struct {
	LogLevel    string `json:"log_level"`   // [debug,info,warn,error]
	DataDir     string `json:"data_dir"`    // relative save/dot paths land here
	SinkLabel   string `json:"sink_label"`  // preferred label of added sink states
	Trace       bool   `json:"trace"`       // print every step of run
	Prompt      string `json:"prompt"`      // REPL prompt
	Interactive bool   `json:"interactive"` // promptui prompts for build
}

// Default is the configuration used without a config file.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		DataDir:     "data",
		SinkLabel:   "sink",
		Prompt:      "dfa> ",
		Interactive: true,
	}
}

// LoadConfigFromFile reads a confl formatted config file from disk. Keys not
// present keep their Default value.
func LoadConfigFromFile(filename string) (*Config, error) {
	confBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadConfig(string(confBytes))
}

// LoadConfig decodes a confl formatted string. Environment variables are
// expanded first.
func LoadConfig(conf string) (*Config, error) {
	c := Default()
	if _, err := confl.Decode(os.ExpandEnv(conf), c); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads filename, or DefaultFile when filename is empty. A missing
// DefaultFile is not an error.
func Load(filename string) (*Config, error) {
	if filename != "" {
		return LoadConfigFromFile(filename)
	}
	c, err := LoadConfigFromFile(DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		u.Debugf("no %s, using defaults", DefaultFile)
		return Default(), nil
	}
	return c, err
}
