package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fortio.org/log"
	"fortio.org/struct2env"
	"gopkg.in/yaml.v3"
	"mainlang.io/mainlang/interp"
)

const (
	EnvPrefix = "MAINLANG_"
	// virtual/token filename, will be replaced by actual home dir if not changed.
	historyDefault = "~/.mainlang_history"
)

// Config holds the settings that can come from a YAML file or the
// environment as well as from flags.
type Config struct {
	HistoryFile string `yaml:"history_file"`
	MaxDepth    int    `yaml:"max_depth"`
	MaxSteps    int    `yaml:"max_steps"`
	ConfigFile  string `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		HistoryFile: historyDefault,
		MaxDepth:    interp.DefaultMaxDepth,
		MaxSteps:    interp.DefaultMaxSteps,
	}
}

// LoadFile overlays the values set in the YAML file path. Unknown keys are errors.
func (c *Config) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	err = dec.Decode(c)
	if err != nil && !errors.Is(err, io.EOF) { // EOF: empty file.
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// FromEnv overlays the MAINLANG_* environment variables that are set.
func (c *Config) FromEnv() error {
	return errors.Join(struct2env.SetFromEnv(EnvPrefix, c)...)
}

// ResolveConfig computes the effective configuration: defaults, then the
// YAML file (from the -config flag or MAINLANG_CONFIG_FILE), then the
// environment, then the flags explicitly set on the command line.
// flags maps flag names to the Config field they set.
func ResolveConfig(fs *flag.FlagSet, configFlag string, flags map[string]func(*Config)) (Config, error) {
	cfg := DefaultConfig()
	// Environment first only to learn the config file name.
	env := Config{}
	if err := env.FromEnv(); err != nil {
		return cfg, err
	}
	file := env.ConfigFile
	if configFlag != "" {
		file = configFlag
	}
	if file != "" {
		if err := cfg.LoadFile(file); err != nil {
			return cfg, err
		}
		cfg.ConfigFile = file
	}
	if err := cfg.FromEnv(); err != nil {
		return cfg, err
	}
	if file != "" {
		cfg.ConfigFile = file
	}
	fs.Visit(func(f *flag.Flag) {
		if set, ok := flags[f.Name]; ok {
			set(&cfg)
		}
	})
	return cfg, nil
}

// HistoryPath expands the default history file name to the home directory.
func (c *Config) HistoryPath() string {
	if c.HistoryFile != historyDefault {
		return c.HistoryFile
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Couldn't get user home dir: %v", err)
		return ""
	}
	return filepath.Join(homeDir, ".mainlang_history")
}

func EnvHelp(w io.Writer) {
	res, _ := struct2env.StructToEnvVars(DefaultConfig())
	str := struct2env.ToShellWithPrefix(EnvPrefix, res, true)
	fmt.Fprintln(w, "# Mainlang environment variables:")
	fmt.Fprint(w, str)
}
