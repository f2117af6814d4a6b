package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/golang/glog"
	"sigs.k8s.io/yaml"

	"modemboard-go/errcode"
)

// EnvBoard names the environment variable that selects a board.
const EnvBoard = "MODEMBOARD_BOARD"

// DefaultPath is where tools look for a config file when none is given.
const DefaultPath = "board.yaml"

// Config is the on-disk board selection.
//
//	board: t-a7670
//	allowIncompatible: false
type Config struct {
	// Board accepts any spelling board.ParseID understands.
	Board string `json:"board,omitempty"`
	// AllowIncompatible permits table entries marked incompatible.
	AllowIncompatible bool `json:"allowIncompatible,omitempty"`
}

// ReadFile allows overriding how config files are read.
var ReadFile = os.ReadFile

// LookupEnv allows overriding how the environment is consulted.
var LookupEnv = os.LookupEnv

// Load reads the config at path. A missing file is an empty config.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		glog.V(2).Infof("Board config: %s not found, using defaults", path)
		return Config{}, nil
	}
	if err != nil {
		return Config{}, errcode.Wrap(errcode.InvalidConfig, "config.Load", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errcode.Wrap(errcode.InvalidConfig, "config.Load "+path, err)
	}
	glog.Infof("Board config: loaded %s", path)
	return cfg, nil
}

// Parse decodes YAML (or JSON) config bytes. Unknown keys are rejected so
// that a misspelt "board" key does not silently select nothing.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) { return yaml.Marshal(cfg) }
