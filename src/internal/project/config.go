package project

import (
	"deborg/src/internal/orgparse"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const FileName = "deborg.toml"

// Config is the content of a project's deborg.toml.
type Config struct {
	Org     OrgConfig               `toml:"org"`
	Targets map[string]TargetConfig `toml:"targets"`
}

type OrgConfig struct {
	// File is the default org file, relative to the deborg.toml directory.
	File string `toml:"file,omitempty"`
}

// TargetConfig is a saved distro/release/tags combination.
type TargetConfig struct {
	Distro  string   `toml:"distro"`
	Release string   `toml:"release"`
	Tags    []string `toml:"tags,omitempty"`
}

func NewDefault() Config {
	return Config{Targets: map[string]TargetConfig{}}
}

func LoadOrCreate(projectDir string) (Config, string, error) {
	path := filepath.Join(projectDir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := NewDefault()
		if err := Save(path, cfg); err != nil {
			return Config{}, "", err
		}
		return cfg, path, nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Targets == nil {
		cfg.Targets = map[string]TargetConfig{}
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	if cfg.Targets == nil {
		cfg.Targets = map[string]TargetConfig{}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Target returns the named target as an extraction target.
func (c Config) Target(name string) (orgparse.Target, error) {
	t, ok := c.Targets[NormalizeTargetName(name)]
	if !ok {
		return orgparse.Target{}, fmt.Errorf("target %q is not defined in %s", name, FileName)
	}
	return orgparse.Target{Platform: t.Distro, Release: t.Release, Tags: t.Tags}, nil
}

// TargetNames returns the defined target names in sorted order.
func (c Config) TargetNames() []string {
	names := make([]string, 0, len(c.Targets))
	for name := range c.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NormalizeTargetName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
