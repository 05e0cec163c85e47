// Package config implements SPEC_FULL.md §2.3's ambient configuration
// layer: flat `key = value` settings (the teacher's two "user.name" /
// "commit.gpgsign"-style settings without the teacher's remote/section
// layout, since this system's remotes already live in the control
// record's Refs.Remotes map). Grounded in the teacher's
// internal/config/config.go Load/Write, reduced from its `[section]` /
// `[remote "name"]` INI-like format to the flat file spec.md's
// configuration needs actually call for: user identity and a handful of
// display preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/localvcs/snap/internal/fsutil"
)

// Config is a flat string->string settings map, merged from the global
// file (~/.snaprc) and the repository-local file (.snap/config), with
// local values taking precedence.
type Config map[string]string

const globalFileName = ".snaprc"
const localFileName = "config"

// Load reads ~/.snaprc and <root>/.snap/config and merges them, local
// overriding global.
func Load(root string) (Config, error) {
	cfg := Config{}
	if home, err := os.UserHomeDir(); err == nil {
		global, err := readFile(filepath.Join(home, globalFileName))
		if err != nil {
			return nil, err
		}
		for k, v := range global {
			cfg[k] = v
		}
	}
	local, err := readFile(localPath(root))
	if err != nil {
		return nil, err
	}
	for k, v := range local {
		cfg[k] = v
	}
	return cfg, nil
}

func localPath(root string) string {
	return filepath.Join(root, ".snap", localFileName)
}

func readFile(path string) (Config, error) {
	if !fsutil.FileExists(path) {
		return Config{}, nil
	}
	data, err := fsutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Config{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		cfg[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return cfg, nil
}

// SetLocal writes key=value into <root>/.snap/config, preserving every
// other key already there.
func SetLocal(root, key, value string) error {
	cfg, err := readFile(localPath(root))
	if err != nil {
		return err
	}
	cfg[key] = value
	return writeFile(localPath(root), cfg)
}

// SetGlobal writes key=value into ~/.snaprc, preserving every other key
// already there.
func SetGlobal(key, value string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path := filepath.Join(home, globalFileName)
	cfg, err := readFile(path)
	if err != nil {
		return err
	}
	cfg[key] = value
	return writeFile(path, cfg)
}

func writeFile(path string, cfg Config) error {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&buf, "%s = %s\n", k, cfg[k])
	}
	return fsutil.WriteFile(path, []byte(buf.String()))
}

// UserName returns the "user.name" setting, or "" if unset.
func (c Config) UserName() string { return c["user.name"] }

// UserEmail returns the "user.email" setting, or "" if unset.
func (c Config) UserEmail() string { return c["user.email"] }
