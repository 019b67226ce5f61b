// Package manifest loads machtarget.toml, which names frequently used
// target configurations so CLI invocations can say "release" instead
// of "macos/arm64".
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"machtarget/internal/target"
)

// Manifest is a loaded machtarget.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config is the TOML document layout.
type Config struct {
	Target map[string]TargetEntry `toml:"target"`
}

// TargetEntry is one named target configuration.
type TargetEntry struct {
	OS   string `toml:"os"`
	Arch string `toml:"arch"`
	ABI  string `toml:"abi"`
}

// Find walks from startDir towards the filesystem root looking for
// machtarget.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "machtarget.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and parses the nearest manifest. The second return is
// false when no manifest exists, which is not an error.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, false, err
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, false, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// Resolve maps a named entry to its target key.
func (m *Manifest) Resolve(name string) (target.Key, bool, error) {
	entry, ok := m.Config.Target[name]
	if !ok {
		return target.Key{}, false, nil
	}
	osv, err := target.ParseOS(entry.OS)
	if err != nil {
		return target.Key{}, false, fmt.Errorf("target %q in %s: %w", name, m.Path, err)
	}
	arch, err := target.ParseArch(entry.Arch)
	if err != nil {
		return target.Key{}, false, fmt.Errorf("target %q in %s: %w", name, m.Path, err)
	}
	abi, err := target.ParseABI(entry.ABI)
	if err != nil {
		return target.Key{}, false, fmt.Errorf("target %q in %s: %w", name, m.Path, err)
	}
	return target.Key{OS: osv, Arch: arch, ABI: abi}, true, nil
}
