// Package snapshot serializes the full target matrix so other tools
// can consume the computed configurations without linking this module.
package snapshot

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"machtarget/internal/base"
	"machtarget/internal/deploy"
	"machtarget/internal/linkargs"
	"machtarget/internal/macho"
	"machtarget/internal/target"
)

// Current schema version - increment when the Entry format changes.
const schemaVersion uint16 = 1

// Entry captures everything computed for one target configuration.
type Entry struct {
	Spec string // "<os>/<arch>[/<abi>]"

	Triple     string
	ArchFamily string
	CPU        string
	Deployment string // resolved deployment target, "major.minor.patch"

	PlatformCode uint32
	SDKMajor     uint16
	SDKMinor     uint8

	LdArgs    []string
	CcArgs    []string
	EnvRemove []string
}

// Snapshot is the serialized document.
type Snapshot struct {
	Schema  uint16
	Entries []Entry
}

// Capture evaluates every supported target against the given
// environment snapshot.
func Capture(env deploy.Env) Snapshot {
	keys := target.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		opts, tr, family := base.Base(env, k.OS, k.Arch, k.ABI)
		code, _ := macho.PlatformCode(k.OS, k.ABI)
		sdkMajor, sdkMinor, _ := macho.FallbackSDKVersion(code)
		entries = append(entries, Entry{
			Spec:         k.String(),
			Triple:       tr,
			ArchFamily:   family,
			CPU:          opts.CPU,
			Deployment:   deploy.Resolve(env, k.OS, k.Arch, k.ABI).String(),
			PlatformCode: code,
			SDKMajor:     sdkMajor,
			SDKMinor:     sdkMinor,
			LdArgs:       opts.LinkArgs.Tokens(linkargs.DirectLinker),
			CcArgs:       opts.LinkArgs.Tokens(linkargs.CompilerDriver),
			EnvRemove:    opts.EnvRemove,
		})
	}
	return Snapshot{Schema: schemaVersion, Entries: entries}
}

// Write encodes the snapshot to w.
func Write(w io.Writer, snap Snapshot) error {
	if err := msgpack.NewEncoder(w).Encode(&snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// Read decodes a snapshot from r, rejecting unknown schema versions.
func Read(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Schema != schemaVersion {
		return Snapshot{}, fmt.Errorf("unsupported snapshot schema %d (want %d)", snap.Schema, schemaVersion)
	}
	return snap, nil
}
