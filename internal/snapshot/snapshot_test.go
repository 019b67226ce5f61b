package snapshot

import (
	"bytes"
	"testing"

	"machtarget/internal/deploy"
	"machtarget/internal/target"
)

func TestCapture_CoversCatalog(t *testing.T) {
	snap := Capture(deploy.MapEnv(nil))
	keys := target.Keys()
	if len(snap.Entries) != len(keys) {
		t.Fatalf("len(Entries) = %d, want %d", len(snap.Entries), len(keys))
	}
	for i, entry := range snap.Entries {
		if entry.Spec != keys[i].String() {
			t.Errorf("Entries[%d].Spec = %q, want %q", i, entry.Spec, keys[i].String())
		}
		if entry.Triple == "" || entry.Deployment == "" || entry.CPU == "" {
			t.Errorf("%s: incomplete entry %+v", entry.Spec, entry)
		}
		if len(entry.LdArgs) == 0 || len(entry.CcArgs) == 0 {
			t.Errorf("%s: missing link args", entry.Spec)
		}
		if entry.PlatformCode == 0 {
			t.Errorf("%s: missing platform code", entry.Spec)
		}
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	env := deploy.MapEnv(map[string]string{"MACOSX_DEPLOYMENT_TARGET": "13.0"})
	snap := Capture(env)

	var buf bytes.Buffer
	if err := Write(&buf, snap); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if got.Schema != snap.Schema {
		t.Errorf("Schema = %d, want %d", got.Schema, snap.Schema)
	}
	if len(got.Entries) != len(snap.Entries) {
		t.Fatalf("len(Entries) = %d, want %d", len(got.Entries), len(snap.Entries))
	}
	for i := range got.Entries {
		if got.Entries[i].Triple != snap.Entries[i].Triple {
			t.Errorf("Entries[%d].Triple = %q, want %q", i, got.Entries[i].Triple, snap.Entries[i].Triple)
		}
	}
}

func TestRead_RejectsUnknownSchema(t *testing.T) {
	snap := Capture(deploy.MapEnv(nil))
	snap.Schema = 99

	var buf bytes.Buffer
	if err := Write(&buf, snap); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if _, err := Read(&buf); err == nil {
		t.Error("Read() should reject an unknown schema version")
	}
}
