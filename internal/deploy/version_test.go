package deploy

import (
	"fmt"
	"testing"
)

func TestParseVersion_Lenient(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{in: "12", want: Version{Major: 12}},
		{in: "12.3", want: Version{Major: 12, Minor: 3}},
		{in: "12.3.4", want: Version{Major: 12, Minor: 3, Patch: 4}},
		{in: "0", want: Version{}},
		{in: "10.12.0", want: Version{Major: 10, Minor: 12}},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "12.x", wantErr: true},
		{in: "12.3.4.5", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "12.3.-4", wantErr: true},
		// Component widths are bounded by LC_BUILD_VERSION fields.
		{in: "70000", wantErr: true},
		{in: "12.300", wantErr: true},
		{in: "12.3.400", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseVersion(%q) should fail, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVersion(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVersion(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseVersion_FormatRoundTrip(t *testing.T) {
	versions := []Version{
		{},
		{Major: 10, Minor: 12},
		{Major: 11},
		{Major: 13, Minor: 1},
		{Major: 14, Minor: 2, Patch: 1},
		{Major: 65535, Minor: 255, Patch: 255},
	}
	for _, v := range versions {
		parsed, err := ParseVersion(v.String())
		if err != nil {
			t.Fatalf("ParseVersion(%q) failed: %v", v.String(), err)
		}
		if parsed != v {
			t.Errorf("ParseVersion(%q) = %v, want %v", v.String(), parsed, v)
		}
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{Version{Major: 10}, Version{Major: 10}, 0},
		{Version{Major: 9}, Version{Major: 10}, -1},
		{Version{Major: 10, Minor: 2}, Version{Major: 10, Minor: 12}, -1},
		{Version{Major: 10, Minor: 12, Patch: 1}, Version{Major: 10, Minor: 12}, 1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Compare(tt.a); got != -tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.b, tt.a, got, -tt.want)
		}
	}
}

func TestVersion_String(t *testing.T) {
	v := Version{Major: 10, Minor: 12}
	if got, want := v.String(), "10.12.0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := fmt.Sprint(Version{Major: 1}), "1.0.0"; got != want {
		t.Errorf("Sprint = %q, want %q", got, want)
	}
}
