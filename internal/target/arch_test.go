package target

import "testing"

func TestArch_LinkerNameCollapsesI686(t *testing.T) {
	// ld64 has no i686 spelling; both 32-bit x86 archs link as i386,
	// while the triple keeps the distinction.
	if got := I686.LinkerName(); got != "i386" {
		t.Errorf("I686.LinkerName() = %q, want %q", got, "i386")
	}
	if got := I686.TripleName(); got != "i686" {
		t.Errorf("I686.TripleName() = %q, want %q", got, "i686")
	}
	if got := I386.LinkerName(); got != "i386" {
		t.Errorf("I386.LinkerName() = %q, want %q", got, "i386")
	}
}

func TestArch_Family(t *testing.T) {
	tests := []struct {
		arch Arch
		want string
	}{
		{Armv7k, "arm"},
		{Armv7s, "arm"},
		{Arm64, "aarch64"},
		{Arm64e, "aarch64"},
		{Arm64_32, "aarch64"},
		{I386, "x86"},
		{I686, "x86"},
		{X86_64, "x86_64"},
		{X86_64h, "x86_64"},
	}
	for _, tt := range tests {
		if got := tt.arch.Family(); got != tt.want {
			t.Errorf("%s.Family() = %q, want %q", tt.arch, got, tt.want)
		}
	}
}

func TestArch_DefaultCPUDependsOnABI(t *testing.T) {
	// The simulator and Catalyst runtimes never target first-gen
	// 64-bit silicon.
	if got := Arm64.DefaultCPU(Normal); got != "apple-a7" {
		t.Errorf("Arm64.DefaultCPU(Normal) = %q, want %q", got, "apple-a7")
	}
	if got := Arm64.DefaultCPU(Simulator); got != "apple-a12" {
		t.Errorf("Arm64.DefaultCPU(Simulator) = %q, want %q", got, "apple-a12")
	}
	if got := Arm64.DefaultCPU(MacCatalyst); got != "apple-a12" {
		t.Errorf("Arm64.DefaultCPU(MacCatalyst) = %q, want %q", got, "apple-a12")
	}
	// Other archs ignore the ABI.
	if got := X86_64.DefaultCPU(Simulator); got != "penryn" {
		t.Errorf("X86_64.DefaultCPU(Simulator) = %q, want %q", got, "penryn")
	}
}

func TestArch_StackProbes(t *testing.T) {
	for _, arch := range []Arch{Armv7k, Armv7s} {
		if got := arch.StackProbes(); got != StackProbesNone {
			t.Errorf("%s.StackProbes() = %d, want none", arch, got)
		}
	}
	for _, arch := range []Arch{Arm64, Arm64e, Arm64_32, I386, I686, X86_64, X86_64h} {
		if got := arch.StackProbes(); got != StackProbesInline {
			t.Errorf("%s.StackProbes() = %d, want inline", arch, got)
		}
	}
}

func TestParseArch_RoundTrip(t *testing.T) {
	for a := Arch(0); a < archCount; a++ {
		got, err := ParseArch(a.TripleName())
		if err != nil {
			t.Fatalf("ParseArch(%q) failed: %v", a.TripleName(), err)
		}
		if got != a {
			t.Errorf("ParseArch(%q) = %v, want %v", a.TripleName(), got, a)
		}
	}
	if _, err := ParseArch("riscv64"); err == nil {
		t.Error("ParseArch(\"riscv64\") should fail")
	}
}

func TestABI_Suffixes(t *testing.T) {
	tests := []struct {
		abi          ABI
		suffix       string
		tripleSuffix string
	}{
		{Normal, "", ""},
		{Simulator, "sim", "-simulator"},
		{MacCatalyst, "macabi", "-macabi"},
	}
	for _, tt := range tests {
		if got := tt.abi.Suffix(); got != tt.suffix {
			t.Errorf("%s.Suffix() = %q, want %q", tt.abi, got, tt.suffix)
		}
		if got := tt.abi.TripleSuffix(); got != tt.tripleSuffix {
			t.Errorf("%s.TripleSuffix() = %q, want %q", tt.abi, got, tt.tripleSuffix)
		}
		if got := ABIFromSuffix(tt.suffix); got != tt.abi {
			t.Errorf("ABIFromSuffix(%q) = %v, want %v", tt.suffix, got, tt.abi)
		}
	}
}

func TestABIFromSuffix_PanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ABIFromSuffix(\"gnu\") should panic")
		}
	}()
	ABIFromSuffix("gnu")
}

func TestOS_Names(t *testing.T) {
	tests := []struct {
		os     OS
		key    string
		llvm   string
		envVar string
	}{
		{MacOS, "macos", "macosx", "MACOSX_DEPLOYMENT_TARGET"},
		{IOS, "ios", "ios", "IPHONEOS_DEPLOYMENT_TARGET"},
		{TVOS, "tvos", "tvos", "TVOS_DEPLOYMENT_TARGET"},
		{WatchOS, "watchos", "watchos", "WATCHOS_DEPLOYMENT_TARGET"},
		{VisionOS, "visionos", "xros", "XROS_DEPLOYMENT_TARGET"},
	}
	for _, tt := range tests {
		if got := tt.os.Key(); got != tt.key {
			t.Errorf("Key() = %q, want %q", got, tt.key)
		}
		if got := tt.os.LLVMName(); got != tt.llvm {
			t.Errorf("%s.LLVMName() = %q, want %q", tt.key, got, tt.llvm)
		}
		if got := tt.os.DeploymentEnvVar(); got != tt.envVar {
			t.Errorf("%s.DeploymentEnvVar() = %q, want %q", tt.key, got, tt.envVar)
		}
	}
}

func TestOS_FactMethodsPanicOutOfDomain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Key() on an out-of-range OS should panic")
		}
	}()
	_ = OS(200).Key()
}
