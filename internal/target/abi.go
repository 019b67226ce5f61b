package target

import "fmt"

// ABI distinguishes device, simulator and Mac Catalyst variants of
// the same OS/architecture pair.
type ABI uint8

const (
	// Normal targets the OS directly (device or native macOS).
	Normal ABI = iota
	// Simulator targets the iOS/tvOS/watchOS/visionOS simulator
	// running on macOS.
	Simulator
	// MacCatalyst targets the iOS runtime hosted on macOS.
	MacCatalyst

	abiCount
)

// Suffix returns the ABI tag used in target metadata ("", "sim", "macabi").
func (abi ABI) Suffix() string {
	switch abi {
	case Normal:
		return ""
	case Simulator:
		return "sim"
	case MacCatalyst:
		return "macabi"
	default:
		panic(fmt.Sprintf("unknown ABI %d", abi))
	}
}

// TripleSuffix returns the environment component appended to the
// LLVM target triple ("", "-simulator", "-macabi").
func (abi ABI) TripleSuffix() string {
	switch abi {
	case Normal:
		return ""
	case Simulator:
		return "-simulator"
	case MacCatalyst:
		return "-macabi"
	default:
		panic(fmt.Sprintf("unknown ABI %d", abi))
	}
}

// String implements fmt.Stringer.
func (abi ABI) String() string {
	switch abi {
	case Normal:
		return "normal"
	case Simulator:
		return "simulator"
	case MacCatalyst:
		return "maccatalyst"
	default:
		panic(fmt.Sprintf("unknown ABI %d", abi))
	}
}

// ParseABI converts an ABI spelling into an ABI value. Both the long
// names and the metadata suffixes are accepted; the empty string means
// Normal so that "<os>/<arch>" target specs stay short.
func ParseABI(s string) (ABI, error) {
	switch s {
	case "", "normal", "device":
		return Normal, nil
	case "sim", "simulator":
		return Simulator, nil
	case "macabi", "maccatalyst", "catalyst":
		return MacCatalyst, nil
	default:
		return 0, fmt.Errorf("unsupported ABI %q", s)
	}
}

// ABIFromSuffix recovers an ABI from its metadata suffix. An
// unrecognized suffix is a contract violation: suffixes only ever come
// from options this package produced.
func ABIFromSuffix(suffix string) ABI {
	switch suffix {
	case "":
		return Normal
	case "sim":
		return Simulator
	case "macabi":
		return MacCatalyst
	default:
		panic(fmt.Sprintf("invalid ABI suffix %q for Apple target", suffix))
	}
}
