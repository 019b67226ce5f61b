package linkargs

import (
	"reflect"
	"testing"

	"machtarget/internal/deploy"
	"machtarget/internal/target"
)

func TestEnvRemove_NonMacOS(t *testing.T) {
	for _, osv := range []target.OS{target.IOS, target.TVOS, target.WatchOS, target.VisionOS} {
		got := EnvRemove(deploy.MapEnv(nil), osv)
		want := []string{"MACOSX_DEPLOYMENT_TARGET"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("EnvRemove(%s) = %q, want %q", osv, got, want)
		}
	}
}

func TestEnvRemove_MacOSWithoutSDKRoot(t *testing.T) {
	got := EnvRemove(deploy.MapEnv(nil), target.MacOS)
	want := []string{
		"IPHONEOS_DEPLOYMENT_TARGET",
		"TVOS_DEPLOYMENT_TARGET",
		"XROS_DEPLOYMENT_TARGET",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EnvRemove(macos) = %q, want %q", got, want)
	}
}

func TestEnvRemove_MacOSKeepsOwnOverride(t *testing.T) {
	for _, name := range EnvRemove(deploy.MapEnv(nil), target.MacOS) {
		if name == "MACOSX_DEPLOYMENT_TARGET" {
			t.Error("EnvRemove(macos) must not remove MACOSX_DEPLOYMENT_TARGET")
		}
		if name == "WATCHOS_DEPLOYMENT_TARGET" {
			t.Error("EnvRemove(macos) does not scrub the watchOS override")
		}
	}
}

func TestEnvRemove_ContaminatedSDKRoot(t *testing.T) {
	contaminated := []string{
		"/Applications/Xcode.app/Contents/Developer/Platforms/iPhoneOS.platform/Developer/SDKs/iPhoneOS17.0.sdk",
		"/x/iPhoneSimulator.platform/y",
		"/x/AppleTVOS.platform/y",
		"/x/AppleTVSimulator.platform/y",
		"/x/WatchOS.platform/y",
		"/x/WatchSimulator.platform/y",
		"/x/XROS.platform/y",
		"/x/XRSimulator.platform/y",
	}
	for _, sdkroot := range contaminated {
		env := deploy.MapEnv(map[string]string{"SDKROOT": sdkroot})
		got := EnvRemove(env, target.MacOS)
		if len(got) == 0 || got[0] != "SDKROOT" {
			t.Errorf("EnvRemove(macos) with SDKROOT=%q = %q, want SDKROOT scrubbed first", sdkroot, got)
		}
	}
}

func TestEnvRemove_CleanSDKRootIsKept(t *testing.T) {
	env := deploy.MapEnv(map[string]string{
		"SDKROOT": "/Applications/Xcode.app/Contents/Developer/Platforms/MacOSX.platform/Developer/SDKs/MacOSX14.0.sdk",
	})
	for _, name := range EnvRemove(env, target.MacOS) {
		if name == "SDKROOT" {
			t.Error("a macOS SDKROOT must survive scrubbing")
		}
	}
}
