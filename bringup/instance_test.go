package bringup

import (
	"slices"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"bloqs/core"
)

func TestNewApplicationInfoZeroVersions(t *testing.T) {
	info := NewApplicationInfo(core.InstanceConfig{
		ApplicationName:    "App",
		ApplicationVersion: core.ZeroVersion,
		EngineVersion:      core.ZeroVersion,
		APIVersion:         core.APIVersion11,
	})
	if info.ApplicationVersion != 0 || info.EngineVersion != 0 {
		t.Errorf("zero versions must stay unset, got %#x / %#x", info.ApplicationVersion, info.EngineVersion)
	}
	if info.ApplicationName != "App" || info.APIVersion != core.APIVersion11 {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestNewApplicationInfoVersions(t *testing.T) {
	info := NewApplicationInfo(core.InstanceConfig{
		ApplicationName:    "App",
		ApplicationVersion: core.NewApplicationVersion(1, 2, 3),
		EngineName:         "Engine",
		EngineVersion:      core.NewApplicationVersion(0, 4, 0),
	})
	if want := core.MakeVersion(1, 2, 3); info.ApplicationVersion != want {
		t.Errorf("ApplicationVersion: expected %#x, got %#x", want, info.ApplicationVersion)
	}
	if want := core.MakeVersion(0, 4, 0); info.EngineVersion != want {
		t.Errorf("EngineVersion: expected %#x, got %#x", want, info.EngineVersion)
	}
}

func TestCreateInstance(t *testing.T) {
	d := newFakeDriver()
	exts := []string{"VK_KHR_surface", DebugReportExtension}

	inst, err := CreateInstance(d, core.DefaultInstanceConfig(), exts, Names{})
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	if inst != fakeInstance {
		t.Errorf("expected %#x, got %#x", fakeInstance, inst)
	}
	if !slices.Equal(d.instanceInfo.Extensions.Strings, exts) {
		t.Errorf("extensions: expected %v, got %v", exts, d.instanceInfo.Extensions.Strings)
	}
	if d.instanceInfo.Layers.Len() != 0 {
		t.Errorf("expected no layers, got %v", d.instanceInfo.Layers.Strings)
	}
	if d.leaks() != 0 {
		t.Errorf("%d allocations leaked", d.leaks())
	}
}

func TestCreateInstanceFailure(t *testing.T) {
	d := newFakeDriver()
	d.instanceRes = ErrorIncompatibleDriver

	_, err := CreateInstance(d, core.DefaultInstanceConfig(), []string{"VK_KHR_surface"}, Names{})
	if err == nil {
		t.Fatal("expected an error")
	}
	var re *ResultError
	if !errors.As(err, &re) {
		t.Fatalf("expected *ResultError, got %T", err)
	}
	if re.Stage != "instance" || re.Result != ErrorIncompatibleDriver {
		t.Errorf("unexpected error %+v", re)
	}
	if !strings.Contains(err.Error(), "-9") || !strings.Contains(err.Error(), Translate(ErrorIncompatibleDriver)) {
		t.Errorf("message should embed the code and its translation: %q", err.Error())
	}
	if d.leaks() != 0 {
		t.Errorf("%d allocations leaked on the failure path", d.leaks())
	}
}
