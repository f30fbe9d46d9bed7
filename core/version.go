package core

import "fmt"

// ApplicationVersion identifies an application or engine release.
type ApplicationVersion struct {
	Major uint32
	Minor uint32
	Patch uint32
}

// ZeroVersion means "do not report a version to the API".
var ZeroVersion = ApplicationVersion{}

func NewApplicationVersion(major, minor, patch uint32) ApplicationVersion {
	return ApplicationVersion{Major: major, Minor: minor, Patch: patch}
}

func (v ApplicationVersion) IsZero() bool {
	return v == ZeroVersion
}

func (v ApplicationVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Encode packs the version the way VK_MAKE_VERSION does.
func (v ApplicationVersion) Encode() uint32 {
	return MakeVersion(v.Major, v.Minor, v.Patch)
}

func MakeVersion(major, minor, patch uint32) uint32 {
	return (major << 22) | (minor << 12) | patch
}

// DecodeVersion splits a packed version, such as the API version a device
// reports.
func DecodeVersion(v uint32) ApplicationVersion {
	return ApplicationVersion{
		Major: v >> 22,
		Minor: (v >> 12) & 0x3ff,
		Patch: v & 0xfff,
	}
}

// Vulkan API versions accepted by InstanceConfig.APIVersion.
var (
	APIVersion10 = MakeVersion(1, 0, 0)
	APIVersion11 = MakeVersion(1, 1, 0)
	APIVersion12 = MakeVersion(1, 2, 0)
)
