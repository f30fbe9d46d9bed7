package bringup

import "unsafe"

// Opaque Vulkan handles.
type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
	Queue          uintptr
)

// Names is a driver-allocated array of NUL-terminated strings, as consumed
// by ppEnabledLayerNames and ppEnabledExtensionNames.
type Names struct {
	Strings []string
	Ptr     unsafe.Pointer // nil when Strings is empty
}

func (n Names) Len() int { return len(n.Strings) }

// ApplicationInfo mirrors VkApplicationInfo. Zero versions and an empty
// engine name are left unset.
type ApplicationInfo struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         uint32
}

// InstanceCreateInfo mirrors VkInstanceCreateInfo.
type InstanceCreateInfo struct {
	Application ApplicationInfo
	Extensions  Names
	Layers      Names
}

// DeviceCreateInfo mirrors a VkDeviceCreateInfo holding a single
// VkDeviceQueueCreateInfo.
type DeviceCreateInfo struct {
	QueueFamilyIndex uint32
	QueuePriorities  []float32 // one queue per priority
	Layers           Names
}

type QueueFlags uint32

const (
	QueueGraphics      QueueFlags = 0x1
	QueueCompute       QueueFlags = 0x2
	QueueTransfer      QueueFlags = 0x4
	QueueSparseBinding QueueFlags = 0x8
)

type QueueFamily struct {
	Flags QueueFlags
	Count uint32
}

type DeviceType uint32

const (
	DeviceTypeOther DeviceType = iota
	DeviceTypeIntegratedGPU
	DeviceTypeDiscreteGPU
	DeviceTypeVirtualGPU
	DeviceTypeCPU
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeIntegratedGPU:
		return "Integrated GPU"
	case DeviceTypeDiscreteGPU:
		return "Discrete GPU"
	case DeviceTypeVirtualGPU:
		return "Virtual GPU"
	case DeviceTypeCPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

type DeviceProperties struct {
	Name       string
	Type       DeviceType
	APIVersion uint32
	VendorID   uint32
	DeviceID   uint32
}

// Driver is the slice of the Vulkan API that bring-up needs. Every method
// that allocates transient memory takes the Arena that will release it.
type Driver interface {
	AllocNames(a *Arena, names []string) Names

	EnumerateInstanceLayers(a *Arena) ([]string, Result)
	CreateInstance(a *Arena, info *InstanceCreateInfo) (Instance, Result)
	DestroyInstance(inst Instance)

	PhysicalDeviceCount(inst Instance) (uint32, Result)
	EnumeratePhysicalDevices(a *Arena, inst Instance, count uint32) ([]PhysicalDevice, Result)
	PhysicalDeviceProperties(dev PhysicalDevice) DeviceProperties
	QueueFamilies(a *Arena, dev PhysicalDevice) []QueueFamily

	CreateDevice(a *Arena, dev PhysicalDevice, info *DeviceCreateInfo) (Device, Result)
	DeviceQueue(dev Device, family, index uint32) Queue
	DestroyDevice(dev Device)
}

// Platform is the window system as seen by bring-up.
type Platform interface {
	// Init initializes the window system library.
	Init() error
	// VulkanSupported reports whether a Vulkan loader was found.
	VulkanSupported() bool
	// RequiredInstanceExtensions lists the extensions needed for
	// presentation. nil means none could be found.
	RequiredInstanceExtensions() []string
}
