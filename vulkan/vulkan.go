// Package vulkan implements bringup.Driver on top of the Vulkan C API.
// This package uses CGO to interface with the loader.
package vulkan

// #cgo windows LDFLAGS: -lvulkan-1
// #cgo linux LDFLAGS: -lvulkan
// #cgo darwin LDFLAGS: -lvulkan
// #include <stdlib.h>
// #include <vulkan/vulkan.h>
import "C"
import (
	"log/slog"
	"slices"
	"unsafe"

	"bloqs/bringup"
)

// Driver talks to the Vulkan loader linked into the process.
type Driver struct {
	logger *slog.Logger

	// Debug report callbacks, keyed by the instance that owns them.
	reports map[bringup.Instance]C.VkDebugReportCallbackEXT
}

var _ bringup.Driver = (*Driver)(nil)

func New(logger *slog.Logger) *Driver {
	if logger == nil {
		logger = bringup.NopLogger()
	}
	return &Driver{
		logger:  logger,
		reports: make(map[bringup.Instance]C.VkDebugReportCallbackEXT),
	}
}

// AllocNames copies names into C memory owned by a.
func (d *Driver) AllocNames(a *bringup.Arena, names []string) bringup.Names {
	if len(names) == 0 {
		return bringup.Names{}
	}
	arr := (**C.char)(C.malloc(C.size_t(len(names)) * C.size_t(unsafe.Sizeof((*C.char)(nil)))))
	a.Defer(func() { C.free(unsafe.Pointer(arr)) })

	ptrs := unsafe.Slice(arr, len(names))
	for i, name := range names {
		ptrs[i] = cstring(a, name)
	}
	return bringup.Names{Strings: slices.Clone(names), Ptr: unsafe.Pointer(arr)}
}

func cstring(a *bringup.Arena, s string) *C.char {
	cs := C.CString(s)
	a.Defer(func() { C.free(unsafe.Pointer(cs)) })
	return cs
}

// calloc returns zeroed C memory owned by a.
func calloc(a *bringup.Arena, n, size C.size_t) unsafe.Pointer {
	p := C.calloc(n, size)
	a.Defer(func() { C.free(p) })
	return p
}

func instanceHandle(h bringup.Instance) C.VkInstance {
	return C.VkInstance(unsafe.Pointer(h))
}

func physicalDeviceHandle(h bringup.PhysicalDevice) C.VkPhysicalDevice {
	return C.VkPhysicalDevice(unsafe.Pointer(h))
}

func deviceHandle(h bringup.Device) C.VkDevice {
	return C.VkDevice(unsafe.Pointer(h))
}
