package vulkan

/*
#include <stdlib.h>
#include <vulkan/vulkan.h>
*/
import "C"
import (
	"unsafe"

	"bloqs/bringup"
)

func (d *Driver) PhysicalDeviceCount(inst bringup.Instance) (uint32, bringup.Result) {
	var count C.uint32_t
	res := C.vkEnumeratePhysicalDevices(instanceHandle(inst), &count, nil)
	return uint32(count), bringup.Result(res)
}

// EnumeratePhysicalDevices reads at most count handles.
func (d *Driver) EnumeratePhysicalDevices(a *bringup.Arena, inst bringup.Instance, count uint32) ([]bringup.PhysicalDevice, bringup.Result) {
	if count == 0 {
		return nil, bringup.Success
	}
	n := C.uint32_t(count)
	p := (*C.VkPhysicalDevice)(C.malloc(C.sizeof_VkPhysicalDevice * C.size_t(n)))
	a.Defer(func() { C.free(unsafe.Pointer(p)) })

	if res := C.vkEnumeratePhysicalDevices(instanceHandle(inst), &n, p); res != C.VK_SUCCESS {
		return nil, bringup.Result(res)
	}

	handles := unsafe.Slice(p, n)
	devices := make([]bringup.PhysicalDevice, len(handles))
	for i, h := range handles {
		devices[i] = bringup.PhysicalDevice(uintptr(unsafe.Pointer(h)))
	}
	return devices, bringup.Success
}

func (d *Driver) PhysicalDeviceProperties(dev bringup.PhysicalDevice) bringup.DeviceProperties {
	var props C.VkPhysicalDeviceProperties
	C.vkGetPhysicalDeviceProperties(physicalDeviceHandle(dev), &props)

	props.deviceName[len(props.deviceName)-1] = 0
	return bringup.DeviceProperties{
		Name:       C.GoString(&props.deviceName[0]),
		Type:       bringup.DeviceType(props.deviceType),
		APIVersion: uint32(props.apiVersion),
		VendorID:   uint32(props.vendorID),
		DeviceID:   uint32(props.deviceID),
	}
}

func (d *Driver) QueueFamilies(a *bringup.Arena, dev bringup.PhysicalDevice) []bringup.QueueFamily {
	h := physicalDeviceHandle(dev)

	var count C.uint32_t
	C.vkGetPhysicalDeviceQueueFamilyProperties(h, &count, nil)
	if count == 0 {
		return nil
	}
	p := (*C.VkQueueFamilyProperties)(C.malloc(C.sizeof_VkQueueFamilyProperties * C.size_t(count)))
	a.Defer(func() { C.free(unsafe.Pointer(p)) })
	C.vkGetPhysicalDeviceQueueFamilyProperties(h, &count, p)

	props := unsafe.Slice(p, count)
	families := make([]bringup.QueueFamily, len(props))
	for i, qp := range props {
		families[i] = bringup.QueueFamily{
			Flags: bringup.QueueFlags(qp.queueFlags),
			Count: uint32(qp.queueCount),
		}
	}
	return families
}

// CreateDevice builds the priority buffer, one VkDeviceQueueCreateInfo and
// the VkDeviceCreateInfo in C memory owned by a.
func (d *Driver) CreateDevice(a *bringup.Arena, dev bringup.PhysicalDevice, info *bringup.DeviceCreateInfo) (bringup.Device, bringup.Result) {
	priorities := (*C.float)(calloc(a, C.size_t(len(info.QueuePriorities)), C.sizeof_float))
	prios := unsafe.Slice(priorities, len(info.QueuePriorities))
	for i, prio := range info.QueuePriorities {
		prios[i] = C.float(prio)
	}

	queueInfo := (*C.VkDeviceQueueCreateInfo)(calloc(a, 1, C.sizeof_VkDeviceQueueCreateInfo))
	queueInfo.sType = C.VK_STRUCTURE_TYPE_DEVICE_QUEUE_CREATE_INFO
	queueInfo.queueFamilyIndex = C.uint32_t(info.QueueFamilyIndex)
	queueInfo.queueCount = C.uint32_t(len(info.QueuePriorities))
	queueInfo.pQueuePriorities = priorities

	createInfo := (*C.VkDeviceCreateInfo)(calloc(a, 1, C.sizeof_VkDeviceCreateInfo))
	createInfo.sType = C.VK_STRUCTURE_TYPE_DEVICE_CREATE_INFO
	createInfo.queueCreateInfoCount = 1
	createInfo.pQueueCreateInfos = queueInfo
	createInfo.enabledLayerCount = C.uint32_t(info.Layers.Len())
	createInfo.ppEnabledLayerNames = (**C.char)(info.Layers.Ptr)

	var device C.VkDevice
	if res := C.vkCreateDevice(physicalDeviceHandle(dev), createInfo, nil, &device); res != C.VK_SUCCESS {
		return 0, bringup.Result(res)
	}
	return bringup.Device(uintptr(unsafe.Pointer(device))), bringup.Success
}

func (d *Driver) DeviceQueue(dev bringup.Device, family, index uint32) bringup.Queue {
	var queue C.VkQueue
	C.vkGetDeviceQueue(deviceHandle(dev), C.uint32_t(family), C.uint32_t(index), &queue)
	return bringup.Queue(uintptr(unsafe.Pointer(queue)))
}

// DestroyDevice waits for the device to go idle before destroying it.
func (d *Driver) DestroyDevice(dev bringup.Device) {
	h := deviceHandle(dev)
	C.vkDeviceWaitIdle(h)
	C.vkDestroyDevice(h, nil)
}
