package vulkan

/*
#include <stdlib.h>
#include <stdio.h>
#include <vulkan/vulkan.h>

static VKAPI_ATTR VkBool32 VKAPI_CALL debugReportCallback(
    VkDebugReportFlagsEXT flags,
    VkDebugReportObjectTypeEXT objectType,
    uint64_t object,
    size_t location,
    int32_t messageCode,
    const char* pLayerPrefix,
    const char* pMessage,
    void* pUserData) {

    const char* severity = "INFO";
    if (flags & VK_DEBUG_REPORT_ERROR_BIT_EXT) {
        severity = "ERROR";
    } else if (flags & (VK_DEBUG_REPORT_WARNING_BIT_EXT | VK_DEBUG_REPORT_PERFORMANCE_WARNING_BIT_EXT)) {
        severity = "WARNING";
    }

    fprintf(stderr, "[VULKAN %s] %s: %s\n", severity, pLayerPrefix, pMessage);
    return VK_FALSE;
}

static VkResult createDebugReport(VkInstance instance, VkDebugReportCallbackEXT* callback) {
    PFN_vkCreateDebugReportCallbackEXT fn = (PFN_vkCreateDebugReportCallbackEXT)vkGetInstanceProcAddr(instance, "vkCreateDebugReportCallbackEXT");
    if (fn == NULL) {
        return VK_ERROR_EXTENSION_NOT_PRESENT;
    }
    VkDebugReportCallbackCreateInfoEXT info = {0};
    info.sType = VK_STRUCTURE_TYPE_DEBUG_REPORT_CALLBACK_CREATE_INFO_EXT;
    info.flags = VK_DEBUG_REPORT_ERROR_BIT_EXT | VK_DEBUG_REPORT_WARNING_BIT_EXT | VK_DEBUG_REPORT_PERFORMANCE_WARNING_BIT_EXT;
    info.pfnCallback = debugReportCallback;
    return fn(instance, &info, NULL, callback);
}

static void destroyDebugReport(VkInstance instance, VkDebugReportCallbackEXT callback) {
    PFN_vkDestroyDebugReportCallbackEXT fn = (PFN_vkDestroyDebugReportCallbackEXT)vkGetInstanceProcAddr(instance, "vkDestroyDebugReportCallbackEXT");
    if (fn != NULL) {
        fn(instance, callback, NULL);
    }
}
*/
import "C"
import (
	"slices"
	"unsafe"

	"bloqs/bringup"
)

func (d *Driver) EnumerateInstanceLayers(a *bringup.Arena) ([]string, bringup.Result) {
	var count C.uint32_t
	if res := C.vkEnumerateInstanceLayerProperties(&count, nil); res != C.VK_SUCCESS {
		return nil, bringup.Result(res)
	}
	if count == 0 {
		return nil, bringup.Success
	}

	p := (*C.VkLayerProperties)(C.malloc(C.sizeof_VkLayerProperties * C.size_t(count)))
	a.Defer(func() { C.free(unsafe.Pointer(p)) })
	if res := C.vkEnumerateInstanceLayerProperties(&count, p); res != C.VK_SUCCESS {
		return nil, bringup.Result(res)
	}

	props := unsafe.Slice(p, count)
	names := make([]string, len(props))
	for i := range props {
		names[i] = C.GoString(&props[i].layerName[0])
	}
	d.logger.Debug("instance layers", "available", names)
	return names, bringup.Success
}

// CreateInstance builds VkApplicationInfo and VkInstanceCreateInfo in C
// memory owned by a. When validation layers are enabled together with the
// debug report extension, a callback printing to stderr is installed.
func (d *Driver) CreateInstance(a *bringup.Arena, info *bringup.InstanceCreateInfo) (bringup.Instance, bringup.Result) {
	app := (*C.VkApplicationInfo)(calloc(a, 1, C.sizeof_VkApplicationInfo))
	app.sType = C.VK_STRUCTURE_TYPE_APPLICATION_INFO
	app.pApplicationName = cstring(a, info.Application.ApplicationName)
	app.applicationVersion = C.uint32_t(info.Application.ApplicationVersion)
	if info.Application.EngineName != "" {
		app.pEngineName = cstring(a, info.Application.EngineName)
	}
	app.engineVersion = C.uint32_t(info.Application.EngineVersion)
	app.apiVersion = C.uint32_t(info.Application.APIVersion)

	createInfo := (*C.VkInstanceCreateInfo)(calloc(a, 1, C.sizeof_VkInstanceCreateInfo))
	createInfo.sType = C.VK_STRUCTURE_TYPE_INSTANCE_CREATE_INFO
	createInfo.pApplicationInfo = app
	createInfo.enabledExtensionCount = C.uint32_t(info.Extensions.Len())
	createInfo.ppEnabledExtensionNames = (**C.char)(info.Extensions.Ptr)
	createInfo.enabledLayerCount = C.uint32_t(info.Layers.Len())
	createInfo.ppEnabledLayerNames = (**C.char)(info.Layers.Ptr)

	var instance C.VkInstance
	if res := C.vkCreateInstance(createInfo, nil, &instance); res != C.VK_SUCCESS {
		return 0, bringup.Result(res)
	}
	handle := bringup.Instance(uintptr(unsafe.Pointer(instance)))

	if info.Layers.Len() > 0 && slices.Contains(info.Extensions.Strings, bringup.DebugReportExtension) {
		var callback C.VkDebugReportCallbackEXT
		if res := C.createDebugReport(instance, &callback); res != C.VK_SUCCESS {
			d.logger.Warn("failed to set up debug report callback",
				"result", int32(res),
				"reason", bringup.Translate(bringup.Result(res)))
		} else {
			d.reports[handle] = callback
		}
	}
	return handle, bringup.Success
}

func (d *Driver) DestroyInstance(inst bringup.Instance) {
	h := instanceHandle(inst)
	if callback, ok := d.reports[inst]; ok {
		C.destroyDebugReport(h, callback)
		delete(d.reports, inst)
	}
	C.vkDestroyInstance(h, nil)
}
