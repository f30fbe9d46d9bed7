package bringup

import "fmt"

// Result is a VkResult status code.
type Result int32

const (
	Success                   Result = 0
	NotReady                  Result = 1
	Timeout                   Result = 2
	EventSet                  Result = 3
	EventReset                Result = 4
	Incomplete                Result = 5
	ErrorOutOfHostMemory      Result = -1
	ErrorOutOfDeviceMemory    Result = -2
	ErrorInitializationFailed Result = -3
	ErrorDeviceLost           Result = -4
	ErrorMemoryMapFailed      Result = -5
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
	ErrorFeatureNotPresent    Result = -8
	ErrorIncompatibleDriver   Result = -9
	ErrorTooManyObjects       Result = -10
	ErrorFormatNotSupported   Result = -11
	ErrorSurfaceLost          Result = -1000000000
	ErrorNativeWindowInUse    Result = -1000000001
	Suboptimal                Result = 1000001003
	ErrorOutOfDate            Result = -1000001004
	ErrorIncompatibleDisplay  Result = -1000003001
	ErrorValidationFailed     Result = -1000011001
)

var resultDescriptions = map[Result]string{
	Success:                   "Command successfully completed.",
	NotReady:                  "A fence or query has not yet completed.",
	Timeout:                   "A wait operation has not completed in the specified time.",
	EventSet:                  "An event is signaled.",
	EventReset:                "An event is unsignaled.",
	Incomplete:                "A return array was too small for the result.",
	Suboptimal:                "A swapchain no longer matches the surface properties exactly, but can still be used to present to the surface successfully.",
	ErrorOutOfHostMemory:      "A host memory allocation has failed.",
	ErrorOutOfDeviceMemory:    "A device memory allocation has failed.",
	ErrorInitializationFailed: "Initialization of an object could not be completed for implementation-specific reasons.",
	ErrorDeviceLost:           "The logical or physical device has been lost.",
	ErrorMemoryMapFailed:      "Mapping of a memory object has failed.",
	ErrorLayerNotPresent:      "A requested layer is not present or could not be loaded.",
	ErrorExtensionNotPresent:  "A requested extension is not supported.",
	ErrorFeatureNotPresent:    "A requested feature is not supported.",
	ErrorIncompatibleDriver:   "The requested version of Vulkan is not supported by the driver or is otherwise incompatible for implementation-specific reasons.",
	ErrorTooManyObjects:       "Too many objects of the type have already been created.",
	ErrorFormatNotSupported:   "A requested format is not supported on this device.",
	ErrorSurfaceLost:          "A surface is no longer available.",
	ErrorNativeWindowInUse:    "The requested window is already connected to a VkSurfaceKHR, or to some other non-Vulkan API.",
	ErrorOutOfDate: "A surface has changed in such a way that it is no longer compatible with the swapchain, " +
		"and further presentation requests using the swapchain will fail. Applications must query the new " +
		"surface properties and recreate their swapchain if they wish to continue presenting to the surface.",
	ErrorIncompatibleDisplay: "The display used by a swapchain does not use the same presentable image layout, " +
		"or is incompatible in a way that prevents sharing an image.",
	ErrorValidationFailed: "A validation layer found an error.",
}

// Translate describes r. Codes without a description keep their numeric value.
func Translate(r Result) string {
	if s, ok := resultDescriptions[r]; ok {
		return s
	}
	return fmt.Sprintf("Unknown [%d]", int32(r))
}

func (r Result) IsSuccess() bool { return r == Success }
