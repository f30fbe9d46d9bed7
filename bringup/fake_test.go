package bringup

import (
	"slices"
	"unsafe"
)

type fakeDevice struct {
	props    DeviceProperties
	families []QueueFamily
}

// fakeDriver is an in-memory Driver. It records calls and tracks every
// transient allocation so tests can check that each is released once.
type fakeDriver struct {
	layers    []string
	layersRes Result

	instanceRes Result
	countRes    Result
	enumRes     Result
	devices     []fakeDevice
	deviceRes   Result

	calls    []string
	live     map[int]bool
	nextID   int
	released int
	names    map[unsafe.Pointer]int

	instanceInfo       InstanceCreateInfo
	deviceInfo         DeviceCreateInfo
	deviceOn           PhysicalDevice
	layersLiveAtDevice bool
}

const (
	fakeInstance Instance = 0x1000
	fakeLogical  Device   = 0x2000
)

func newFakeDriver(devices ...fakeDevice) *fakeDriver {
	return &fakeDriver{
		devices: devices,
		live:    map[int]bool{},
		names:   map[unsafe.Pointer]int{},
	}
}

func graphicsDevice(name string) fakeDevice {
	return fakeDevice{
		props:    DeviceProperties{Name: name, Type: DeviceTypeDiscreteGPU},
		families: []QueueFamily{{Flags: QueueGraphics | QueueCompute, Count: 16}},
	}
}

func computeDevice(name string) fakeDevice {
	return fakeDevice{
		props:    DeviceProperties{Name: name, Type: DeviceTypeCPU},
		families: []QueueFamily{{Flags: QueueCompute | QueueTransfer, Count: 1}},
	}
}

func (f *fakeDriver) alloc(a *Arena) int {
	id := f.nextID
	f.nextID++
	f.live[id] = true
	a.Defer(func() {
		if !f.live[id] {
			panic("allocation released twice")
		}
		f.live[id] = false
		f.released++
	})
	return id
}

// leaks returns the number of allocations not yet released.
func (f *fakeDriver) leaks() int {
	n := 0
	for _, live := range f.live {
		if live {
			n++
		}
	}
	return n
}

func (f *fakeDriver) namesLive(n Names) bool {
	if n.Ptr == nil {
		return true
	}
	id, ok := f.names[n.Ptr]
	return ok && f.live[id]
}

func (f *fakeDriver) called(name string) bool {
	return slices.Contains(f.calls, name)
}

func (f *fakeDriver) AllocNames(a *Arena, names []string) Names {
	f.calls = append(f.calls, "AllocNames")
	if len(names) == 0 {
		return Names{}
	}
	id := f.alloc(a)
	ptr := unsafe.Pointer(new(byte))
	f.names[ptr] = id
	return Names{Strings: slices.Clone(names), Ptr: ptr}
}

func (f *fakeDriver) EnumerateInstanceLayers(a *Arena) ([]string, Result) {
	f.calls = append(f.calls, "EnumerateInstanceLayers")
	f.alloc(a)
	if f.layersRes != Success {
		return nil, f.layersRes
	}
	return slices.Clone(f.layers), Success
}

func (f *fakeDriver) CreateInstance(a *Arena, info *InstanceCreateInfo) (Instance, Result) {
	f.calls = append(f.calls, "CreateInstance")
	f.alloc(a) // application info
	f.alloc(a) // create info
	f.instanceInfo = *info
	if f.instanceRes != Success {
		return 0, f.instanceRes
	}
	return fakeInstance, Success
}

func (f *fakeDriver) DestroyInstance(inst Instance) {
	f.calls = append(f.calls, "DestroyInstance")
}

func (f *fakeDriver) PhysicalDeviceCount(inst Instance) (uint32, Result) {
	f.calls = append(f.calls, "PhysicalDeviceCount")
	if f.countRes != Success {
		return 0, f.countRes
	}
	return uint32(len(f.devices)), Success
}

func (f *fakeDriver) EnumeratePhysicalDevices(a *Arena, inst Instance, count uint32) ([]PhysicalDevice, Result) {
	f.calls = append(f.calls, "EnumeratePhysicalDevices")
	f.alloc(a)
	if f.enumRes != Success {
		return nil, f.enumRes
	}
	n := min(int(count), len(f.devices))
	devs := make([]PhysicalDevice, n)
	for i := range devs {
		devs[i] = PhysicalDevice(i + 1)
	}
	return devs, Success
}

func (f *fakeDriver) device(dev PhysicalDevice) fakeDevice {
	return f.devices[int(dev)-1]
}

func (f *fakeDriver) PhysicalDeviceProperties(dev PhysicalDevice) DeviceProperties {
	return f.device(dev).props
}

func (f *fakeDriver) QueueFamilies(a *Arena, dev PhysicalDevice) []QueueFamily {
	f.calls = append(f.calls, "QueueFamilies")
	f.alloc(a)
	return slices.Clone(f.device(dev).families)
}

func (f *fakeDriver) CreateDevice(a *Arena, dev PhysicalDevice, info *DeviceCreateInfo) (Device, Result) {
	f.calls = append(f.calls, "CreateDevice")
	f.alloc(a) // priorities
	f.alloc(a) // queue create info
	f.alloc(a) // device create info
	f.deviceInfo = *info
	f.deviceOn = dev
	f.layersLiveAtDevice = f.namesLive(info.Layers)
	if f.deviceRes != Success {
		return 0, f.deviceRes
	}
	return fakeLogical, Success
}

func (f *fakeDriver) DeviceQueue(dev Device, family, index uint32) Queue {
	f.calls = append(f.calls, "DeviceQueue")
	return Queue(0x3000 + family*16 + index)
}

func (f *fakeDriver) DestroyDevice(dev Device) {
	f.calls = append(f.calls, "DestroyDevice")
}

type fakePlatform struct {
	initErr    error
	noLoader   bool
	extensions []string
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{extensions: []string{"VK_KHR_surface"}}
}

func (p *fakePlatform) Init() error                          { return p.initErr }
func (p *fakePlatform) VulkanSupported() bool                { return !p.noLoader }
func (p *fakePlatform) RequiredInstanceExtensions() []string { return p.extensions }
