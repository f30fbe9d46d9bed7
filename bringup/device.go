package bringup

// QueuePriority is the priority of the single graphics queue.
const QueuePriority float32 = 1.0

// CreateLogicalDevice creates a device with one queue from sel's family and
// returns that queue. layers are re-applied at device level for
// implementations older than Vulkan 1.1, which still honour them.
func CreateLogicalDevice(d Driver, sel Selection, layers Names) (Device, Queue, error) {
	arena := NewArena()
	defer arena.Release()

	info := &DeviceCreateInfo{
		QueueFamilyIndex: sel.QueueFamilyIndex,
		QueuePriorities:  []float32{QueuePriority},
		Layers:           layers,
	}

	dev, res := d.CreateDevice(arena, sel.Device, info)
	if err := check("create", "logical device", res); err != nil {
		return 0, 0, err
	}
	return dev, d.DeviceQueue(dev, sel.QueueFamilyIndex, 0), nil
}
