package bringup

import (
	"log/slog"

	"github.com/cockroachdb/errors"
)

// Selection is the chosen physical device and its graphics queue family.
type Selection struct {
	Device           PhysicalDevice
	QueueFamilyIndex uint32
	Properties       DeviceProperties
}

// GraphicsQueueFamily returns the index of the first family with graphics
// support.
func GraphicsQueueFamily(families []QueueFamily) (uint32, bool) {
	for i, f := range families {
		if f.Flags&QueueGraphics != 0 {
			return uint32(i), true
		}
	}
	return 0, false
}

// SelectPhysicalDevice returns the first device, in enumeration order, that
// exposes a graphics queue family.
func SelectPhysicalDevice(d Driver, inst Instance, logger *slog.Logger) (Selection, error) {
	logger = orNop(logger)

	arena := NewArena()
	defer arena.Release()

	count, res := d.PhysicalDeviceCount(inst)
	if err := check("enumerate", "physical devices", res); err != nil {
		return Selection{}, err
	}
	if count == 0 {
		return Selection{}, errors.WithStack(ErrNoGPU)
	}

	devices, res := d.EnumeratePhysicalDevices(arena, inst, count)
	if err := check("enumerate", "physical devices", res); err != nil {
		return Selection{}, err
	}
	// The driver may report fewer devices on the second call, never more.
	if uint32(len(devices)) > count {
		devices = devices[:count]
	}

	for i, dev := range devices {
		props := d.PhysicalDeviceProperties(dev)
		families := d.QueueFamilies(arena, dev)
		logger.Debug("physical device",
			"index", i,
			"name", props.Name,
			"type", props.Type.String(),
			"queueFamilies", len(families))

		if family, ok := GraphicsQueueFamily(families); ok {
			return Selection{Device: dev, QueueFamilyIndex: family, Properties: props}, nil
		}
	}
	return Selection{}, errors.WithStack(ErrNoSuitableGPU)
}
