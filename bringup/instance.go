package bringup

import "bloqs/core"

// NewApplicationInfo builds the application info for cfg. Zero versions are
// not reported.
func NewApplicationInfo(cfg core.InstanceConfig) ApplicationInfo {
	info := ApplicationInfo{
		ApplicationName: cfg.ApplicationName,
		EngineName:      cfg.EngineName,
		APIVersion:      cfg.APIVersion,
	}
	if !cfg.ApplicationVersion.IsZero() {
		info.ApplicationVersion = cfg.ApplicationVersion.Encode()
	}
	if !cfg.EngineVersion.IsZero() {
		info.EngineVersion = cfg.EngineVersion.Encode()
	}
	return info
}

// CreateInstance creates the Vulkan instance. The extension name buffer and
// the info structs are released before it returns; layers belongs to the
// caller.
func CreateInstance(d Driver, cfg core.InstanceConfig, extensions []string, layers Names) (Instance, error) {
	arena := NewArena()
	defer arena.Release()

	info := &InstanceCreateInfo{
		Application: NewApplicationInfo(cfg),
		Extensions:  d.AllocNames(arena, extensions),
		Layers:      layers,
	}

	inst, res := d.CreateInstance(arena, info)
	if err := check("create", "instance", res); err != nil {
		return 0, err
	}
	return inst, nil
}
