package bringup

// ValidationLayer is requested when validation is enabled.
const ValidationLayer = "VK_LAYER_LUNARG_standard_validation"

// DebugReportExtension is always appended to the instance extensions.
const DebugReportExtension = "VK_EXT_debug_report"

// RequestedLayers returns the layers to enable.
func RequestedLayers(validation bool) []string {
	if !validation {
		return nil
	}
	return []string{ValidationLayer}
}

// RequestedExtensions returns the window-system extensions followed by the
// debug report extension. Duplicates are kept; the loader tolerates them.
func RequestedExtensions(required []string) []string {
	exts := make([]string, 0, len(required)+1)
	exts = append(exts, required...)
	return append(exts, DebugReportExtension)
}

// MissingLayers returns the requested layers absent from available, in
// request order. Names are compared exactly.
func MissingLayers(available, requested []string) []string {
	have := make(map[string]struct{}, len(available))
	for _, name := range available {
		have[name] = struct{}{}
	}
	var missing []string
	for _, name := range requested {
		if _, ok := have[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// LayersAvailable reports whether every requested layer is available.
func LayersAvailable(available, requested []string) bool {
	return len(MissingLayers(available, requested)) == 0
}

// CheckLayerSupport queries the host layers and returns the requested ones
// it lacks. A failed query is an error, not an empty layer list.
func CheckLayerSupport(d Driver, requested []string) ([]string, error) {
	arena := NewArena()
	defer arena.Release()

	available, res := d.EnumerateInstanceLayers(arena)
	if err := check("enumerate", "instance layers", res); err != nil {
		return nil, err
	}
	return MissingLayers(available, requested), nil
}
