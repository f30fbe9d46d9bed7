// Package bringup creates a Vulkan instance and logical device in a fixed,
// fail-fast sequence:
//
//  1. window system and loader checks
//  2. layer and extension negotiation
//  3. instance creation
//  4. physical device selection
//  5. logical device creation
//
// Every failure aborts the sequence. Handles created before the failure are
// destroyed before Run returns, so callers never see a partial result.
package bringup

import (
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"

	"bloqs/core"
)

type Options struct {
	Config     core.InstanceConfig
	Validation bool
	Logger     *slog.Logger
}

// Context holds the handles produced by Run.
type Context struct {
	Instance   Instance
	Selection  Selection
	Device     Device
	Queue      Queue
	Layers     []string
	Extensions []string

	driver    Driver
	logger    *slog.Logger
	destroyed bool
}

// Run performs the whole bring-up sequence.
func Run(p Platform, d Driver, opts Options) (*Context, error) {
	logger := orNop(opts.Logger)

	if err := p.Init(); err != nil {
		return nil, errors.WithSecondaryError(errors.WithStack(ErrNotInitialized), err)
	}
	if !p.VulkanSupported() {
		return nil, errors.WithStack(ErrLoaderNotFound)
	}
	required := p.RequiredInstanceExtensions()
	if len(required) == 0 {
		return nil, errors.WithStack(ErrNoExtensions)
	}

	layers := RequestedLayers(opts.Validation)
	if len(layers) > 0 {
		missing, err := CheckLayerSupport(d, layers)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			return nil, errors.Wrapf(ErrLayersUnavailable, "missing %s", strings.Join(missing, ", "))
		}
	}
	extensions := RequestedExtensions(required)

	// The layer names outlive both instance and device creation.
	shared := NewArena()
	defer shared.Release()
	layerNames := d.AllocNames(shared, layers)

	inst, err := CreateInstance(d, opts.Config, extensions, layerNames)
	if err != nil {
		return nil, err
	}
	logger.Info("vulkan instance created",
		"application", opts.Config.ApplicationName,
		"extensions", extensions,
		"layers", layers)

	sel, err := SelectPhysicalDevice(d, inst, logger)
	if err != nil {
		d.DestroyInstance(inst)
		return nil, err
	}
	logger.Info("selected GPU",
		"name", sel.Properties.Name,
		"type", sel.Properties.Type.String(),
		"queueFamily", sel.QueueFamilyIndex)

	dev, queue, err := CreateLogicalDevice(d, sel, layerNames)
	if err != nil {
		d.DestroyInstance(inst)
		return nil, err
	}
	logger.Info("logical device created")

	return &Context{
		Instance:   inst,
		Selection:  sel,
		Device:     dev,
		Queue:      queue,
		Layers:     layers,
		Extensions: extensions,
		driver:     d,
		logger:     logger,
	}, nil
}

// Destroy releases the logical device and then the instance. It is safe to
// call more than once.
func (c *Context) Destroy() {
	if c == nil || c.destroyed {
		return
	}
	c.destroyed = true
	c.driver.DestroyDevice(c.Device)
	c.driver.DestroyInstance(c.Instance)
	c.logger.Info("vulkan shut down")
}
