// Package window wraps GLFW: the checks bring-up needs before touching
// Vulkan, and the window and event loop that follow it.
package window

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"

	"bloqs/bringup"
	"bloqs/core"
)

func init() {
	runtime.LockOSThread()
}

// Platform implements bringup.Platform with GLFW.
type Platform struct {
	initialized bool
}

var _ bringup.Platform = (*Platform)(nil)

func NewPlatform() *Platform {
	return &Platform{}
}

func (p *Platform) Init() error {
	if p.initialized {
		return nil
	}
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize GLFW")
	}
	p.initialized = true
	return nil
}

func (p *Platform) VulkanSupported() bool {
	return glfw.VulkanSupported()
}

func (p *Platform) RequiredInstanceExtensions() []string {
	// glfwGetRequiredInstanceExtensions does not depend on a window.
	var w *glfw.Window
	return w.GetRequiredInstanceExtensions()
}

// Terminate releases GLFW. Windows must be destroyed first.
func (p *Platform) Terminate() {
	if p.initialized {
		glfw.Terminate()
		p.initialized = false
	}
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
}

// NewWindow creates a window without a client API; Vulkan owns presentation.
// The platform must be initialized.
func NewWindow(config core.WindowConfig) (*Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create window")
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})
	handle.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

// Run polls events until the window is asked to close.
func (w *Window) Run() {
	for !w.ShouldClose() {
		glfw.PollEvents()
	}
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
