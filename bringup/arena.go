package bringup

// Arena collects releases for transient allocations, such as the C structs
// and name buffers handed to a single Vulkan call. Release runs them in
// reverse registration order exactly once.
//
// The usual shape is
//
//	arena := NewArena()
//	defer arena.Release()
type Arena struct {
	releases []func()
	released bool
}

func NewArena() *Arena {
	return &Arena{}
}

// Defer registers fn to run on Release. Registering on a released arena
// runs fn immediately, so nothing allocated late can leak.
func (a *Arena) Defer(fn func()) {
	if a.released {
		fn()
		return
	}
	a.releases = append(a.releases, fn)
}

// Release runs every registered release. Calls after the first are no-ops.
func (a *Arena) Release() {
	if a.released {
		return
	}
	a.released = true
	for i := len(a.releases) - 1; i >= 0; i-- {
		a.releases[i]()
	}
	a.releases = nil
}

func (a *Arena) Released() bool { return a.released }
