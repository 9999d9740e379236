package dispatch

import "sync"

// inputGuard re-enables the surface exactly once.
type inputGuard struct {
	surface InputSurface
	once    sync.Once
}

// disableInput disables surface and returns the guard that re-enables it.
func disableInput(surface InputSurface) *inputGuard {
	surface.SetEnabled(false)
	return &inputGuard{surface: surface}
}

// Release re-enables the surface. Later calls do nothing.
func (g *inputGuard) Release() {
	g.once.Do(func() {
		g.surface.SetEnabled(true)
	})
}
