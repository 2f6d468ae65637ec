package ecs

// System is one unit of ordered per-tick logic a World drives through
// init, update, and end. Priority determines execution order: systems
// run in ascending priority, and a system added at the same priority as
// an existing one runs after it.
type System interface {
	OnInit(w *World)
	OnUpdate(w *World)
	OnEnd(w *World)
	Priority() int
}

// Removable is an optional extension a System may implement to ask the
// World to drop it after the current update. The flag is checked once
// per tick, right after OnUpdate returns, against the snapshot of
// systems taken at the start of Update. A system added mid-tick is never
// asked about removal until the following tick.
type Removable interface {
	WantsRemoval() bool
}

// BaseSystem is an embeddable helper giving a System its priority and a
// handle back to the World and, optionally, an Application collaborator.
type BaseSystem struct {
	world    *World
	priority int
	remove   bool
}

// NewBaseSystem constructs a BaseSystem with the given execution
// priority.
func NewBaseSystem(priority int) BaseSystem {
	return BaseSystem{priority: priority}
}

// Priority returns the system's execution order.
func (b *BaseSystem) Priority() int { return b.priority }

// World returns the World this system is attached to, or nil before
// AddSystem has run.
func (b *BaseSystem) World() *World { return b.world }

func (b *BaseSystem) setWorld(w *World) { b.world = w }

// RequestRemove marks the system for removal at the end of the current
// update tick.
func (b *BaseSystem) RequestRemove() { b.remove = true }

// WantsRemoval reports whether RequestRemove has been called.
func (b *BaseSystem) WantsRemoval() bool { return b.remove }

// Change asks the world's Application collaborator to switch to key,
// ending and re-initializing as the collaborator sees fit. It is a no-op
// if no Application was given to NewWorld.
func (b *BaseSystem) Change(key any, reset bool) {
	if b.world != nil && b.world.app != nil {
		b.world.app.Change(key, reset)
	}
}

// EndAll asks the world's Application collaborator to end after the
// current tick. It is a no-op if no Application was given to NewWorld.
func (b *BaseSystem) EndAll() {
	if b.world != nil && b.world.app != nil {
		b.world.app.DispatchEnd()
	}
}

// Common returns the Application collaborator's shared state, or nil.
func (b *BaseSystem) Common() any {
	if b.world != nil && b.world.app != nil {
		return b.world.app.Common()
	}
	return nil
}
