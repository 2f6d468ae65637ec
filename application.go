package ecs

// Application is the minimal collaborator a World defers to for
// higher-level state changes it has no opinion on: switching which
// key-addressed scene/state is active, sharing state across that
// boundary, and signaling a full shutdown. BaseSystem's Change, Common
// and EndAll pass through to it; with a nil Application they are no-ops.
type Application interface {
	// Change switches the active state to key, ending the current one
	// first when reset is true.
	Change(key any, reset bool)
	// DispatchEnd signals the application should end after the current
	// tick.
	DispatchEnd()
	// Common returns state shared across every key-addressed state.
	Common() any
	// Ended reports whether DispatchEnd has been called.
	Ended() bool
}
