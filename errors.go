package ecs

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// ErrorKind identifies one of the programmer-error conditions the core can
// detect. Every condition here is misuse of the API, not a runtime
// condition to retry.
type ErrorKind int

const (
	// TooManyTypes: archetype construction asked for more than MaxTypes types.
	TooManyTypes ErrorKind = iota
	// DuplicateType: two source types yielded the same type hash.
	DuplicateType
	// MissingComponent: read/write of T on an entity whose archetype lacks T.
	MissingComponent
	// UnknownChunk: an entity referenced a chunk id the World doesn't own.
	UnknownChunk
	// InvalidEntity: the entity handle is stale (chunk destroyed, slot freed).
	InvalidEntity
	// ArchetypeMismatch: move_to was asked to move between chunks that share no columns.
	ArchetypeMismatch
	// InvalidComponentSize: a component type resolved to a zero byte size.
	InvalidComponentSize
)

func (k ErrorKind) String() string {
	switch k {
	case TooManyTypes:
		return "too many types"
	case DuplicateType:
		return "duplicate type"
	case MissingComponent:
		return "missing component"
	case UnknownChunk:
		return "unknown chunk"
	case InvalidEntity:
		return "invalid entity"
	case ArchetypeMismatch:
		return "archetype mismatch"
	case InvalidComponentSize:
		return "invalid component size"
	default:
		return "unknown error"
	}
}

// Error is the single error type every core operation returns. It carries
// an ErrorKind a caller can switch on, plus a human-readable detail.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an *Error of the given kind. It lets callers
// use errors.Is(err, ecs.MissingComponent) via a thin wrapper if they
// prefer, but is also usable directly.
func Is(err error, kind ErrorKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// Must panics with a trace-annotated error if err is non-nil. It's for
// call sites that treat a core error as programmer misuse rather than
// something to recover from.
func Must(err error) {
	if err != nil {
		panic(bark.AddTrace(err))
	}
}

// MustValue is Must for operations that also return a value.
func MustValue[T any](v T, err error) T {
	Must(err)
	return v
}
