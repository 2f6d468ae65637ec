package ecs

import (
	"reflect"
	"sync"
	"unsafe"
)

// MaxTypes is the maximum number of distinct component types one Archetype
// may carry.
const MaxTypes = 16

// TypeInfo is the compile-time-stable identity of a component type: a
// 32-bit hash plus its byte size. Equality is on hash alone.
//
// copyHook and destroyHook are the non-trivial-component escape hatch:
// Chunk.reallocate and Chunk.MoveTo call copyHook (when set) instead of
// a raw byte copy for non-trivial columns, and Chunk.Deallocate calls
// destroyHook before clearing a removed row's bytes. Both are nil for
// ordinary components.
type TypeInfo struct {
	hash        uint32
	size        uint32
	trivial     bool
	name        string
	copyHook    func(dst, src unsafe.Pointer)
	destroyHook func(ptr unsafe.Pointer)
}

// Hash returns the type's stable 32-bit identifier.
func (t TypeInfo) Hash() uint32 { return t.hash }

// Size returns the type's byte size.
func (t TypeInfo) Size() uint32 { return t.size }

// Trivial reports whether the type may be moved by a raw byte copy. Plain
// data containing no pointer, slice, map, channel, interface, or string
// is trivial.
func (t TypeInfo) Trivial() bool { return t.trivial }

// Name is the type's declared Go name, used only for diagnostics.
func (t TypeInfo) Name() string { return t.name }

// ComponentType is the identity a value must expose to be usable as a
// component: a stable hash, a size, and whether it is trivially copyable.
// Component[T], returned by NewComponentType, is the only constructor.
type ComponentType interface {
	Hash() uint32
	Size() uint32
	Trivial() bool
	Name() string
}

// fnv1a32 is the build-time hash used for type identity: the FNV-1a
// 32-bit hash of the type's textual name.
func fnv1a32(s string) uint32 {
	const offset32 = 2166136261
	const prime32 = 16777619
	h := uint32(offset32)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime32
	}
	return h
}

var (
	typeRegistryMu sync.Mutex
	// hashToName is the build-time synonym check: every type that calls
	// NewComponentType registers its name here, and a second, different
	// name landing on the same hash is a build-time (first-use-time)
	// failure.
	hashToName = make(map[uint32]string)
)

// isTrivial reports whether T contains no pointer, slice, map, channel,
// interface, or (recursively) string field, the "plain data" contract
// every component must satisfy.
func isTrivial(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan,
		reflect.Interface, reflect.String, reflect.Func, reflect.UnsafePointer:
		return false
	case reflect.Array:
		return isTrivial(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isTrivial(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Component is a ComponentType bound to a concrete Go type T. It is the
// handle user code passes to World.CreateEntity, Get, Set, and the
// ForEachN family.
type Component[T any] struct {
	info TypeInfo
}

// Hash returns the component's stable 32-bit identifier.
func (c Component[T]) Hash() uint32 { return c.info.hash }

// Size returns the component's byte size.
func (c Component[T]) Size() uint32 { return c.info.size }

// Trivial reports whether the component may be moved by a raw byte copy.
func (c Component[T]) Trivial() bool { return c.info.trivial }

// Name returns the component's declared Go type name.
func (c Component[T]) Name() string { return c.info.name }

func (c Component[T]) copyHook() func(dst, src unsafe.Pointer) { return c.info.copyHook }
func (c Component[T]) destroyHook() func(ptr unsafe.Pointer)   { return c.info.destroyHook }

// WithHooks returns a copy of c carrying copyFn/destroyFn. copyFn is
// invoked by Chunk.reallocate/MoveTo in place of a raw byte copy;
// destroyFn is invoked by Chunk.Deallocate, Clear and Destroy on each
// removed row before its bytes are zeroed or released. Both serve
// components whose value contains
// state a shallow byte copy would handle incorrectly. A nil argument
// leaves that hook unset. Register the returned value, not the original,
// as the archetype's component.
func (c Component[T]) WithHooks(copyFn func(dst, src *T), destroyFn func(v *T)) Component[T] {
	info := c.info
	if copyFn != nil {
		info.copyHook = func(dst, src unsafe.Pointer) { copyFn((*T)(dst), (*T)(src)) }
	}
	if destroyFn != nil {
		info.destroyHook = func(ptr unsafe.Pointer) { destroyFn((*T)(ptr)) }
	}
	return Component[T]{info: info}
}

// NewComponentType registers T as a component type and returns its
// Component[T] handle. It panics if T has zero size, or if a previously
// registered, distinct type hashes to the same value as T, since the
// core has no runtime registration table to check against up front and
// both conditions are surfaced the first time the colliding or empty
// type is used.
func NewComponentType[T any]() Component[T] {
	var zero T
	t := reflect.TypeOf(zero)
	name := t.PkgPath() + "." + t.Name()
	if name == "." {
		name = t.String()
	}
	hash := fnv1a32(name)
	size := uint32(t.Size())

	typeRegistryMu.Lock()
	defer typeRegistryMu.Unlock()
	if size == 0 {
		Must(newError(InvalidComponentSize, "type %q has zero size; components must be fixed and positive in size", name))
	}
	if existing, ok := hashToName[hash]; ok && existing != name {
		Must(newError(DuplicateType, "types %q and %q share type hash %d", existing, name, hash))
	}
	hashToName[hash] = name

	return Component[T]{info: TypeInfo{
		hash:    hash,
		size:    size,
		trivial: isTrivial(t),
		name:    name,
	}}
}
