package ecs

import (
	"sync"
	"unsafe"

	"github.com/TheBitDrifter/mask"
)

// componentBits assigns each distinct component hash a stable bit
// position the first time it is seen. Archetype uses the resulting
// mask.Mask as a fast superset pre-check ahead of the descending-hash
// scan; the sorted TypeInfo array remains the source of truth for
// equality, ordering, and offsets.
var (
	componentBitsMu  sync.Mutex
	componentBits    = make(map[uint32]uint32)
	nextComponentBit uint32
)

func bitFor(hash uint32) uint32 {
	componentBitsMu.Lock()
	defer componentBitsMu.Unlock()
	if bit, ok := componentBits[hash]; ok {
		return bit
	}
	bit := nextComponentBit
	nextComponentBit++
	componentBits[hash] = bit
	return bit
}

// Archetype is the immutable, value-typed descriptor of a sorted set of
// TypeInfos an entity carries. It is small and meant to be passed by
// value.
type Archetype struct {
	types   [MaxTypes]TypeInfo
	count   int
	rowSize uint32
	sig     mask.Mask
}

// NewArchetype builds an Archetype from a set of component types, sorted
// descending by hash with duplicates rejected. It fails with TooManyTypes
// if more than MaxTypes types are given, and DuplicateType if any two
// share a hash.
func NewArchetype(components ...ComponentType) (Archetype, error) {
	if len(components) > MaxTypes {
		return Archetype{}, newError(TooManyTypes, "%d types exceeds MaxTypes (%d)", len(components), MaxTypes)
	}

	var a Archetype
	a.count = len(components)
	for i, c := range components {
		info := TypeInfo{hash: c.Hash(), size: c.Size(), trivial: c.Trivial(), name: c.Name()}
		if hc, ok := c.(interface {
			copyHook() func(dst, src unsafe.Pointer)
		}); ok {
			info.copyHook = hc.copyHook()
		}
		if hc, ok := c.(interface {
			destroyHook() func(ptr unsafe.Pointer)
		}); ok {
			info.destroyHook = hc.destroyHook()
		}
		a.types[i] = info
		a.rowSize += c.Size()
	}

	// insertion sort, descending by hash; archetypes are tiny (<=16).
	for i := 1; i < a.count; i++ {
		cur := a.types[i]
		j := i - 1
		for j >= 0 && a.types[j].hash < cur.hash {
			a.types[j+1] = a.types[j]
			j--
		}
		a.types[j+1] = cur
	}

	for i := 1; i < a.count; i++ {
		if a.types[i].hash == a.types[i-1].hash {
			return Archetype{}, newError(DuplicateType, "type %q and %q share type hash %d", a.types[i-1].name, a.types[i].name, a.types[i].hash)
		}
	}

	for i := 0; i < a.count; i++ {
		a.sig.Mark(bitFor(a.types[i].hash))
	}

	return a, nil
}

// TypeCount returns the number of component types in the archetype.
func (a Archetype) TypeCount() int { return a.count }

// RowSize returns the total byte size of one row.
func (a Archetype) RowSize() uint32 { return a.rowSize }

// TypeAt returns the TypeInfo stored at the given position, which is
// valid in [0, TypeCount()).
func (a Archetype) TypeAt(i int) TypeInfo { return a.types[i] }

// Equal reports whether a and other describe the same type set.
func (a Archetype) Equal(other Archetype) bool {
	if a.count != other.count {
		return false
	}
	for i := 0; i < a.count; i++ {
		if a.types[i].hash != other.types[i].hash {
			return false
		}
	}
	return true
}

// Has reports whether the archetype carries a type with the given hash.
func (a Archetype) Has(hash uint32) bool {
	_, ok := a.TypeIndex(hash)
	return ok
}

// TypeIndex returns the position of the type with the given hash,
// exploiting the descending sort: scan stops as soon as a smaller hash
// is seen.
func (a Archetype) TypeIndex(hash uint32) (int, bool) {
	for i := 0; i < a.count && a.types[i].hash >= hash; i++ {
		if a.types[i].hash == hash {
			return i, true
		}
	}
	return 0, false
}

// TypeOffset returns the byte offset, inside a chunk of the given
// capacity, at which column i's data begins. It is the only rule for
// where a column lives; every read, write, grow, shrink, and move path
// derives its offsets from it.
func (a Archetype) TypeOffset(i int, capacity int) uint32 {
	var offset uint32
	for j := 0; j < i; j++ {
		offset += a.types[j].size * uint32(capacity)
	}
	return offset
}

// SubsetOf reports whether every type in a is also present in other, so
// that other's archetype is a superset of a's. The mask check is a fast
// rejection; the descending-hash walk always runs afterward to confirm
// the answer.
func (a Archetype) SubsetOf(other Archetype) bool {
	if !other.sig.ContainsAll(a.sig) {
		return false
	}
	for i := 0; i < a.count; i++ {
		probe := a.types[i]
		found := false
		for j := 0; j < other.count && other.types[j].hash >= probe.hash; j++ {
			if other.types[j].hash == probe.hash {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// sharedCount reports how many of a's columns other also carries; it is
// used by Chunk.MoveTo to reject a move between archetypes that share no
// column.
func (a Archetype) sharedCount(other Archetype) int {
	n := 0
	for i := 0; i < a.count; i++ {
		if other.Has(a.types[i].hash) {
			n++
		}
	}
	return n
}
