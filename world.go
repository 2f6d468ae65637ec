package ecs

import (
	"sort"

	"github.com/TheBitDrifter/mask"
)

// World owns every Chunk, routes entity lifecycle and component access to
// the right one, and drives the ordered System lifecycle. It is not safe
// for concurrent structural mutation; see ForEachParallel1 and
// ForEachParallel2 for the one place World fans out across goroutines.
type World struct {
	app         Application
	chunks      []*Chunk // sorted ascending by id, for binary search
	byArchetype map[mask.Mask]*Chunk
	nextChunkID uint32

	systems     []System
	initialized bool
}

// NewWorld constructs an empty World. app may be nil if the caller has no
// Application collaborator.
func NewWorld(app Application) *World {
	return &World{
		app:         app,
		byArchetype: make(map[mask.Mask]*Chunk),
	}
}

func archetypeKey(a Archetype) mask.Mask {
	var m mask.Mask
	for i := 0; i < a.count; i++ {
		m.Mark(bitFor(a.types[i].hash))
	}
	return m
}

// chunkFor returns the chunk holding exactly the given archetype,
// creating one (with reserve capacity) if none exists yet.
func (w *World) chunkFor(a Archetype, reserve int) *Chunk {
	key := archetypeKey(a)
	if c, ok := w.byArchetype[key]; ok {
		return c
	}
	if reserve < 1 {
		reserve = 1
	}
	id := w.nextChunkID
	w.nextChunkID++
	c := newChunk(id, a, reserve)

	// insertion point in the ascending-by-id slice; ids are assigned
	// monotonically so this is always an append, but Search keeps the
	// invariant explicit.
	i := sort.Search(len(w.chunks), func(i int) bool { return w.chunks[i].id >= id })
	w.chunks = append(w.chunks, nil)
	copy(w.chunks[i+1:], w.chunks[i:])
	w.chunks[i] = c

	w.byArchetype[key] = c
	return c
}

func (w *World) findChunk(id uint32) (*Chunk, error) {
	i := sort.Search(len(w.chunks), func(i int) bool { return w.chunks[i].id >= id })
	if i >= len(w.chunks) || w.chunks[i].id != id {
		return nil, newError(UnknownChunk, "no chunk with id %d", id)
	}
	return w.chunks[i], nil
}

// CreateEntity builds (or reuses) the chunk matching the given component
// set and allocates one row in it. A newly built chunk starts with
// capacity reserve; an existing chunk's capacity is left unchanged.
func (w *World) CreateEntity(reserve int, components ...ComponentType) (Entity, error) {
	a, err := NewArchetype(components...)
	if err != nil {
		return Entity{}, err
	}
	c := w.chunkFor(a, reserve)
	return c.Allocate(), nil
}

// DestroyEntity removes e from its chunk, invalidating the handle.
func (w *World) DestroyEntity(e Entity) error {
	c, err := w.findChunk(e.chunkID)
	if err != nil {
		return err
	}
	return c.Deallocate(e)
}

// Get reads comp's value off e, or MissingComponent/InvalidEntity/
// UnknownChunk on failure.
func Get[T any](w *World, e Entity, comp Component[T]) (T, error) {
	var zero T
	c, err := w.findChunk(e.chunkID)
	if err != nil {
		return zero, err
	}
	row, err := e.row()
	if err != nil {
		return zero, err
	}
	p, err := GetAt(c, comp, row)
	if err != nil {
		return zero, err
	}
	return *p, nil
}

// Set writes v into comp's column for e.
func Set[T any](w *World, e Entity, comp Component[T], v T) error {
	c, err := w.findChunk(e.chunkID)
	if err != nil {
		return err
	}
	row, err := e.row()
	if err != nil {
		return err
	}
	return SetAt(c, comp, row, v)
}

// MoveEntity relocates e into the chunk matching the given component set,
// copying every column the source and destination archetypes share. The
// destination chunk is found or created before the move is attempted.
// It fails with NewArchetype's errors for a bad component set, with
// UnknownChunk or InvalidEntity for a bad handle, and with
// ArchetypeMismatch if the two archetypes share no columns.
func (w *World) MoveEntity(e Entity, components ...ComponentType) (Entity, error) {
	a, err := NewArchetype(components...)
	if err != nil {
		return Entity{}, err
	}
	src, err := w.findChunk(e.chunkID)
	if err != nil {
		return Entity{}, err
	}
	dst := w.chunkFor(a, 1)
	return src.MoveTo(e, dst)
}

// Chunks returns every chunk currently held by the world, ascending by id.
func (w *World) Chunks() []*Chunk {
	out := make([]*Chunk, len(w.chunks))
	copy(out, w.chunks)
	return out
}

// matchingChunks returns, in ascending chunk-id order, every non-empty
// chunk whose archetype is a superset of target.
func (w *World) matchingChunks(target Archetype) []*Chunk {
	var out []*Chunk
	for _, c := range w.chunks {
		if c.Count() == 0 {
			continue
		}
		if target.SubsetOf(c.archetype) {
			out = append(out, c)
		}
	}
	return out
}

// AddSystem inserts s in priority order, stably after any existing
// system at the same priority. If the world has already been
// initialized (Init has run), s's OnInit is called immediately rather
// than waiting for the next Init.
func (w *World) AddSystem(s System) {
	i := sort.Search(len(w.systems), func(i int) bool { return w.systems[i].Priority() > s.Priority() })
	w.systems = append(w.systems, nil)
	copy(w.systems[i+1:], w.systems[i:])
	w.systems[i] = s

	if bs, ok := s.(interface{ setWorld(*World) }); ok {
		bs.setWorld(w)
	}
	if w.initialized {
		s.OnInit(w)
	}
}

// Init runs OnInit on every system in priority order and marks the
// world initialized.
func (w *World) Init() {
	w.initialized = true
	for _, s := range w.systems {
		s.OnInit(w)
	}
}

// Update runs OnUpdate on every system that existed at the start of the
// tick, in priority order, dropping each one that asks for removal via
// Removable right after its OnUpdate returns. A system added mid-tick
// (from inside another system's OnUpdate) is not run until the following
// tick.
func (w *World) Update() {
	tick := make([]System, len(w.systems))
	copy(tick, w.systems)

	for _, s := range tick {
		s.OnUpdate(w)
		if removable, ok := s.(Removable); !ok || !removable.WantsRemoval() {
			continue
		}
		for i, cur := range w.systems {
			if cur == s {
				w.systems = append(w.systems[:i], w.systems[i+1:]...)
				break
			}
		}
	}
}

// End runs OnEnd on every system in priority order, then destroys every
// chunk the world holds.
func (w *World) End() {
	for _, s := range w.systems {
		s.OnEnd(w)
	}
	for _, c := range w.chunks {
		c.Destroy()
	}
}
