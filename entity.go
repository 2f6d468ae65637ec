package ecs

// slot is the owned cell a Chunk rewrites during compaction so every
// Entity handle pointing at it keeps tracking the same logical row. A
// negative value marks the cell, and every Entity built from it, as
// destroyed.
type slot struct {
	row int
}

const freedSlot = -1

// Entity is the opaque (chunk id, slot) handle the World hands out for
// every row it allocates. The slot indirection survives intra-chunk
// compaction: Chunk.Deallocate rewrites the cell in place, so an Entity
// created long before a compaction still names the right row afterward.
type Entity struct {
	chunkID uint32
	cell    *slot
}

// Valid reports whether the entity was ever allocated and has not since
// been destroyed.
func (e Entity) Valid() bool {
	return e.cell != nil && e.cell.row != freedSlot
}

// ChunkID returns the id of the chunk this entity was allocated in.
func (e Entity) ChunkID() uint32 { return e.chunkID }

func (e Entity) row() (int, error) {
	if !e.Valid() {
		return 0, newError(InvalidEntity, "entity has no live slot")
	}
	return e.cell.row, nil
}
