package ecs

// Config holds global, process-lifetime knobs for the package.
var Config config = config{defaultParallelShards: 4}

type config struct {
	chunkEvents           ChunkEvents
	defaultParallelShards int
}

// ChunkEvents lets a caller observe chunk growth and shrink. Any field
// left nil is simply not invoked.
type ChunkEvents struct {
	BeforeGrow   func(chunkID uint32, oldCapacity, newCapacity int)
	AfterGrow    func(chunkID uint32, oldCapacity, newCapacity int)
	BeforeShrink func(chunkID uint32, oldCapacity, newCapacity int)
	AfterShrink  func(chunkID uint32, oldCapacity, newCapacity int)
}

// SetChunkEvents configures the chunk lifecycle event callbacks.
func (c *config) SetChunkEvents(ce ChunkEvents) {
	c.chunkEvents = ce
}

// SetDefaultParallelShards sets the worker count ForEachParallel1 and
// ForEachParallel2 use when given a shard count of zero or less.
func (c *config) SetDefaultParallelShards(n int) {
	if n < 1 {
		n = 1
	}
	c.defaultParallelShards = n
}
