/*
Package ecs provides an archetype-based Entity-Component-System storage and
dispatch engine for games and simulations.

Entities are grouped by archetype, the exact set of component types they
carry, and every archetype's components are laid out column-wise in a
dense, contiguous Chunk for cache-efficient batch iteration. Systems scan
chunks through the World and mutate components in bulk, optionally across
worker shards via ForEachParallel1 and ForEachParallel2.

Core Concepts:

  - ComponentType: a compile-time-stable 32-bit hash plus byte size for a
    plain-data component.
  - Archetype: the sorted set of ComponentTypes an entity carries.
  - Chunk: the column-major memory arena backing one archetype.
  - Entity: an opaque (chunk id, slot) handle into a Chunk.
  - World: owns every Chunk and System for one scene.

Basic Usage:

	type Position struct{ X, Y float32 }
	type Velocity struct{ X, Y float32 }

	position := ecs.NewComponentType[Position]()
	velocity := ecs.NewComponentType[Velocity]()

	world := ecs.NewWorld(nil)
	e, _ := world.CreateEntity(1, position, velocity)
	ecs.Set(world, e, position, Position{X: 1})

	ecs.ForEach2(world, position, velocity, func(pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	})

ecs is the storage and dispatch core; it has no rendering, input, audio,
or persistence layer of its own.
*/
package ecs
