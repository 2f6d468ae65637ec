package ecs_test

import (
	"fmt"

	"github.com/bitforge/ecs"
)

// ExamplePos is a simple component for 2D coordinates.
type ExamplePos struct {
	X float64
	Y float64
}

// ExampleVel is a simple component for 2D movement.
type ExampleVel struct {
	X float64
	Y float64
}

// ExampleName identifies an entity.
type ExampleName struct {
	Value string
}

// Example_basic shows entity creation, component access, and a typed scan.
func Example_basic() {
	position := ecs.NewComponentType[ExamplePos]()
	velocity := ecs.NewComponentType[ExampleVel]()
	name := ecs.NewComponentType[ExampleName]()

	world := ecs.NewWorld(nil)

	for i := 0; i < 4; i++ {
		ecs.MustValue(world.CreateEntity(1, position, velocity))
	}
	named := ecs.MustValue(world.CreateEntity(1, position, velocity, name))
	ecs.Must(ecs.Set(world, named, name, ExampleName{Value: "Player"}))
	ecs.Must(ecs.Set(world, named, position, ExamplePos{X: 10, Y: 20}))
	ecs.Must(ecs.Set(world, named, velocity, ExampleVel{X: 1, Y: 2}))

	matched := 0
	ecs.ForEach2(world, position, velocity, func(pos *ExamplePos, vel *ExampleVel) {
		matched++
	})
	fmt.Printf("Found %d entities with position and velocity\n", matched)

	ecs.ForEach1(world, name, func(n *ExampleName) {
		pos, _ := ecs.Get(world, named, position)
		vel, _ := ecs.Get(world, named, velocity)
		pos.X += vel.X
		pos.Y += vel.Y
		ecs.Set(world, named, position, pos)
		fmt.Printf("Updated %s to position (%.1f, %.1f)\n", n.Value, pos.X, pos.Y)
	})

	// Output:
	// Found 5 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}
