// Package ecs bridges adventure's entity lifecycle into a [Donburi] world.
//
// [NewDonburiSink] publishes every [adventure.LifecycleEvent] as a typed
// Donburi event and mirrors each live park entity as a Donburi entity
// carrying a [ParkEntity] component, so ECS systems can query the park.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
