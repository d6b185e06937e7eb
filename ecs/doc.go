// Package ecs provides ECS adapters for panorama's world event system.
//
// The primary adapter is [NewDonburiSink], which bridges panorama world
// events (slides entered and exited, items taken and used, switches toggled,
// transitions finished) into a [Donburi] world as typed events. Subscribe to
// [WorldEventType] in your ECS systems to receive them.
//
// Usage:
//
//	engine.Events = ecs.NewDonburiSink(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
