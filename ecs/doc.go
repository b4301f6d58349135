// Package ecs provides ECS adapters for arbor's event dispatch.
//
// The primary adapter is [NewDonburiStore], which forwards every event
// dispatched by an arbor UI (clicks, key events, anything a widget or
// listener sends) into a [Donburi] world as a typed event. Subscribe to
// [EventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	ui.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
