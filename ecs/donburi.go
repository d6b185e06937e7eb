package ecs

import (
	"github.com/phanxgames/panorama"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WorldEventType is the Donburi event type for panorama world events.
// Subscribe to this in your ECS systems to receive slide, item, switch, and
// transition events.
var WorldEventType = events.NewEventType[panorama.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to WorldEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) panorama.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event panorama.Event) {
	WorldEventType.Publish(s.world, event)
}
