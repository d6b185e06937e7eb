package ecs

import (
	"testing"

	"github.com/phanxgames/panorama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	require.NotNil(t, NewDonburiSink(world))
}

func TestDonburiSink_Emit(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []panorama.Event
	WorldEventType.Subscribe(world, func(w donburi.World, e panorama.Event) {
		received = append(received, e)
	})

	sink.Emit(panorama.Event{Type: panorama.EventSlideEntered, Slide: "hall"})
	sink.Emit(panorama.Event{Type: panorama.EventSwitchToggled, Switch: "lever", On: true})

	// Events are queued until processed.
	assert.Empty(t, received)
	WorldEventType.ProcessEvents(world)

	require.Len(t, received, 2)
	assert.Equal(t, panorama.EventSlideEntered, received[0].Type)
	assert.Equal(t, "hall", received[0].Slide)
	assert.Equal(t, panorama.EventSwitchToggled, received[1].Type)
	assert.True(t, received[1].On)
}
