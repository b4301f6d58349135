package ecs

import (
	"testing"

	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []arbor.Event
	EventType.Subscribe(world, func(w donburi.World, e arbor.Event) {
		received = append(received, e)
	})

	store.EmitEvent(arbor.Event{Target: 3, Payload: arbor.Click{X: 10, Y: 20, Count: 1}})
	store.EmitEvent(arbor.Event{Target: 7, Payload: "saved"})

	// Events are queued; process them.
	EventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	click, ok := received[0].Payload.(arbor.Click)
	if received[0].Target != 3 || !ok {
		t.Fatalf("event 0: %+v", received[0])
	}
	if click.X != 10 || click.Y != 20 || click.Count != 1 {
		t.Errorf("event 0 click: %+v", click)
	}
	if received[1].Target != 7 || received[1].Payload != "saved" {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store arbor.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	EventType.Subscribe(world, func(w donburi.World, e arbor.Event) {
		count1++
	})
	EventType.Subscribe(world, func(w donburi.World, e arbor.Event) {
		count2++
	})

	store.EmitEvent(arbor.Event{Target: 0, Payload: 1})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiStore_ReceivesDispatchedEvents(t *testing.T) {
	world := donburi.NewWorld()
	u := arbor.NewUI()
	u.SetEntityStore(NewDonburiStore(world))

	box := arbor.NewBox(arbor.ColorWhite)
	box.Interactive = true
	id := u.Add(box)
	u.SetRoot(id)
	u.Layout(arbor.Loose(arbor.Size{Width: 50, Height: 50}), id)

	var listened int
	arbor.AddListener(u, id, func(c arbor.Click, ctx *arbor.ListenerCtx) {
		listened++
	})

	var received []arbor.Event
	EventType.Subscribe(world, func(w donburi.World, e arbor.Event) {
		received = append(received, e)
	})

	u.HandleMouseEvent(arbor.MouseEvent{X: 5, Y: 5, Button: arbor.MouseButtonLeft, Count: 1})
	EventType.ProcessEvents(world)

	if listened != 1 {
		t.Errorf("listener calls = %d, want 1", listened)
	}
	if len(received) != 1 || received[0].Target != id {
		t.Fatalf("received = %+v, want one event for node %d", received, id)
	}
	if _, ok := received[0].Payload.(arbor.Click); !ok {
		t.Errorf("payload = %T, want arbor.Click", received[0].Payload)
	}
}
