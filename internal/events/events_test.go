package events

import (
	"testing"

	"github.com/amterp/nids/internal/model"
)

func TestDispatcher_FanOutInOrder(t *testing.T) {
	d := NewDispatcher()

	var order []string
	d.SubscribeFunc(func(e Event) { order = append(order, "first:"+e.Name) })
	d.SubscribeFunc(func(e Event) { order = append(order, "second:"+e.Name) })

	d.Notify(Created(model.CategoryGroup, "door", 4))

	if len(order) != 2 {
		t.Fatalf("Expected 2 deliveries, got %d", len(order))
	}
	if order[0] != "first:door" || order[1] != "second:door" {
		t.Errorf("Unexpected delivery order: %v", order)
	}
}

func TestDispatcher_SubscribeDuringNotify(t *testing.T) {
	d := NewDispatcher()
	late := &Recorder{}

	d.SubscribeFunc(func(e Event) {
		d.Subscribe(late)
	})

	d.Notify(Removed(model.CategoryColor, "bg", 1))
	if len(late.Events()) != 0 {
		t.Error("Subscriber added during delivery should not see the current event")
	}

	d.Notify(Removed(model.CategoryColor, "bg", 1))
	if len(late.Events()) != 1 {
		t.Errorf("Expected late subscriber to see next event, got %d", len(late.Events()))
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Notify(Created(model.CategoryTimer, "t", 2))

	got := r.Events()
	if len(got) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(got))
	}
	want := Event{Kind: KindCreated, Category: model.CategoryTimer, Name: "t", ID: 2}
	if got[0] != want {
		t.Errorf("Expected %+v, got %+v", want, got[0])
	}

	r.Reset()
	if len(r.Events()) != 0 {
		t.Error("Expected no events after Reset")
	}
}
