package service

import (
	"github.com/amterp/nids/internal/events"
	"github.com/amterp/nids/internal/model"
)

type bindingKey struct {
	category model.Category
	name     string
}

// diffEntries describes how before became after: a removal for every
// binding that is gone or now holds another ID, then a creation for every
// binding that is new or moved. Unchanged bindings produce nothing.
func diffEntries(before, after []model.NamedID) []events.Event {
	old := make(map[bindingKey]int16, len(before))
	for _, e := range before {
		old[bindingKey{e.Category, e.Name}] = e.ID
	}
	cur := make(map[bindingKey]int16, len(after))
	for _, e := range after {
		cur[bindingKey{e.Category, e.Name}] = e.ID
	}

	var out []events.Event
	for _, e := range before {
		if id, ok := cur[bindingKey{e.Category, e.Name}]; !ok || id != e.ID {
			out = append(out, events.Removed(e.Category, e.Name, e.ID))
		}
	}
	for _, e := range after {
		if id, ok := old[bindingKey{e.Category, e.Name}]; !ok || id != e.ID {
			out = append(out, events.Created(e.Category, e.Name, e.ID))
		}
	}
	return out
}
