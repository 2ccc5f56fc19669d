package registry

import (
	nidserr "github.com/amterp/nids/internal/errors"
	"github.com/amterp/nids/internal/events"
	"github.com/amterp/nids/internal/model"
	"github.com/amterp/nids/internal/settings"
	"github.com/amterp/nids/internal/util"
)

// Registry owns one Set per category.
type Registry struct {
	sets  [model.NumCategories]*Set
	dirty bool

	moreNumericIDs bool

	notifier events.Notifier
	sanitize func(string) error
	settings settings.BoolSource

	notifying bool
}

// Option configures a Registry during construction.
type Option func(*Registry)

// WithNotifier sets the sink for change notifications.
func WithNotifier(n events.Notifier) Option {
	return func(r *Registry) {
		if n != nil {
			r.notifier = n
		}
	}
}

// WithSanitizer replaces the name validator used by Assign.
func WithSanitizer(fn func(name string) error) Option {
	return func(r *Registry) {
		if fn != nil {
			r.sanitize = fn
		}
	}
}

// WithSettings sets the source of the more-numeric-ids flag. The flag is
// read once here and then only on RefreshMoreNumericIDs.
func WithSettings(src settings.BoolSource) Option {
	return func(r *Registry) {
		if src != nil {
			r.settings = src
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		notifier: events.Discard,
		sanitize: util.SanitizeName,
		settings: settings.Static{},
	}
	for i := range r.sets {
		r.sets[i] = NewSet()
	}
	for _, opt := range opts {
		opt(r)
	}
	r.RefreshMoreNumericIDs()
	return r
}

func (r *Registry) set(c model.Category) *Set {
	return r.sets[c.Index()]
}

// ResolveName returns the name bound to id.
func (r *Registry) ResolveName(c model.Category, id int16) (string, error) {
	c = c.Normalize()
	name, ok := r.set(c).ByID(id)
	if !ok {
		return "", nidserr.IDNotFound(c.String(), id)
	}
	return name, nil
}

// ResolveID returns the ID bound to name.
func (r *Registry) ResolveID(c model.Category, name string) (int16, error) {
	c = c.Normalize()
	id, ok := r.set(c).IDFor(name)
	if !ok {
		return 0, nidserr.NameNotFound(c.String(), name)
	}
	return id, nil
}

// Assign binds name to id. A different name already holding id loses it
// first, and a prior binding of name is replaced.
func (r *Registry) Assign(c model.Category, name string, id int16) error {
	c = c.Normalize()
	if err := r.checkWritable(); err != nil {
		return err
	}
	if id <= 0 {
		return nidserr.InvalidID(id)
	}
	if err := r.sanitize(name); err != nil {
		return nidserr.InvalidName(name, err)
	}

	s := r.set(c)
	if owner, ok := s.ByID(id); ok && owner != name {
		s.deleteName(owner)
	}
	s.put(name, id)
	r.dirty = true

	r.emit(events.Created(c, name, id))
	return nil
}

// RemoveByName deletes the binding for name.
func (r *Registry) RemoveByName(c model.Category, name string) error {
	c = c.Normalize()
	if err := r.checkWritable(); err != nil {
		return err
	}

	s := r.set(c)
	id, ok := s.IDFor(name)
	if !ok {
		return nidserr.NameNotFound(c.String(), name)
	}
	s.deleteName(name)
	r.dirty = true

	r.emit(events.Removed(c, name, id))
	return nil
}

// RemoveByID deletes the binding that holds id.
func (r *Registry) RemoveByID(c model.Category, id int16) error {
	c = c.Normalize()
	if err := r.checkWritable(); err != nil {
		return err
	}

	s := r.set(c)
	name, ok := s.ByID(id)
	if !ok {
		return nidserr.IDNotFound(c.String(), id)
	}
	s.deleteName(name)
	r.dirty = true

	r.emit(events.Removed(c, name, id))
	return nil
}

// Entries lists a category's bindings in insertion order.
func (r *Registry) Entries(c model.Category) []model.NamedID {
	c = c.Normalize()
	s := r.set(c)
	out := make([]model.NamedID, len(s.entries))
	for i, e := range s.entries {
		out[i] = model.NamedID{Category: c, Name: e.name, ID: e.id}
	}
	return out
}

// IsEmpty reports whether no category holds a binding.
func (r *Registry) IsEmpty() bool {
	for _, s := range r.sets {
		if s.Len() > 0 {
			return false
		}
	}
	return true
}

// IsDirty reports whether there are mutations since the last save or reset.
func (r *Registry) IsDirty() bool {
	return r.dirty
}

// MarkClean clears the dirty flag. Called by the persistence layer after
// a successful save.
func (r *Registry) MarkClean() {
	r.dirty = false
}

// Reset clears every category and the dirty flag without notifying.
func (r *Registry) Reset() error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	for _, s := range r.sets {
		s.clear()
	}
	r.dirty = false
	return nil
}

// MoreNumericIDs returns the cached more-numeric-ids flag.
func (r *Registry) MoreNumericIDs() bool {
	return r.moreNumericIDs
}

// RefreshMoreNumericIDs re-reads the flag from the settings source.
func (r *Registry) RefreshMoreNumericIDs() {
	r.moreNumericIDs = r.settings.Bool(model.SettingMoreNumericIDs)
}

// Snapshot captures the bindings and dirty flag.
type Snapshot struct {
	sets  [model.NumCategories]*Set
	dirty bool
}

// Snapshot copies the current state. Pair with Restore to make Load atomic.
func (r *Registry) Snapshot() *Snapshot {
	snap := &Snapshot{dirty: r.dirty}
	for i, s := range r.sets {
		snap.sets[i] = s.Clone()
	}
	return snap
}

// Restore replaces the current state with snap. The snapshot stays
// reusable. No notifications are sent.
func (r *Registry) Restore(snap *Snapshot) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	for i, s := range snap.sets {
		r.sets[i] = s.Clone()
	}
	r.dirty = snap.dirty
	return nil
}

func (r *Registry) checkWritable() error {
	if r.notifying {
		return nidserr.ErrReentrant
	}
	return nil
}

func (r *Registry) emit(e events.Event) {
	r.notifying = true
	defer func() { r.notifying = false }()
	r.notifier.Notify(e)
}
