package service

import (
	"fmt"
	"sync"

	nidserr "github.com/amterp/nids/internal/errors"
	"github.com/amterp/nids/internal/events"
	"github.com/amterp/nids/internal/id"
	"github.com/amterp/nids/internal/model"
	"github.com/amterp/nids/internal/registry"
	"github.com/amterp/nids/internal/settings"
	"github.com/amterp/nids/internal/store"
)

// Session ties a registry to its backing file and is the only place the
// registry is locked. Every call holds the lock for the whole operation.
//
// Change events raised while the lock is held are queued and delivered to
// subscribers after it is released, so a subscriber may call back into
// the session.
type Session struct {
	mu    sync.Mutex
	store store.NamedIDStore
	reg   *registry.Registry
	file  *model.NamedIDFile

	pending    []events.Event
	dispatcher *events.Dispatcher
}

// NewSession creates a session over st. flags supplies the
// more-numeric-ids setting; nil means every flag is off.
func NewSession(st store.NamedIDStore, flags settings.BoolSource, opts ...registry.Option) *Session {
	s := &Session{
		store:      st,
		dispatcher: events.NewDispatcher(),
	}
	queue := events.NotifierFunc(func(e events.Event) {
		s.pending = append(s.pending, e)
	})
	all := append([]registry.Option{registry.WithSettings(flags)}, opts...)
	all = append(all, registry.WithNotifier(queue))
	s.reg = registry.New(all...)
	return s
}

// Subscribe registers n for change events.
func (s *Session) Subscribe(n events.Notifier) {
	s.dispatcher.Subscribe(n)
}

// Open loads the data file into the registry and refreshes the
// more-numeric-ids setting. A segment that fails to parse leaves the
// earlier categories loaded for reading and is reported as an
// ImportError. The file stays closed in that case, so Save refuses to
// overwrite it with the partial contents.
func (s *Session) Open() error {
	return s.run(func() error {
		s.file = nil
		file, err := s.store.Load()
		if err != nil {
			return err
		}
		s.reg.RefreshMoreNumericIDs()
		if err := s.reg.Reset(); err != nil {
			return err
		}
		err = s.reg.Load(file.Data)
		s.reg.MarkClean()
		if err != nil {
			return err
		}
		s.file = file
		return nil
	})
}

// Init creates an empty data file. It fails if one already exists.
func (s *Session) Init(name string) error {
	return s.run(func() error {
		if s.store.Exists() {
			return &nidserr.AlreadyInitializedError{Path: s.store.Path()}
		}
		if err := s.reg.Reset(); err != nil {
			return err
		}
		s.reg.RefreshMoreNumericIDs()

		file := &model.NamedIDFile{
			ID:   id.Generate(),
			Name: name,
			Data: s.reg.Dump(),
		}
		if err := s.store.Save(file); err != nil {
			return err
		}
		s.file = file
		return nil
	})
}

// Save writes the registry to the data file and clears the dirty flag. A
// file without a project ID, such as one written by hand, gets one.
func (s *Session) Save() error {
	return s.run(func() error {
		if s.file == nil {
			return fmt.Errorf("%w: session has no open file", nidserr.ErrNotInitialized)
		}
		if !id.IsProjectID(s.file.ID) {
			s.file.ID = id.Generate()
		}
		s.file.Data = s.reg.Dump()
		if err := s.store.Save(s.file); err != nil {
			return err
		}
		s.reg.MarkClean()
		return nil
	})
}

// Reload re-reads the data file after an external edit. Bindings that
// changed are reported to subscribers as removed and created events.
// Reload refuses to discard unsaved changes, and a file that fails to
// parse leaves the registry as it was.
func (s *Session) Reload() error {
	return s.run(func() error {
		if s.reg.IsDirty() {
			return nidserr.ErrUnsavedChanges
		}
		file, err := s.store.Load()
		if err != nil {
			return err
		}

		before := s.allEntries()
		snap := s.reg.Snapshot()
		if err := s.reg.Reset(); err != nil {
			return err
		}
		if err := s.reg.Load(file.Data); err != nil {
			if rerr := s.reg.Restore(snap); rerr != nil {
				return rerr
			}
			return err
		}
		s.reg.MarkClean()
		s.file = file

		s.pending = append(s.pending, diffEntries(before, s.allEntries())...)
		return nil
	})
}

// Assign binds name to id in category c.
func (s *Session) Assign(c model.Category, name string, id int16) error {
	return s.run(func() error {
		return s.reg.Assign(c, name, id)
	})
}

// RemoveByName deletes the binding for name in category c.
func (s *Session) RemoveByName(c model.Category, name string) error {
	return s.run(func() error {
		return s.reg.RemoveByName(c, name)
	})
}

// RemoveByID deletes the binding holding id in category c.
func (s *Session) RemoveByID(c model.Category, id int16) error {
	return s.run(func() error {
		return s.reg.RemoveByID(c, id)
	})
}

// ResolveName returns the name bound to id.
func (s *Session) ResolveName(c model.Category, id int16) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.ResolveName(c, id)
}

// ResolveID returns the ID bound to name.
func (s *Session) ResolveID(c model.Category, name string) (int16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.ResolveID(c, name)
}

// Entries lists the bindings of category c in insertion order.
func (s *Session) Entries(c model.Category) []model.NamedID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Entries(c)
}

// All lists every binding, category by category.
func (s *Session) All() []model.NamedID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allEntries()
}

// Export returns the registry's export string.
func (s *Session) Export() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Dump()
}

// Import loads an export string into the registry. With atomic set, a
// failure restores the previous contents instead of keeping the
// categories decoded before the bad segment. The data file is not
// written; call Save.
func (s *Session) Import(data string, atomic bool) error {
	return s.run(func() error {
		var snap *registry.Snapshot
		if atomic {
			snap = s.reg.Snapshot()
		}
		err := s.reg.Load(data)
		if err != nil && snap != nil {
			if rerr := s.reg.Restore(snap); rerr != nil {
				return rerr
			}
		}
		return err
	})
}

// Reset clears every category and the dirty flag.
func (s *Session) Reset() error {
	return s.run(s.reg.Reset)
}

// IsEmpty reports whether no category holds a binding.
func (s *Session) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.IsEmpty()
}

// IsDirty reports whether there are changes not yet saved.
func (s *Session) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.IsDirty()
}

// MoreNumericIDs returns the cached more-numeric-ids flag.
func (s *Session) MoreNumericIDs() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.MoreNumericIDs()
}

// RefreshSettings re-reads the more-numeric-ids flag.
func (s *Session) RefreshSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.RefreshMoreNumericIDs()
}

// MaxID returns the largest ID the add prompt should accept.
func (s *Session) MaxID() int {
	return model.MaxAllowedID(s.MoreNumericIDs())
}

// ProjectID returns the ID stamped into the data file by init, or "" if
// no file is open.
func (s *Session) ProjectID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return ""
	}
	return s.file.ID
}

// Path returns the data file location.
func (s *Session) Path() string {
	return s.store.Path()
}

// Close forgets the open file and clears the registry.
func (s *Session) Close() error {
	return s.run(func() error {
		s.file = nil
		return s.reg.Reset()
	})
}

// run executes fn under the lock and then delivers whatever events it
// queued.
func (s *Session) run(fn func() error) error {
	s.mu.Lock()
	err := fn()
	queued := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, e := range queued {
		s.dispatcher.Notify(e)
	}
	return err
}

func (s *Session) allEntries() []model.NamedID {
	var out []model.NamedID
	for _, c := range model.Categories {
		out = append(out, s.reg.Entries(c)...)
	}
	return out
}
