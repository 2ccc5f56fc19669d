package registry

import (
	"fmt"
	"strconv"
	"strings"

	nidserr "github.com/amterp/nids/internal/errors"
	"github.com/amterp/nids/internal/util"
)

const (
	// entrySep separates entries inside one category segment.
	entrySep = ","
	// fieldSep separates a name from its ID inside an entry.
	fieldSep = ":"
)

type entry struct {
	name string
	id   int16
}

// Set is one category's name -> ID mapping. Entries keep insertion order
// so serialization is deterministic.
//
// A Set on its own only guarantees one ID per name; the Registry keeps IDs
// unique by detaching the old owner before attaching a new one.
type Set struct {
	entries []entry
	index   map[string]int // name -> position in entries
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// Len returns the number of bindings.
func (s *Set) Len() int {
	return len(s.entries)
}

// ByID returns the first name bound to id.
// Sets hold tens to low hundreds of entries, so a scan is fine.
func (s *Set) ByID(id int16) (string, bool) {
	for _, e := range s.entries {
		if e.id == id {
			return e.name, true
		}
	}
	return "", false
}

// IDFor returns the ID bound to name.
func (s *Set) IDFor(name string) (int16, bool) {
	i, ok := s.index[name]
	if !ok {
		return 0, false
	}
	return s.entries[i].id, true
}

// put binds name to id, updating in place if name already exists.
func (s *Set) put(name string, id int16) {
	if i, ok := s.index[name]; ok {
		s.entries[i].id = id
		return
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, entry{name: name, id: id})
}

// deleteName removes name and reports whether it was present.
func (s *Set) deleteName(name string) bool {
	i, ok := s.index[name]
	if !ok {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.index, name)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].name] = j
	}
	return true
}

func (s *Set) clear() {
	s.entries = nil
	s.index = make(map[string]int)
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	c := &Set{
		entries: make([]entry, len(s.entries)),
		index:   make(map[string]int, len(s.index)),
	}
	copy(c.entries, s.entries)
	for k, v := range s.index {
		c.index[k] = v
	}
	return c
}

// Serialize encodes the set as "name:id" entries joined by ",".
// An empty set encodes to "".
func (s *Set) Serialize() string {
	var b strings.Builder
	for i, e := range s.entries {
		if i > 0 {
			b.WriteString(entrySep)
		}
		b.WriteString(e.name)
		b.WriteString(fieldSep)
		b.WriteString(strconv.FormatInt(int64(e.id), 10))
	}
	return b.String()
}

// Deserialize decodes a Serialize result into a new Set. Empty entries are
// skipped so a trailing separator is tolerated. On error nothing is
// returned, so callers never see a partially-built set.
func Deserialize(str string) (*Set, error) {
	s := NewSet()
	if str == "" {
		return s, nil
	}

	owners := make(map[int16]string)
	for _, raw := range strings.Split(str, entrySep) {
		if raw == "" {
			continue
		}

		sep := strings.LastIndex(raw, fieldSep)
		if sep < 0 {
			return nil, &nidserr.ParseError{Entry: raw, Message: "missing name/id separator"}
		}
		name, idStr := raw[:sep], raw[sep+1:]

		if name == "" {
			return nil, &nidserr.ParseError{Entry: raw, Message: "empty name"}
		}
		if strings.ContainsAny(name, util.ReservedNameChars) {
			return nil, &nidserr.ParseError{Entry: raw, Message: "name contains a reserved character"}
		}

		id, err := strconv.ParseInt(idStr, 10, 16)
		if err != nil {
			return nil, &nidserr.ParseError{Entry: raw, Message: fmt.Sprintf("invalid id %q", idStr)}
		}
		if id <= 0 {
			return nil, &nidserr.ParseError{Entry: raw, Message: fmt.Sprintf("id %d is not positive", id)}
		}

		if _, dup := s.index[name]; dup {
			return nil, &nidserr.ParseError{Entry: raw, Message: "duplicate name"}
		}
		if other, dup := owners[int16(id)]; dup {
			return nil, &nidserr.ParseError{Entry: raw, Message: fmt.Sprintf("id %d already named %q", id, other)}
		}

		owners[int16(id)] = name
		s.put(name, int16(id))
	}
	return s, nil
}
