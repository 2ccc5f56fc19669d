package registry

import (
	"strings"

	nidserr "github.com/amterp/nids/internal/errors"
	"github.com/amterp/nids/internal/model"
)

// segmentSep joins the category segments of an export string. Names can
// never contain it.
const segmentSep = "|"

// mandatorySegments is the number of segments every export string carries.
// Timer, Effect and Color were added later and may be absent.
const mandatorySegments = 3

// Dump serializes all categories as one string, in model.Categories order.
func (r *Registry) Dump() string {
	parts := make([]string, model.NumCategories)
	for i, s := range r.sets {
		parts[i] = s.Serialize()
	}
	return strings.Join(parts, segmentSep)
}

// Load replaces categories from an export string.
//
// Group, Collision and Counter are mandatory. A trailing category whose
// separator is missing keeps its current contents. Segments are applied as
// they parse: when one fails, the categories before it have already been
// replaced and the rest are untouched. Callers that need all-or-nothing
// semantics take a Snapshot first and Restore it on error.
//
// Load does not mark the registry dirty and does not notify.
func (r *Registry) Load(str string) error {
	if err := r.checkWritable(); err != nil {
		return err
	}

	segments := strings.SplitN(str, segmentSep, model.NumCategories)
	if len(segments) < mandatorySegments {
		return nidserr.Malformed("required delimiters not present")
	}

	for i, seg := range segments {
		c := model.Categories[i]
		set, err := Deserialize(seg)
		if err != nil {
			return &nidserr.ImportError{Category: c.String(), Err: err}
		}
		r.sets[i] = set
	}
	return nil
}
