// Package registry implements the named ID registry: six category sets of
// name <-> ID bindings, their single-string export format, and the rules
// that keep every category injective.
//
// A Registry is owned by one editing session and is not safe for
// concurrent use. Callers on several goroutines go through
// service.Session, which serializes every call behind one lock so that
// Assign's detach-then-attach and Load's segment-by-segment application
// each appear atomic.
//
// Change notifications are delivered synchronously on the mutating call's
// stack. A listener may read from the registry but any mutation it
// attempts fails with errors.ErrReentrant.
package registry
