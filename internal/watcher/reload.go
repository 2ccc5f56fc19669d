package watcher

import "log"

// Reloader re-reads state from disk.
type Reloader interface {
	Reload() error
}

// ReloadSubscriber reloads its target whenever the file is created or
// modified. Deletions are ignored so the last loaded state stays usable.
type ReloadSubscriber struct {
	target  Reloader
	onError func(error)
}

// ReloadOnChange creates a ReloadSubscriber. A nil onError logs the
// failure instead.
func ReloadOnChange(target Reloader, onError func(error)) *ReloadSubscriber {
	return &ReloadSubscriber{target: target, onError: onError}
}

func (r *ReloadSubscriber) OnFileChange(change Change) {
	if change.Type == ChangeDeleted {
		return
	}
	if err := r.target.Reload(); err != nil {
		if r.onError != nil {
			r.onError(err)
			return
		}
		log.Printf("Warning: failed to reload %s: %v", change.Path, err)
	}
}
