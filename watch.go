package sdunit

// UnitEvent reports a change to the installed unit file observed by
// WatchUnit.
type UnitEvent struct {
	// Path is the unit file path the event refers to
	Path string
	// Exists reports whether the unit file was present when the event fired
	Exists bool
	// Err carries a watcher error, if any
	Err error
}

// WatchCleanupFunc stops a watch and waits for its resources to be released
type WatchCleanupFunc func() error
