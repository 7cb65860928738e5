package requestlog

// Logger is the minimal interface for recording request entries.
type Logger interface {
	Log(entry *Entry)
}

// Store defines the interface for request history storage.
// Store embeds Logger, so any Store implementation can be used where Logger is expected.
type Store interface {
	Logger

	// List returns all entries, oldest first.
	List() []Entry

	// Tail returns the newest n entries, oldest first.
	// A non-positive n returns all entries.
	Tail(n int) []Entry

	// Count returns the number of entries.
	Count() int
}
