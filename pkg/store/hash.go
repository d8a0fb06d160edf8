package store

// HashMap is a Store backed by a plain Go map. It is the fastest backend and
// the default choice when iteration order does not matter (it never does for
// rule resolution).
type HashMap struct {
	entries map[string]string
}

// NewHashMap creates an empty hash map store.
func NewHashMap() *HashMap {
	return &HashMap{entries: make(map[string]string)}
}

func (m *HashMap) Get(token string) (string, bool) {
	v, ok := m.entries[token]
	return v, ok
}

func (m *HashMap) Put(token, value string) {
	m.entries[token] = value
}

func (m *HashMap) Len() int {
	return len(m.entries)
}
