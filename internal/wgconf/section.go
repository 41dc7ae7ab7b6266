package wgconf

// Section is an ordered set of key/value pairs from one INI section.
// Keys iterate in first-insertion order; setting an existing key replaces
// its value without moving it.
type Section struct {
	keys   []string
	values map[string]string
}

// NewSection returns an empty section.
func NewSection() *Section {
	return &Section{values: make(map[string]string)}
}

// Set stores value under key. Empty keys are ignored.
func (s *Section) Set(key, value string) {
	if key == "" {
		return
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value stored under key.
func (s *Section) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

// Value returns the value stored under key, or "" if absent.
func (s *Section) Value(key string) string {
	v, _ := s.Get(key)
	return v
}

// Has reports whether key is present.
func (s *Section) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Keys returns the keys in iteration order.
func (s *Section) Keys() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of keys.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Clone returns an independent copy of the section.
func (s *Section) Clone() *Section {
	c := NewSection()
	if s == nil {
		return c
	}
	for _, k := range s.keys {
		c.Set(k, s.values[k])
	}
	return c
}
