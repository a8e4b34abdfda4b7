package object

// Scope is an unordered mapping from identifier strings to Handles.
// Unlike a lexically-chained environment, a Scope does not chain to an
// enclosing scope: lookups only ever see bindings set directly on it.
type Scope struct {
	values map[string]Handle
}

// NewScope returns a fresh, empty scope — created on every function or
// method entry lifecycle.
func NewScope() *Scope {
	return &Scope{values: make(map[string]Handle)}
}

// Get looks up name in this scope only.
func (s *Scope) Get(name string) (Handle, bool) {
	h, ok := s.values[name]
	return h, ok
}

// Set binds name to h, overwriting any existing binding.
func (s *Scope) Set(name string, h Handle) {
	s.values[name] = h
}

// Has reports whether name is bound in this scope.
func (s *Scope) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}
