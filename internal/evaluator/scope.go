package evaluator

// Scopes is the stack of lexical frames. Frame 0 is the global scope. A
// frame pushed for a function call is flagged fnRoot: name lookup that
// crosses it falls through directly to the global frame, so a function body
// sees its parameters, its own locals and globals, but never the caller's
// locals. There are no closures.
type Scopes struct {
	frames []frame
}

type frame struct {
	vars   map[string]*Value
	fnRoot bool
}

func NewScopes() *Scopes {
	return &Scopes{frames: []frame{{vars: map[string]*Value{}}}}
}

func (s *Scopes) Push() {
	s.frames = append(s.frames, frame{vars: map[string]*Value{}})
}

func (s *Scopes) PushFnRoot() {
	s.frames = append(s.frames, frame{vars: map[string]*Value{}, fnRoot: true})
}

func (s *Scopes) Pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// PopTo discards frames until depth frames remain.
func (s *Scopes) PopTo(depth int) {
	s.frames = s.frames[:depth]
}

func (s *Scopes) Depth() int {
	return len(s.frames)
}

// Declare binds name in the innermost frame without a value. Reading the
// name before an assignment is a runtime error.
func (s *Scopes) Declare(name string) {
	s.frames[len(s.frames)-1].vars[name] = nil
}

// Bind binds name to v in the innermost frame, shadowing any outer binding.
func (s *Scopes) Bind(name string, v Value) {
	s.frames[len(s.frames)-1].vars[name] = &v
}

// Lookup resolves name from the innermost frame outward. A nil pointer with
// ok means the name is declared but not yet assigned.
func (s *Scopes) Lookup(name string) (*Value, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i].vars[name]; ok {
			return v, true
		}
		if s.frames[i].fnRoot && i > 0 {
			// skip the caller's frames
			i = 1
		}
	}
	return nil, false
}

// Assign overwrites the nearest visible binding of name, following the same
// resolution path as Lookup. It reports whether a binding was found.
func (s *Scopes) Assign(name string, v Value) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, ok := s.frames[i].vars[name]; ok {
			s.frames[i].vars[name] = &v
			return true
		}
		if s.frames[i].fnRoot && i > 0 {
			i = 1
		}
	}
	return false
}

// EachValue visits every assigned value in every frame. Used to gather the
// collector's root set.
func (s *Scopes) EachValue(fn func(Value)) {
	for _, f := range s.frames {
		for _, v := range f.vars {
			if v != nil {
				fn(*v)
			}
		}
	}
}
