package pose

// Pose is a named bone buffer with a reference (bind) pose.
// Indices follow the order of the names passed to New.
type Pose struct {
	names     []string
	index     map[string]int
	reference []Transform
	current   []Transform
}

// New creates a pose for the given bones. reference may be shorter than
// names; missing bones use Identity. The current pose starts at reference.
func New(names []string, reference []Transform) *Pose {
	p := &Pose{
		names:     make([]string, len(names)),
		index:     make(map[string]int, len(names)),
		reference: make([]Transform, len(names)),
		current:   make([]Transform, len(names)),
	}
	copy(p.names, names)
	for i, name := range names {
		if _, dup := p.index[name]; !dup {
			p.index[name] = i
		}
		if i < len(reference) {
			p.reference[i] = reference[i]
		} else {
			p.reference[i] = Identity()
		}
	}
	p.ResetToReference()
	return p
}

// NewIdentity creates a pose whose reference is all identity transforms.
func NewIdentity(names []string) *Pose {
	return New(names, nil)
}

// Len returns the number of bones.
func (p *Pose) Len() int {
	return len(p.current)
}

// Name returns the bone name at i, or "" if out of range.
func (p *Pose) Name(i int) string {
	if i < 0 || i >= len(p.names) {
		return ""
	}
	return p.names[i]
}

// IndexOf returns the index of the named bone, or -1.
func (p *Pose) IndexOf(name string) int {
	if i, ok := p.index[name]; ok {
		return i
	}
	return -1
}

// Transform returns the current transform at i. Out-of-range indices
// return Identity.
func (p *Pose) Transform(i int) Transform {
	if i < 0 || i >= len(p.current) {
		return Identity()
	}
	return p.current[i]
}

// SetTransform writes the transform at i. Out-of-range writes are dropped.
func (p *Pose) SetTransform(i int, t Transform) {
	if i < 0 || i >= len(p.current) {
		return
	}
	p.current[i] = t
}

// Reference returns the reference transform at i.
func (p *Pose) Reference(i int) Transform {
	if i < 0 || i >= len(p.reference) {
		return Identity()
	}
	return p.reference[i]
}

// ResetToReference copies the reference pose over the current pose.
func (p *Pose) ResetToReference() {
	copy(p.current, p.reference)
}

// Transforms returns a copy of the current pose.
func (p *Pose) Transforms() []Transform {
	out := make([]Transform, len(p.current))
	copy(out, p.current)
	return out
}
