package skeleton

// Registry exposes bone count and names of a skeleton layout.
type Registry interface {
	BoneCount() int
	BoneName(index int) string
}

var _ Registry = (*Topology)(nil)

// Topology is an immutable bone hierarchy with names.
type Topology struct {
	names    []string
	parents  []int
	children [][]int
	index    map[string]int
}

func newTopology(names []string, parents []int) *Topology {
	t := &Topology{
		names:    names,
		parents:  parents,
		children: make([][]int, len(names)),
		index:    make(map[string]int, len(names)),
	}
	for i, name := range names {
		t.index[name] = i
		if p := parents[i]; p >= 0 {
			t.children[p] = append(t.children[p], i)
		}
	}
	return t
}

// BoneCount returns the number of bones.
func (t *Topology) BoneCount() int {
	return len(t.names)
}

// BoneName returns the name of the bone at index, or "" if out of range.
func (t *Topology) BoneName(index int) string {
	if index < 0 || index >= len(t.names) {
		return ""
	}
	return t.names[index]
}

// Lookup returns the index of the named bone.
func (t *Topology) Lookup(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Parent returns the parent index, or -1 for a root or out-of-range index.
func (t *Topology) Parent(index int) int {
	if index < 0 || index >= len(t.parents) {
		return -1
	}
	return t.parents[index]
}

// Children returns the child indices of a bone in ascending order.
func (t *Topology) Children(index int) []int {
	if index < 0 || index >= len(t.children) {
		return nil
	}
	return t.children[index]
}

// Names returns a copy of the bone names in index order.
func (t *Topology) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}
