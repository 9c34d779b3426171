package retarget

import "github.com/Faultbox/handlink/pkg/skeleton"

// Overrides names the destination bone for each source slot. Keys in YAML
// are the source bone names. An empty field leaves the slot unmapped.
type Overrides struct {
	Root      string `yaml:"Root,omitempty"`
	Wrist     string `yaml:"wrist,omitempty"`
	Thumb0    string `yaml:"finger_thumb_0,omitempty"`
	Thumb1    string `yaml:"finger_thumb_1,omitempty"`
	Thumb2    string `yaml:"finger_thumb_2,omitempty"`
	Thumb3    string `yaml:"finger_thumb_end,omitempty"`
	Index0    string `yaml:"finger_index_meta,omitempty"`
	Index1    string `yaml:"finger_index_0,omitempty"`
	Index2    string `yaml:"finger_index_1,omitempty"`
	Index3    string `yaml:"finger_index_2,omitempty"`
	Index4    string `yaml:"finger_index_end,omitempty"`
	Middle0   string `yaml:"finger_middle_meta,omitempty"`
	Middle1   string `yaml:"finger_middle_0,omitempty"`
	Middle2   string `yaml:"finger_middle_1,omitempty"`
	Middle3   string `yaml:"finger_middle_2,omitempty"`
	Middle4   string `yaml:"finger_middle_end,omitempty"`
	Ring0     string `yaml:"finger_ring_meta,omitempty"`
	Ring1     string `yaml:"finger_ring_0,omitempty"`
	Ring2     string `yaml:"finger_ring_1,omitempty"`
	Ring3     string `yaml:"finger_ring_2,omitempty"`
	Ring4     string `yaml:"finger_ring_end,omitempty"`
	Pinky0    string `yaml:"finger_pinky_meta,omitempty"`
	Pinky1    string `yaml:"finger_pinky_0,omitempty"`
	Pinky2    string `yaml:"finger_pinky_1,omitempty"`
	Pinky3    string `yaml:"finger_pinky_2,omitempty"`
	Pinky4    string `yaml:"finger_pinky_end,omitempty"`
	AuxThumb  string `yaml:"finger_thumb_aux,omitempty"`
	AuxIndex  string `yaml:"finger_index_aux,omitempty"`
	AuxMiddle string `yaml:"finger_middle_aux,omitempty"`
	AuxRing   string `yaml:"finger_ring_aux,omitempty"`
	AuxPinky  string `yaml:"finger_pinky_aux,omitempty"`
}

// overrideFields returns the override field for each source slot.
var overrideFields = [skeleton.BoneCount]func(*Overrides) *string{
	skeleton.Root:      func(o *Overrides) *string { return &o.Root },
	skeleton.Wrist:     func(o *Overrides) *string { return &o.Wrist },
	skeleton.Thumb0:    func(o *Overrides) *string { return &o.Thumb0 },
	skeleton.Thumb1:    func(o *Overrides) *string { return &o.Thumb1 },
	skeleton.Thumb2:    func(o *Overrides) *string { return &o.Thumb2 },
	skeleton.Thumb3:    func(o *Overrides) *string { return &o.Thumb3 },
	skeleton.Index0:    func(o *Overrides) *string { return &o.Index0 },
	skeleton.Index1:    func(o *Overrides) *string { return &o.Index1 },
	skeleton.Index2:    func(o *Overrides) *string { return &o.Index2 },
	skeleton.Index3:    func(o *Overrides) *string { return &o.Index3 },
	skeleton.Index4:    func(o *Overrides) *string { return &o.Index4 },
	skeleton.Middle0:   func(o *Overrides) *string { return &o.Middle0 },
	skeleton.Middle1:   func(o *Overrides) *string { return &o.Middle1 },
	skeleton.Middle2:   func(o *Overrides) *string { return &o.Middle2 },
	skeleton.Middle3:   func(o *Overrides) *string { return &o.Middle3 },
	skeleton.Middle4:   func(o *Overrides) *string { return &o.Middle4 },
	skeleton.Ring0:     func(o *Overrides) *string { return &o.Ring0 },
	skeleton.Ring1:     func(o *Overrides) *string { return &o.Ring1 },
	skeleton.Ring2:     func(o *Overrides) *string { return &o.Ring2 },
	skeleton.Ring3:     func(o *Overrides) *string { return &o.Ring3 },
	skeleton.Ring4:     func(o *Overrides) *string { return &o.Ring4 },
	skeleton.Pinky0:    func(o *Overrides) *string { return &o.Pinky0 },
	skeleton.Pinky1:    func(o *Overrides) *string { return &o.Pinky1 },
	skeleton.Pinky2:    func(o *Overrides) *string { return &o.Pinky2 },
	skeleton.Pinky3:    func(o *Overrides) *string { return &o.Pinky3 },
	skeleton.Pinky4:    func(o *Overrides) *string { return &o.Pinky4 },
	skeleton.AuxThumb:  func(o *Overrides) *string { return &o.AuxThumb },
	skeleton.AuxIndex:  func(o *Overrides) *string { return &o.AuxIndex },
	skeleton.AuxMiddle: func(o *Overrides) *string { return &o.AuxMiddle },
	skeleton.AuxRing:   func(o *Overrides) *string { return &o.AuxRing },
	skeleton.AuxPinky:  func(o *Overrides) *string { return &o.AuxPinky },
}

// Field returns a pointer to the override for slot b, or nil if b is not
// a source slot.
func (o *Overrides) Field(b skeleton.Bone) *string {
	if o == nil || !b.Valid() {
		return nil
	}
	return overrideFields[b](o)
}

// Entry pairs a source slot with its destination bone name.
type Entry struct {
	Source      skeleton.Bone
	Destination string
}

// Mapped reports whether the entry names a destination.
func (e Entry) Mapped() bool {
	return e.Destination != ""
}

// BoneMap holds one entry per source slot, in slot order, plus a lookup
// from source bone name to destination name.
type BoneMap struct {
	Entries [skeleton.BoneCount]Entry
	byName  map[string]string
}

// Build returns a bone map for the given overrides. A nil config leaves
// every slot unmapped.
func Build(o *Overrides) *BoneMap {
	m := &BoneMap{byName: make(map[string]string, skeleton.BoneCount)}
	m.Rebuild(o)
	return m
}

// Rebuild clears the map and repopulates it from o.
func (m *BoneMap) Rebuild(o *Overrides) {
	if m.byName == nil {
		m.byName = make(map[string]string, skeleton.BoneCount)
	}
	clear(m.byName)

	for i := range m.Entries {
		b := skeleton.Bone(i)
		e := Entry{Source: b}
		if f := o.Field(b); f != nil {
			e.Destination = *f
		}
		m.Entries[i] = e
		if e.Mapped() {
			m.byName[b.String()] = e.Destination
		}
	}
}

// Destination returns the destination name for slot i, or "" if the slot
// is unmapped or out of range.
func (m *BoneMap) Destination(i int) string {
	if m == nil || i < 0 || i >= len(m.Entries) {
		return ""
	}
	return m.Entries[i].Destination
}

// Lookup returns the destination name mapped from a source bone name.
func (m *BoneMap) Lookup(sourceName string) (string, bool) {
	if m == nil {
		return "", false
	}
	name, ok := m.byName[sourceName]
	return name, ok
}

// Mapped returns the number of slots with a destination.
func (m *BoneMap) Mapped() int {
	if m == nil {
		return 0
	}
	return len(m.byName)
}
