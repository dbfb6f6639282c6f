package scenario

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/slotpool/slots"
)

// Op names a step operation.
type Op string

const (
	OpAlloc   Op = "alloc"
	OpRelease Op = "release"
)

// PickOldest releases the live allocation made the longest time ago.
const PickOldest = "oldest"

// Script is a named sequence of steps against one pool.
type Script struct {
	Name string `yaml:"name"`
	// Capacity is the length of the pool's backing block. Pools use at most
	// 255 slots, and blocks are never sized past 256 elements.
	Capacity int    `yaml:"capacity"`
	Steps    []Step `yaml:"steps"`
}

// Step is one operation. Alloc steps use Value and the Expect fields; release
// steps use Slot or Pick.
type Step struct {
	Op    Op    `yaml:"op"`
	Value int64 `yaml:"value,omitempty"`

	Slot *int   `yaml:"slot,omitempty"`
	Pick string `yaml:"pick,omitempty"`

	ExpectSlot      *int `yaml:"expect_slot,omitempty"`
	ExpectExhausted bool `yaml:"expect_exhausted,omitempty"`

	// Repeat runs the step this many times; zero means once.
	Repeat int `yaml:"repeat,omitempty"`
}

// Parse decodes and validates a YAML script.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the script for steps that could never run.
func (s *Script) Validate() error {
	if s.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidScript, s.Capacity)
	}
	capacity := int(slots.Capacity(s.Capacity))
	for i, st := range s.Steps {
		if st.Repeat < 0 {
			return fmt.Errorf("%w: step %d: negative repeat", ErrInvalidScript, i)
		}
		switch st.Op {
		case OpAlloc:
			if st.Slot != nil || st.Pick != "" {
				return fmt.Errorf("%w: step %d: alloc takes no slot or pick", ErrInvalidScript, i)
			}
			if st.ExpectSlot != nil && (*st.ExpectSlot < 0 || *st.ExpectSlot >= capacity) {
				return fmt.Errorf("%w: step %d: expected slot %d outside capacity %d", ErrInvalidScript, i, *st.ExpectSlot, capacity)
			}
			if st.ExpectSlot != nil && st.ExpectExhausted {
				return fmt.Errorf("%w: step %d: cannot expect both a slot and exhaustion", ErrInvalidScript, i)
			}
		case OpRelease:
			if (st.Slot == nil) == (st.Pick == "") {
				return fmt.Errorf("%w: step %d: release needs exactly one of slot or pick", ErrInvalidScript, i)
			}
			if st.Pick != "" && st.Pick != PickOldest {
				return fmt.Errorf("%w: step %d: unknown pick %q", ErrInvalidScript, i, st.Pick)
			}
			if st.Slot != nil && (*st.Slot < 0 || *st.Slot >= capacity) {
				return fmt.Errorf("%w: step %d: slot %d outside capacity %d", ErrInvalidScript, i, *st.Slot, capacity)
			}
		default:
			return fmt.Errorf("%w: step %d: unknown op %q", ErrInvalidScript, i, st.Op)
		}
	}
	return nil
}
