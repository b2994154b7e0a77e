// Package pantry tracks which ingredients a user has on hand. Each name is
// either available (owned), unavailable (needed), or unset; the two sets are
// always disjoint.
package pantry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/maibrennan/larder/internal/text"
)

// ErrContractViolation reports an ingredient found in both sets at once.
// That can only happen through caller misuse (e.g. hand-edited state), so it
// is surfaced rather than silently repaired; repairing it would mask a
// data-integrity bug upstream.
var ErrContractViolation = errors.New("pantry: ingredient present in both available and unavailable sets")

// Status is the availability of one ingredient name.
type Status string

const (
	StatusUnset       Status = "unset"
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

// State holds one user's availability sets, keyed by normalized ingredient
// name. Mutate it only through Toggle and ClearAll.
type State struct {
	Available   map[string]struct{}
	Unavailable map[string]struct{}
}

// NewState returns an empty State.
func NewState() *State {
	return &State{
		Available:   make(map[string]struct{}),
		Unavailable: make(map[string]struct{}),
	}
}

// FromNames builds a State from two name lists, normalizing each name.
// It fails with ErrContractViolation if any name lands in both sets.
func FromNames(available, unavailable []string) (*State, error) {
	s := NewState()
	for _, n := range available {
		if key := text.Normalize(n); key != "" {
			s.Available[key] = struct{}{}
		}
	}
	for _, n := range unavailable {
		if key := text.Normalize(n); key != "" {
			s.Unavailable[key] = struct{}{}
		}
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

// check verifies the disjointness invariant.
func (s *State) check() error {
	for n := range s.Available {
		if _, dup := s.Unavailable[n]; dup {
			return fmt.Errorf("%w: %q", ErrContractViolation, n)
		}
	}
	return nil
}

// Status reports where a name currently sits.
func (s *State) Status(name string) Status {
	key := text.Normalize(name)
	if _, ok := s.Available[key]; ok {
		return StatusAvailable
	}
	if _, ok := s.Unavailable[key]; ok {
		return StatusUnavailable
	}
	return StatusUnset
}

// Toggle flips one ingredient: available becomes unavailable (needed), and
// unavailable or unset becomes available; the first toggle of a new name
// always marks it owned. The name is removed from whichever set held it
// before being added to the other, so the sets stay disjoint. Toggle
// returns the complete new pair of sets, never a diff, so the caller can
// persist the transition as one atomic write. It fails with
// ErrContractViolation when the incoming state already holds the name in
// both sets.
func (s *State) Toggle(name string) (available, unavailable []string, err error) {
	key := text.Normalize(name)
	if key == "" {
		available, unavailable = s.Names()
		return available, unavailable, nil
	}

	_, inAvail := s.Available[key]
	_, inUnavail := s.Unavailable[key]
	if inAvail && inUnavail {
		return nil, nil, fmt.Errorf("%w: %q", ErrContractViolation, key)
	}

	if inAvail {
		delete(s.Available, key)
		s.Unavailable[key] = struct{}{}
	} else {
		delete(s.Unavailable, key)
		s.Available[key] = struct{}{}
	}
	available, unavailable = s.Names()
	return available, unavailable, nil
}

// ClearAll resets both sets. This is a terminal reset, not a transition.
func (s *State) ClearAll() {
	s.Available = make(map[string]struct{})
	s.Unavailable = make(map[string]struct{})
}

// Names returns both sets as sorted slices.
func (s *State) Names() (available, unavailable []string) {
	available = make([]string, 0, len(s.Available))
	for n := range s.Available {
		available = append(available, n)
	}
	unavailable = make([]string, 0, len(s.Unavailable))
	for n := range s.Unavailable {
		unavailable = append(unavailable, n)
	}
	sort.Strings(available)
	sort.Strings(unavailable)
	return available, unavailable
}
