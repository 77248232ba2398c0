// Package notify provides change-notifying settings.
//
// A Setting wraps a single comparable value. Assigning the value it already
// holds does nothing; assigning a different value stores it and calls every
// subscriber synchronously before Set returns. Settings are not safe for
// concurrent use; the owner serializes access.
package notify

// Change describes a single value transition of a Setting.
type Change[T comparable] struct {
	// Name is the setting name given at construction.
	Name string

	// Old is the value held before the transition.
	Old T

	// New is the value held after the transition.
	New T
}

// Observer is called once per value transition.
type Observer[T comparable] func(change Change[T])

type subscription[T comparable] struct {
	id       uint64
	observer Observer[T]
}

// Setting holds a value and the observers interested in its transitions.
type Setting[T comparable] struct {
	name   string
	value  T
	subs   []subscription[T]
	nextID uint64
}

// NewSetting creates a setting holding initial.
func NewSetting[T comparable](name string, initial T) *Setting[T] {
	return &Setting[T]{name: name, value: initial}
}

// Name returns the setting name.
func (s *Setting[T]) Name() string {
	return s.name
}

// Get returns the current value.
func (s *Setting[T]) Get() T {
	return s.value
}

// Set stores v and notifies subscribers when v differs from the current
// value. It reports whether the value changed.
func (s *Setting[T]) Set(v T) bool {
	if s.value == v {
		return false
	}
	old := s.value
	s.value = v

	// Observers may subscribe or cancel while being notified.
	subs := make([]subscription[T], len(s.subs))
	copy(subs, s.subs)

	change := Change[T]{Name: s.name, Old: old, New: v}
	for _, sub := range subs {
		sub.observer(change)
	}
	return true
}

// Subscribe registers observer for future transitions and returns a function
// that removes it. Calling the returned function more than once is harmless.
func (s *Setting[T]) Subscribe(observer Observer[T]) (cancel func()) {
	if observer == nil {
		return func() {}
	}
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription[T]{id: id, observer: observer})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of registered observers.
func (s *Setting[T]) Subscribers() int {
	return len(s.subs)
}
