// Package control holds the small view-state primitives pages are built on:
// single-choice selectors, toggle lists and clamped sliders. None of them
// lock; the owning session serialises access.
package control

import "slices"

// Keyed is an option that can be looked up by key.
type Keyed[K comparable] interface {
	Key() K
}

// Selector holds a fixed option set and exactly one selected option.
type Selector[K comparable, T Keyed[K]] struct {
	options  []T
	index    map[K]int
	selected int
}

// NewSelector builds a selector over options with the first one selected.
// It panics on an empty option set.
func NewSelector[K comparable, T Keyed[K]](options []T) *Selector[K, T] {
	if len(options) == 0 {
		panic("control: selector needs at least one option")
	}
	index := make(map[K]int, len(options))
	for i, o := range options {
		if _, seen := index[o.Key()]; !seen {
			index[o.Key()] = i
		}
	}
	return &Selector[K, T]{options: slices.Clone(options), index: index}
}

// Select makes the option with key k current. An unknown key leaves the
// selection unchanged and returns false.
func (s *Selector[K, T]) Select(k K) bool {
	i, ok := s.index[k]
	if !ok {
		return false
	}
	s.selected = i
	return true
}

// Selected returns the current option.
func (s *Selector[K, T]) Selected() T {
	return s.options[s.selected]
}

// Options returns a copy of the option set in display order.
func (s *Selector[K, T]) Options() []T {
	return slices.Clone(s.options)
}
