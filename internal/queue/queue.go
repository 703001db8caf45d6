// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package queue provides an ordered sequence container and a
// time-tracking queue built on top of it. The sequence is a thin
// wrapper over container/list, the same standard container the
// reference architecture reaches for when it needs an ordered,
// identity-addressable log.
package queue

import "container/list"

// Sequence is a doubly-linked ordered collection of T. Every operation
// is O(1) except Find and Clear. The container never inspects or frees
// the payload beyond holding a reference to it.
type Sequence[T any] struct {
	l *list.List
}

// NewSequence creates an empty sequence.
func NewSequence[T any]() *Sequence[T] {
	return &Sequence[T]{l: list.New()}
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int { return s.l.Len() }

// IsEmpty reports whether the sequence has no elements.
func (s *Sequence[T]) IsEmpty() bool { return s.l.Len() == 0 }

// Append inserts v at the tail (right end).
func (s *Sequence[T]) Append(v T) *list.Element { return s.l.PushBack(v) }

// AppendLeft inserts v at the head (left end).
func (s *Sequence[T]) AppendLeft(v T) *list.Element { return s.l.PushFront(v) }

// Pop removes and returns the tail element.
func (s *Sequence[T]) Pop() (T, bool) {
	e := s.l.Back()
	if e == nil {
		var zero T
		return zero, false
	}
	s.l.Remove(e)
	return e.Value.(T), true
}

// PopLeft removes and returns the head element.
func (s *Sequence[T]) PopLeft() (T, bool) {
	e := s.l.Front()
	if e == nil {
		var zero T
		return zero, false
	}
	s.l.Remove(e)
	return e.Value.(T), true
}

// Remove deletes the element identified by e, if it still belongs to
// this sequence.
func (s *Sequence[T]) Remove(e *list.Element) {
	s.l.Remove(e)
}

// Clear empties the sequence.
func (s *Sequence[T]) Clear() {
	s.l.Init()
}

// First returns the head element's value without removing it.
func (s *Sequence[T]) First() (T, bool) {
	e := s.l.Front()
	if e == nil {
		var zero T
		return zero, false
	}
	return e.Value.(T), true
}

// Last returns the tail element's value without removing it.
func (s *Sequence[T]) Last() (T, bool) {
	e := s.l.Back()
	if e == nil {
		var zero T
		return zero, false
	}
	return e.Value.(T), true
}

// Find walks the sequence front-to-back and returns the first element
// whose value satisfies eq, or nil. O(n).
func (s *Sequence[T]) Find(eq func(T) bool) *list.Element {
	for e := s.l.Front(); e != nil; e = e.Next() {
		if eq(e.Value.(T)) {
			return e
		}
	}
	return nil
}

// Each walks the sequence front-to-back, calling f for every value.
func (s *Sequence[T]) Each(f func(T)) {
	for e := s.l.Front(); e != nil; e = e.Next() {
		f(e.Value.(T))
	}
}
