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

package queue

import "container/list"

// TimedQueue wraps Sequence with a bounded capacity and tracks the
// microsecond timestamp of the last mutating operation. Reads
// (Len, IsEmpty, IsFull, First, Find, Each) never update the timestamp.
type TimedQueue[T any] struct {
	seq      *Sequence[T]
	capacity int
	lastUs   int64
	nowUs    func() int64
}

// NewTimedQueue creates a queue bounded at capacity. nowUs supplies the
// current time in microseconds; capacity <= 0 means unbounded (used for
// the refill request queue).
func NewTimedQueue[T any](capacity int, nowUs func() int64) *TimedQueue[T] {
	q := &TimedQueue[T]{
		seq:      NewSequence[T](),
		capacity: capacity,
		nowUs:    nowUs,
	}
	q.lastUs = nowUs()
	return q
}

// Len returns the number of queued elements.
func (q *TimedQueue[T]) Len() int { return q.seq.Len() }

// IsEmpty reports whether the queue is empty.
func (q *TimedQueue[T]) IsEmpty() bool { return q.seq.IsEmpty() }

// IsFull reports whether the queue is at capacity. Always false for an
// unbounded queue (capacity <= 0).
func (q *TimedQueue[T]) IsFull() bool {
	return q.capacity > 0 && q.seq.Len() >= q.capacity
}

// LastInteractionUs returns the timestamp of the last mutation.
func (q *TimedQueue[T]) LastInteractionUs() int64 { return q.lastUs }

func (q *TimedQueue[T]) touch() { q.lastUs = q.nowUs() }

// Enqueue appends v at the tail. Returns false if the queue is full;
// the caller is responsible for deciding the admission policy.
func (q *TimedQueue[T]) Enqueue(v T) bool {
	if q.IsFull() {
		return false
	}
	q.seq.Append(v)
	q.touch()
	return true
}

// EnqueueFront appends v at the head, bypassing the capacity check.
func (q *TimedQueue[T]) EnqueueFront(v T) {
	q.seq.AppendLeft(v)
	q.touch()
}

// Dequeue removes and returns the head element.
func (q *TimedQueue[T]) Dequeue() (T, bool) {
	v, ok := q.seq.PopLeft()
	if ok {
		q.touch()
	}
	return v, ok
}

// DequeueBack removes and returns the tail element.
func (q *TimedQueue[T]) DequeueBack() (T, bool) {
	v, ok := q.seq.Pop()
	if ok {
		q.touch()
	}
	return v, ok
}

// Remove deletes the element identified by e.
func (q *TimedQueue[T]) Remove(e *list.Element) {
	q.seq.Remove(e)
	q.touch()
}

// Clear empties the queue.
func (q *TimedQueue[T]) Clear() {
	q.seq.Clear()
	q.touch()
}

// First returns the head value without removing it.
func (q *TimedQueue[T]) First() (T, bool) { return q.seq.First() }

// Find locates an element by predicate. O(n).
func (q *TimedQueue[T]) Find(eq func(T) bool) *list.Element { return q.seq.Find(eq) }

// Each walks the queue front-to-back without mutating it.
func (q *TimedQueue[T]) Each(f func(T)) { q.seq.Each(f) }
