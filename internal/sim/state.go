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

// Package sim implements the concurrency core: the job generator, the
// two printer workers, the refiller, the stop coordinator, and the
// shared state and queues that bind them together.
package sim

import "sync"

// RunState holds the three flags shared by every worker, guarded by a
// single lock that is always the innermost one: it may be taken while
// a queue lock is held, and it is released before any other lock is
// taken.
type RunState struct {
	mu sync.Mutex

	terminateNow   bool
	allJobsArrived bool
	allJobsServed  bool
}

// TerminateNow reports whether the run has been told to stop.
func (s *RunState) TerminateNow() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.terminateNow
}

// SetTerminateNow flips the stop flag.
func (s *RunState) SetTerminateNow() {
	s.mu.Lock()
	s.terminateNow = true
	s.mu.Unlock()
}

// AllJobsArrived reports whether the generator has finished producing.
func (s *RunState) AllJobsArrived() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allJobsArrived
}

// SetAllJobsArrived marks generation as complete.
func (s *RunState) SetAllJobsArrived() {
	s.mu.Lock()
	s.allJobsArrived = true
	s.mu.Unlock()
}

// AllJobsServed reports whether a printer has observed the drain (or
// terminate) condition and exited; each printer sets it on exit, so the
// first one to leave sets it.
func (s *RunState) AllJobsServed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allJobsServed
}

// SetAllJobsServed marks the drain as complete.
func (s *RunState) SetAllJobsServed() {
	s.mu.Lock()
	s.allJobsServed = true
	s.mu.Unlock()
}

// SetTerminateAndArrived is the stop coordinator's first action: both
// flags flip together under one critical section.
func (s *RunState) SetTerminateAndArrived() {
	s.mu.Lock()
	s.terminateNow = true
	s.allJobsArrived = true
	s.mu.Unlock()
}
