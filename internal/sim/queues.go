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

package sim

import (
	"sync"

	"printservice/internal/model"
	"printservice/internal/queue"
)

// JobQueue pairs the bounded timed queue of jobs with the lock and
// condition variable that guard it. Callers take Lock/Unlock around
// any access to Q and call Wait/Broadcast only while holding the lock,
// the same discipline as the one sync.Cond usage found in this
// codebase's lineage.
type JobQueue struct {
	mu   sync.Mutex
	cond *sync.Cond

	Q *queue.TimedQueue[*model.Job]
}

// NewJobQueue builds a job queue bounded at capacity.
func NewJobQueue(capacity int, nowUs func() int64) *JobQueue {
	jq := &JobQueue{Q: queue.NewTimedQueue[*model.Job](capacity, nowUs)}
	jq.cond = sync.NewCond(&jq.mu)
	return jq
}

// Lock acquires job_queue_lock.
func (jq *JobQueue) Lock() { jq.mu.Lock() }

// Unlock releases job_queue_lock.
func (jq *JobQueue) Unlock() { jq.mu.Unlock() }

// Wait blocks on job_queue_not_empty. The caller must hold the lock.
func (jq *JobQueue) Wait() { jq.cond.Wait() }

// Broadcast wakes every waiter on job_queue_not_empty. The caller must
// hold the lock.
func (jq *JobQueue) Broadcast() { jq.cond.Broadcast() }

// RefillQueue pairs the unbounded timed queue of printers awaiting
// refill with the lock and condition variable that guard it, plus the
// printers' current_paper_count (mutated here, under this lock).
type RefillQueue struct {
	mu   sync.Mutex
	cond *sync.Cond

	Q *queue.TimedQueue[*model.Printer]
}

// NewRefillQueue builds an unbounded refill-request queue.
func NewRefillQueue(nowUs func() int64) *RefillQueue {
	rq := &RefillQueue{Q: queue.NewTimedQueue[*model.Printer](0, nowUs)}
	rq.cond = sync.NewCond(&rq.mu)
	return rq
}

// Lock acquires refill_queue_lock.
func (rq *RefillQueue) Lock() { rq.mu.Lock() }

// Unlock releases refill_queue_lock.
func (rq *RefillQueue) Unlock() { rq.mu.Unlock() }

// Wait blocks on refill_needed. The caller must hold the lock.
func (rq *RefillQueue) Wait() { rq.cond.Wait() }

// Broadcast wakes every waiter on refill_needed. The caller must hold
// the lock.
func (rq *RefillQueue) Broadcast() { rq.cond.Broadcast() }
