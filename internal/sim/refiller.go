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
	"time"

	"printservice/internal/clock"
	"printservice/internal/events"
	"printservice/internal/model"
)

// Refiller services refill requests in FIFO order, sleeping
// proportional to the number of pages it restocks.
type Refiller struct {
	params model.SimulationParameters
	state  *RunState
	refill *RefillQueue
	router *events.Router
}

// NewRefiller builds a refiller bound to the shared refill queue.
func NewRefiller(params model.SimulationParameters, state *RunState, refill *RefillQueue, router *events.Router) *Refiller {
	return &Refiller{params: params, state: state, refill: refill, router: router}
}

// Run refills every printer that registers itself as out of paper,
// until the run terminates or a printer has exited on the drain
// condition (no job is then left to need paper).
func (r *Refiller) Run() {
	for {
		if r.waitForWork() {
			return
		}
		r.drainPending()
		if r.state.AllJobsServed() {
			r.refill.Lock()
			r.refill.Broadcast()
			r.refill.Unlock()
			return
		}
	}
}

// waitForWork blocks on refill_needed until there is work, the run is
// terminating, or every printer has finished. It returns true when the
// refiller should exit.
func (r *Refiller) waitForWork() bool {
	r.refill.Lock()
	defer r.refill.Unlock()

	for r.refill.Q.IsEmpty() && !r.state.TerminateNow() && !r.state.AllJobsServed() {
		r.refill.Wait()
	}

	if r.state.TerminateNow() {
		r.refill.Broadcast()
		return true
	}
	return false
}

// drainPending services every printer currently registered in the
// refill queue. The paper-count read and both writes happen under the
// refill-queue lock; the lock is released only for the refill sleep
// itself, so a printer woken early by an unrelated broadcast cannot
// race the restock.
func (r *Refiller) drainPending() {
	r.refill.Lock()
	for {
		printer, ok := r.refill.Q.First()
		if !ok {
			break
		}
		r.refill.Q.Dequeue()

		papersNeeded := printer.Capacity - printer.CurrentPaperCount
		if papersNeeded <= 0 {
			r.refill.Broadcast()
			continue
		}
		r.refill.Unlock()

		elapsed := r.refillOne(printer, papersNeeded)

		r.refill.Lock()
		printer.CurrentPaperCount += papersNeeded
		r.refill.Broadcast()

		r.router.PaperRefillEnd(clock.NowMicros(), printer.ID, papersNeeded, elapsed)
	}
	r.refill.Unlock()
}

// refillOne performs the timed restock of papersNeeded pages and
// returns the elapsed time. The caller owns the paper-count update.
func (r *Refiller) refillOne(printer *model.Printer, papersNeeded int64) int64 {
	timeToRefillUs := int64(float64(papersNeeded) / r.params.RefillRate * 1_000_000)

	start := clock.NowMicros()
	r.router.PaperRefillStart(start, printer.ID, papersNeeded, timeToRefillUs)

	time.Sleep(time.Duration(timeToRefillUs) * time.Microsecond)

	return clock.NowMicros() - start
}
