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

// PrinterWorker drains the job queue, requesting a refill whenever the
// head job needs more paper than the printer currently holds.
type PrinterWorker struct {
	printer *model.Printer
	params  model.SimulationParameters
	state   *RunState
	jobs    *JobQueue
	refill  *RefillQueue
	router  *events.Router
}

// NewPrinterWorker builds a worker bound to printer (ID 1 or 2).
func NewPrinterWorker(printer *model.Printer, params model.SimulationParameters, state *RunState, jobs *JobQueue, refill *RefillQueue, router *events.Router) *PrinterWorker {
	return &PrinterWorker{printer: printer, params: params, state: state, jobs: jobs, refill: refill, router: router}
}

func (p *PrinterWorker) printerIdx() int { return p.printer.ID - 1 }

// Run executes the printer's loop until termination or drain, then
// marks the printer done and wakes the refiller so it can observe the
// completion condition.
func (p *PrinterWorker) Run() {
	for {
		if p.step() {
			break
		}
	}

	p.state.SetAllJobsServed()
	p.refill.Lock()
	p.refill.Broadcast()
	p.refill.Unlock()
}

// step performs one iteration of the printer loop. It returns true
// when the printer should exit.
func (p *PrinterWorker) step() bool {
	p.jobs.Lock()

	for p.jobs.Q.IsEmpty() && !p.state.TerminateNow() && !p.state.AllJobsArrived() {
		p.jobs.Wait()
	}

	if p.state.TerminateNow() {
		p.drainLocked()
		p.jobs.Unlock()
		return true
	}

	if p.state.AllJobsArrived() && p.jobs.Q.IsEmpty() {
		p.jobs.Unlock()
		return true
	}

	head, ok := p.jobs.Q.First()
	if !ok {
		p.jobs.Unlock()
		return false
	}

	if head.PapersRequired > p.printer.CurrentPaperCount {
		p.jobs.Unlock()
		p.requestRefill()
		return false
	}

	p.service()
	return false
}

// drainLocked discards every remaining job with a removed_job event.
// The caller must hold the job-queue lock.
func (p *PrinterWorker) drainLocked() {
	for {
		job, ok := p.jobs.Q.Dequeue()
		if !ok {
			break
		}
		now := clock.NowMicros()
		job.QueueDepartureUs = now
		p.router.RemovedJob(now, job)
	}
}

// requestRefill releases the job-queue lock (already released by the
// caller) before acquiring the refill-queue lock, per the fixed lock
// order: a printer never holds both locks at once. A broadcast meant
// for the other printer can wake this one while its own request is
// still pending, so the request is only enqueued if absent: a printer
// appears in the refill queue at most once.
func (p *PrinterWorker) requestRefill() {
	p.refill.Lock()
	self := p.printer
	if p.refill.Q.Find(func(pr *model.Printer) bool { return pr == self }) == nil {
		now := clock.NowMicros()
		p.router.PaperEmpty(now, p.printer.ID)
		p.refill.Q.Enqueue(p.printer)
		p.refill.Broadcast()
	}

	waitStart := clock.NowMicros()
	p.refill.Wait()
	elapsed := clock.NowMicros() - waitStart
	p.refill.Unlock()

	p.router.PaperEmptyResume(p.printerIdx(), elapsed)
}

// service dequeues the head job, services it, and accounts the
// completion. The caller must hold the job-queue lock; service
// releases it before sleeping.
func (p *PrinterWorker) service() {
	priorLen := p.jobs.Q.Len()
	priorLastUs := p.jobs.Q.LastInteractionUs()
	job, _ := p.jobs.Q.Dequeue()

	now := clock.NowMicros()
	job.QueueDepartureUs = now
	p.router.QueueDeparture(now, priorLastUs, priorLen, p.jobs.Q.Len(), job)
	p.jobs.Unlock()

	job.ServiceTimeRequestMs = int64(float64(job.PapersRequired) / p.params.PrintingRate * 1000)
	job.ServiceArrivalUs = clock.NowMicros()
	p.router.PrinterArrival(job.ServiceArrivalUs, job, p.printer.ID)

	time.Sleep(time.Duration(job.ServiceTimeRequestMs) * time.Millisecond)

	// CurrentPaperCount is only ever written under the refill-queue
	// lock; the refiller can be restocking this printer concurrently.
	p.refill.Lock()
	p.printer.CurrentPaperCount -= job.PapersRequired
	p.refill.Unlock()
	p.printer.TotalPapersUsed += job.PapersRequired
	p.printer.JobsPrintedCount++

	job.ServiceDepartUs = clock.NowMicros()
	p.router.SystemDeparture(job.ServiceDepartUs, job, p.printer.ID)
}
