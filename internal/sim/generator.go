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
	"math/rand"
	"time"

	"printservice/internal/clock"
	"printservice/internal/events"
	"printservice/internal/model"
)

// Generator produces num_jobs jobs spaced by job_arrival_time_us,
// dropping a job on arrival if the job queue is at capacity.
type Generator struct {
	params model.SimulationParameters
	state  *RunState
	jobs   *JobQueue
	router *events.Router
	rng    *rand.Rand
}

// NewGenerator builds a generator seeded from rng. Passing a
// deterministically-seeded rng makes the papers-required sequence
// reproducible.
func NewGenerator(params model.SimulationParameters, state *RunState, jobs *JobQueue, router *events.Router, rng *rand.Rand) *Generator {
	return &Generator{params: params, state: state, jobs: jobs, router: router, rng: rng}
}

// papersRequired draws a value uniformly from the configured bounds.
func (g *Generator) papersRequired() int64 {
	lo, hi := g.params.PapersRequiredLowerBound, g.params.PapersRequiredUpperBound
	if lo == hi {
		return lo
	}
	return lo + g.rng.Int63n(hi-lo+1)
}

// Run generates jobs until num_jobs have been attempted or the run is
// asked to terminate, then marks generation complete and exits.
func (g *Generator) Run() {
	var id int64
	for i := 0; i < g.params.NumJobs; i++ {
		if g.state.TerminateNow() {
			g.finish()
			return
		}

		id++
		job := &model.Job{
			ID:                 id,
			InterArrivalTimeUs: g.params.JobArrivalTimeUs,
			PapersRequired:     g.papersRequired(),
		}

		time.Sleep(time.Duration(g.params.JobArrivalTimeUs) * time.Microsecond)

		if g.state.TerminateNow() {
			g.finish()
			return
		}

		g.admit(job)
	}
	g.finish()
}

func (g *Generator) admit(job *model.Job) {
	g.jobs.Lock()
	defer g.jobs.Unlock()

	now := clock.NowMicros()
	if g.jobs.Q.IsFull() {
		g.router.DroppedJob(now, job)
		return
	}

	priorLen := g.jobs.Q.Len()
	priorLastUs := g.jobs.Q.LastInteractionUs()

	job.SystemArrivalUs = now
	job.QueueArrivalUs = now
	g.jobs.Q.Enqueue(job)

	g.router.SystemArrival(now, job)
	g.router.QueueArrival(now, priorLastUs, priorLen, g.jobs.Q.Len(), job)
	g.jobs.Broadcast()
}

func (g *Generator) finish() {
	g.state.SetAllJobsArrived()
	g.jobs.Lock()
	g.jobs.Broadcast()
	g.jobs.Unlock()
}
