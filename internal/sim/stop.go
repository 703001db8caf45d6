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

	"printservice/internal/clock"
	"printservice/internal/events"
)

// StopCoordinator implements the external-stop termination path:
// signal delivery or a transport-level stop command both funnel here.
type StopCoordinator struct {
	state  *RunState
	jobs   *JobQueue
	refill *RefillQueue
	router *events.Router

	once sync.Once
}

// NewStopCoordinator builds a coordinator bound to the run's shared state.
func NewStopCoordinator(state *RunState, jobs *JobQueue, refill *RefillQueue, router *events.Router) *StopCoordinator {
	return &StopCoordinator{state: state, jobs: jobs, refill: refill, router: router}
}

// Stop flips the termination flags, emits simulation_stopped, and
// drains the job queue so no job is left stranded. Safe to call from
// any goroutine; only the first call per run has any effect.
func (c *StopCoordinator) Stop() {
	c.once.Do(c.stop)
}

func (c *StopCoordinator) stop() {
	c.state.SetTerminateAndArrived()
	c.router.SimulationStopped(clock.NowMicros())

	c.jobs.Lock()
	for {
		job, ok := c.jobs.Q.Dequeue()
		if !ok {
			break
		}
		now := clock.NowMicros()
		job.QueueDepartureUs = now
		c.router.RemovedJob(now, job)
	}
	c.jobs.Broadcast()
	c.jobs.Unlock()

	c.refill.Lock()
	c.refill.Broadcast()
	c.refill.Unlock()
}
