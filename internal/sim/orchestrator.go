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
	"sync"
	"time"

	"printservice/internal/clock"
	"printservice/internal/events"
	"printservice/internal/model"
	"printservice/internal/stats"
)

// Simulation wires the shared state, queues, and workers together for
// exactly one run. It is not reused across runs: NewSimulation
// constructs the state, and Run starts the workers, joins them in
// order, and emits final statistics.
type Simulation struct {
	params   model.SimulationParameters
	state    *RunState
	jobs     *JobQueue
	refillQ  *RefillQueue
	statsAgg *stats.Stats
	router   *events.Router
	printers [2]*model.Printer
	stop     *StopCoordinator
}

// NewSimulation builds a simulation bound to params, emitting events
// through sink.
func NewSimulation(params model.SimulationParameters, sink events.Sink) *Simulation {
	st := stats.New()
	router := events.NewRouter(sink, st)
	state := &RunState{}
	jobs := NewJobQueue(params.QueueCapacity, clock.NowMicros)
	refillQ := NewRefillQueue(clock.NowMicros)

	printers := [2]*model.Printer{
		{ID: 1, CurrentPaperCount: params.PrinterPaperCapacity, Capacity: params.PrinterPaperCapacity},
		{ID: 2, CurrentPaperCount: params.PrinterPaperCapacity, Capacity: params.PrinterPaperCapacity},
	}

	return &Simulation{
		params:   params,
		state:    state,
		jobs:     jobs,
		refillQ:  refillQ,
		statsAgg: st,
		router:   router,
		printers: printers,
		stop:     NewStopCoordinator(state, jobs, refillQ, router),
	}
}

// Stop invokes the stop coordinator. Safe to call once, from any
// goroutine, while Run is in progress.
func (s *Simulation) Stop() {
	s.stop.Stop()
}

// Stats returns the run's statistics aggregator, for a telemetry
// collector to scrape independently of Run's final snapshot.
func (s *Simulation) Stats() *stats.Stats {
	return s.statsAgg
}

// Printers returns the run's two printer records. Safe to read after
// Run has returned; the workers that owned them have exited by then.
func (s *Simulation) Printers() [2]*model.Printer {
	return s.printers
}

// Run executes the full lifecycle synchronously and returns the final
// statistics snapshot. It blocks until the generator, both printers,
// and the refiller have all exited.
func (s *Simulation) Run() stats.Snapshot {
	clock.Reset()
	start := clock.NowMicros()

	s.router.SimulationParameters(s.params)
	s.router.SimulationStart(start)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	generator := NewGenerator(s.params, s.state, s.jobs, s.router, rng)
	refiller := NewRefiller(s.params, s.state, s.refillQ, s.router)
	printer1 := NewPrinterWorker(s.printers[0], s.params, s.state, s.jobs, s.refillQ, s.router)
	printer2 := NewPrinterWorker(s.printers[1], s.params, s.state, s.jobs, s.refillQ, s.router)

	var printers sync.WaitGroup
	printers.Add(2)
	go func() { defer printers.Done(); printer1.Run() }()
	go func() { defer printers.Done(); printer2.Run() }()

	var refillerDone sync.WaitGroup
	refillerDone.Add(1)
	go func() { defer refillerDone.Done(); refiller.Run() }()

	generator.Run()

	printers.Wait()
	refillerDone.Wait()

	// The stop coordinator already emitted simulation_stopped and set
	// the end timestamp; only emit the natural-completion line when no
	// external stop occurred.
	if !s.state.TerminateNow() {
		s.router.SimulationEnd(clock.NowMicros())
	}

	snap := s.statsAgg.Snapshot()
	s.router.Statistics(snap)
	return snap
}
