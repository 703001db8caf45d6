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

package events

import (
	"strings"
	"testing"

	"printservice/internal/model"
	"printservice/internal/stats"
)

type captureSink struct {
	lines []string
}

func (c *captureSink) Log(line string)                { c.lines = append(c.lines, line) }
func (c *captureSink) Params(params map[string]any)   {}
func (c *captureSink) Statistics(data map[string]any) {}

func TestRouter_TraceLinesAreRelativeToSimulationStart(t *testing.T) {
	sink := &captureSink{}
	r := NewRouter(sink, stats.New())

	r.SimulationStart(5_000_000)
	job := &model.Job{ID: 1, PapersRequired: 3, InterArrivalTimeUs: 0, SystemArrivalUs: 5_000_000, QueueArrivalUs: 5_000_000}
	r.SystemArrival(5_000_000, job)

	if len(sink.lines) != 2 {
		t.Fatalf("expected 2 trace lines, got %d: %v", len(sink.lines), sink.lines)
	}
	if !strings.HasPrefix(sink.lines[1], "00000000.000ms: ") {
		t.Fatalf("expected the arrival line to be relative to simulation start, got %q", sink.lines[1])
	}
	if !strings.Contains(sink.lines[1], "job1 arrives, needs 3 papers") {
		t.Fatalf("expected pluralized paper count, got %q", sink.lines[1])
	}
}

func TestRouter_SingularPaperWording(t *testing.T) {
	sink := &captureSink{}
	r := NewRouter(sink, stats.New())
	r.SimulationStart(0)
	job := &model.Job{ID: 2, PapersRequired: 1}
	r.SystemArrival(0, job)
	if !strings.Contains(sink.lines[1], "needs 1 paper,") {
		t.Fatalf("expected singular wording for one page, got %q", sink.lines[1])
	}
}

func TestRouter_DroppedJobAccountsArrivalAndDrop(t *testing.T) {
	s := stats.New()
	sink := &captureSink{}
	r := NewRouter(sink, s)
	r.SimulationStart(0)

	job := &model.Job{ID: 3, PapersRequired: 4, InterArrivalTimeUs: 1000}
	r.DroppedJob(0, job)

	snap := s.Snapshot()
	if snap.TotalJobsArrived != 1 || snap.TotalJobsDropped != 1 {
		t.Fatalf("expected a dropped job to count as both arrived and dropped, got %+v", snap)
	}
	if !strings.HasSuffix(strings.TrimSpace(sink.lines[1]), "dropped") {
		t.Fatalf("expected the dropped line to end with 'dropped', got %q", sink.lines[1])
	}
}

func TestRouter_SystemDepartureUpdatesPerPrinterStats(t *testing.T) {
	s := stats.New()
	sink := &captureSink{}
	r := NewRouter(sink, s)
	r.SimulationStart(0)

	job := &model.Job{
		ID:               4,
		PapersRequired:   6,
		SystemArrivalUs:  0,
		QueueArrivalUs:   0,
		QueueDepartureUs: 1000,
		ServiceArrivalUs: 1000,
		ServiceDepartUs:  5000,
	}
	r.SystemDeparture(5000, job, 2)

	snap := s.Snapshot()
	if snap.TotalJobsServed != 1 || snap.JobsServedByPrinter[1] != 1 {
		t.Fatalf("expected printer2 to be credited with the served job, got %+v", snap)
	}
	if snap.PrinterPaperUsed[1] != 6 {
		t.Fatalf("expected printer2 paper_used accounting to come from system_departure, got %+v", snap)
	}
}
