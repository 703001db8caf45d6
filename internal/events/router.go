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
	"fmt"

	"printservice/internal/clock"
	"printservice/internal/model"
	"printservice/internal/stats"
)

// Router is the single place that both formats a trace line and
// updates the statistics aggregator for a given lifecycle event. It
// holds the reference start time so every trace line can be printed
// relative to it.
type Router struct {
	sink  Sink
	stats *stats.Stats

	referenceStartUs int64
}

// NewRouter builds a router bound to sink and stats.
func NewRouter(sink Sink, s *stats.Stats) *Router {
	return &Router{sink: sink, stats: s}
}

func (r *Router) prefix(nowUs int64) string {
	rel := nowUs - r.referenceStartUs
	ms, us := clock.SplitMillis(rel)
	return fmt.Sprintf("%08d.%03dms: ", ms, us)
}

func (r *Router) logf(nowUs int64, format string, args ...any) {
	r.sink.Log(r.prefix(nowUs) + fmt.Sprintf(format, args...))
}

// SimulationParameters emits the one-time parameter dump.
func (r *Router) SimulationParameters(p model.SimulationParameters) {
	r.sink.Params(map[string]any{
		"num_jobs":                    p.NumJobs,
		"job_arrival_time_us":         p.JobArrivalTimeUs,
		"papers_required_lower_bound": p.PapersRequiredLowerBound,
		"papers_required_upper_bound": p.PapersRequiredUpperBound,
		"queue_capacity":              p.QueueCapacity,
		"printing_rate":               p.PrintingRate,
		"printer_paper_capacity":      p.PrinterPaperCapacity,
		"refill_rate":                 p.RefillRate,
	})
}

// SimulationStart pins the reference time and emits "simulation begins".
func (r *Router) SimulationStart(nowUs int64) {
	r.referenceStartUs = nowUs
	r.stats.SetSimulationStart(nowUs)
	r.logf(nowUs, "simulation begins")
}

// SimulationEnd emits "simulation ends" with the relative duration.
func (r *Router) SimulationEnd(nowUs int64) {
	r.stats.SetSimulationEnd(nowUs)
	ms, us := clock.SplitMillis(nowUs - r.referenceStartUs)
	r.logf(nowUs, "simulation ends, duration = %d.%03dms", ms, us)
}

// SimulationStopped emits "simulation stopped" with the relative
// duration, for the external-stop termination path.
func (r *Router) SimulationStopped(nowUs int64) {
	r.stats.SetSimulationEnd(nowUs)
	ms, us := clock.SplitMillis(nowUs - r.referenceStartUs)
	r.logf(nowUs, "simulation stopped, duration = %d.%03dms", ms, us)
}

func pluralPapers(n int64) string {
	if n == 1 {
		return "paper"
	}
	return "papers"
}

// SystemArrival emits the arrival line for an admitted job and
// accounts it in total_jobs_arrived / inter-arrival time.
func (r *Router) SystemArrival(nowUs int64, job *model.Job) {
	r.stats.RecordArrival(job.InterArrivalTimeUs)
	ms, us := clock.SplitMillis(job.InterArrivalTimeUs)
	r.logf(nowUs, "job%d arrives, needs %d %s, inter-arrival time = %d.%03dms",
		job.ID, job.PapersRequired, pluralPapers(job.PapersRequired), ms, us)
}

// DroppedJob emits the arrival line for a job denied admission,
// accounting it as both arrived and dropped.
func (r *Router) DroppedJob(nowUs int64, job *model.Job) {
	r.stats.RecordArrival(job.InterArrivalTimeUs)
	r.stats.RecordDrop()
	ms, us := clock.SplitMillis(job.InterArrivalTimeUs)
	r.logf(nowUs, "job%d arrives, needs %d %s, inter-arrival time = %d.%03dms, dropped",
		job.ID, job.PapersRequired, pluralPapers(job.PapersRequired), ms, us)
}

// QueueArrival emits the enqueue line. priorLastInteractionUs/priorLen
// describe the queue immediately before this enqueue.
func (r *Router) QueueArrival(nowUs, priorLastInteractionUs int64, priorLen, newLen int, job *model.Job) {
	r.stats.RecordQueueLength(nowUs, priorLastInteractionUs, priorLen, newLen)
	r.logf(nowUs, "job%d enters queue, queue length = %d", job.ID, newLen)
}

// QueueDeparture emits the dequeue line. priorLastInteractionUs/priorLen
// describe the queue immediately before this dequeue.
func (r *Router) QueueDeparture(nowUs, priorLastInteractionUs int64, priorLen, newLen int, job *model.Job) {
	r.stats.RecordQueueLength(nowUs, priorLastInteractionUs, priorLen, newLen)
	waitUs := job.QueueDepartureUs - job.QueueArrivalUs
	ms, us := clock.SplitMillis(waitUs)
	r.logf(nowUs, "job%d leaves queue, time in queue = %d.%03dms, queue_length = %d",
		job.ID, ms, us, newLen)
}

// RemovedJob emits the removal line for a job discarded on stop.
func (r *Router) RemovedJob(nowUs int64, job *model.Job) {
	r.stats.RecordRemoved()
	r.logf(nowUs, "job%d removed from system", job.ID)
}

// PrinterArrival emits the service-begin line.
func (r *Router) PrinterArrival(nowUs int64, job *model.Job, printerID int) {
	r.logf(nowUs, "job%d begins service at printer%d, printing %d pages in about %dms",
		job.ID, printerID, job.PapersRequired, job.ServiceTimeRequestMs)
}

// SystemDeparture emits the service-end line and accounts the job as
// fully served under the owning printer.
func (r *Router) SystemDeparture(nowUs int64, job *model.Job, printerID int) {
	printerIdx := printerID - 1
	queueWaitUs := job.QueueDepartureUs - job.QueueArrivalUs
	systemTimeUs := job.ServiceDepartUs - job.SystemArrivalUs
	serviceTimeUs := job.ServiceDepartUs - job.ServiceArrivalUs
	r.stats.RecordServiceComplete(printerIdx, queueWaitUs, systemTimeUs, serviceTimeUs, job.PapersRequired)

	ms, us := clock.SplitMillis(serviceTimeUs)
	r.logf(nowUs, "job%d departs from printer%d, service time = %d.%03dms", job.ID, printerID, ms, us)
}

// PaperEmpty emits the out-of-paper line for printerID.
func (r *Router) PaperEmpty(nowUs int64, printerID int) {
	r.logf(nowUs, "printer%d is out of paper", printerID)
}

// PaperRefillStart emits the refill-begin line.
func (r *Router) PaperRefillStart(nowUs int64, printerID int, papers int64, estimateUs int64) {
	ms, us := clock.SplitMillis(estimateUs)
	r.logf(nowUs, "printer%d starts refilling %d papers, estimated time = %d.%03dms", printerID, papers, ms, us)
}

// PaperRefillEnd emits the refill-end line and accounts the refill.
func (r *Router) PaperRefillEnd(nowUs int64, printerID int, papers int64, actualUs int64) {
	r.stats.RecordRefillEvent(papers, actualUs)
	ms, us := clock.SplitMillis(actualUs)
	r.logf(nowUs, "printer%d finishes refilling, actual time = %d.%03dms", printerID, ms, us)
}

// PaperEmptyResume accounts the time a printer spent blocked waiting
// for paper; it has no trace line of its own, only the out-of-paper
// and refill lines that bracket it.
func (r *Router) PaperEmptyResume(printerIdx int, elapsedUs int64) {
	r.stats.RecordPaperEmpty(printerIdx, elapsedUs)
}

// Statistics emits the final aggregate statistics frame.
func (r *Router) Statistics(snap stats.Snapshot) {
	r.sink.Statistics(map[string]any{
		"total_jobs_arrived":            snap.TotalJobsArrived,
		"total_jobs_served":             snap.TotalJobsServed,
		"total_jobs_dropped":            snap.TotalJobsDropped,
		"total_jobs_removed":            snap.TotalJobsRemoved,
		"jobs_served_printer1":          snap.JobsServedByPrinter[0],
		"jobs_served_printer2":          snap.JobsServedByPrinter[1],
		"printer1_paper_used":           snap.PrinterPaperUsed[0],
		"printer2_paper_used":           snap.PrinterPaperUsed[1],
		"paper_refill_events":           snap.PaperRefillEvents,
		"papers_refilled":               snap.PapersRefilled,
		"max_job_queue_length":          snap.MaxJobQueueLength,
		"simulation_duration_sec":       float64(snap.SimulationDurationUs) / 1e6,
		"avg_inter_arrival_sec":         snap.AvgInterArrivalSec,
		"avg_system_time_sec":           snap.AvgSystemTimeSec,
		"system_time_stddev_sec":        snap.SystemTimeStddevSec,
		"avg_queue_wait_sec":            snap.AvgQueueWaitSec,
		"avg_service_time_printer1_sec": snap.AvgServiceTimeSec[0],
		"avg_service_time_printer2_sec": snap.AvgServiceTimeSec[1],
		"avg_queue_length":              snap.AvgQueueLength,
		"utilization_printer1":          snap.UtilizationPrinter[0],
		"utilization_printer2":          snap.UtilizationPrinter[1],
		"job_arrival_rate":              snap.JobArrivalRate,
		"job_drop_probability":          snap.JobDropProbability,
		"printer1_paper_empty_time_sec": snap.PaperEmptyTimeSec[0],
		"printer2_paper_empty_time_sec": snap.PaperEmptyTimeSec[1],
		"total_refill_service_time_sec": snap.TotalRefillServiceSec,
	})
}
