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

// Package telemetry exposes the run's statistics snapshot as Prometheus
// gauges, scraped on demand rather than pushed on a timer.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"printservice/internal/stats"
)

var descs = struct {
	jobsArrived, jobsServed, jobsDropped, jobsRemoved *prometheus.Desc
	jobsServedByPrinter, printerPaperUsed             *prometheus.Desc
	paperRefillEvents, papersRefilled                 *prometheus.Desc
	maxQueueLength                                    *prometheus.Desc
	avgSystemTimeSec, avgQueueWaitSec                 *prometheus.Desc
	utilizationPrinter                                *prometheus.Desc
	jobArrivalRate, jobDropProbability                *prometheus.Desc
}{
	jobsArrived:         prometheus.NewDesc("printsim_jobs_arrived_total", "Total jobs that arrived, including dropped ones.", nil, nil),
	jobsServed:          prometheus.NewDesc("printsim_jobs_served_total", "Total jobs fully printed.", nil, nil),
	jobsDropped:         prometheus.NewDesc("printsim_jobs_dropped_total", "Total jobs dropped due to a full queue.", nil, nil),
	jobsRemoved:         prometheus.NewDesc("printsim_jobs_removed_total", "Total jobs discarded by an external stop.", nil, nil),
	jobsServedByPrinter: prometheus.NewDesc("printsim_jobs_served_by_printer_total", "Jobs served, per printer.", []string{"printer"}, nil),
	printerPaperUsed:    prometheus.NewDesc("printsim_printer_paper_used_total", "Pages consumed, per printer.", []string{"printer"}, nil),
	paperRefillEvents:   prometheus.NewDesc("printsim_paper_refill_events_total", "Completed refill cycles.", nil, nil),
	papersRefilled:      prometheus.NewDesc("printsim_papers_refilled_total", "Pages restocked across all refills.", nil, nil),
	maxQueueLength:      prometheus.NewDesc("printsim_max_job_queue_length", "Largest observed job queue length.", nil, nil),
	avgSystemTimeSec:    prometheus.NewDesc("printsim_avg_system_time_seconds", "Mean end-to-end time per served job.", nil, nil),
	avgQueueWaitSec:     prometheus.NewDesc("printsim_avg_queue_wait_seconds", "Mean time a served job spent queued.", nil, nil),
	utilizationPrinter:  prometheus.NewDesc("printsim_printer_utilization", "Fraction of run duration a printer spent printing.", []string{"printer"}, nil),
	jobArrivalRate:      prometheus.NewDesc("printsim_job_arrival_rate", "Observed jobs per second.", nil, nil),
	jobDropProbability:  prometheus.NewDesc("printsim_job_drop_probability", "Fraction of arrived jobs dropped.", nil, nil),
}

// Collector adapts a statistics provider into a prometheus.Collector:
// every scrape calls provide and takes a fresh Snapshot, so values
// reflect the most recently started run without a background refresh
// loop. provide may return nil before any run has started.
type Collector struct {
	provide func() *stats.Stats
}

// NewCollector builds a collector that scrapes whatever provide
// returns at collection time.
func NewCollector(provide func() *stats.Stats) *Collector {
	return &Collector{provide: provide}
}

// Describe sends the static metric descriptors.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{
		descs.jobsArrived, descs.jobsServed, descs.jobsDropped, descs.jobsRemoved,
		descs.jobsServedByPrinter, descs.printerPaperUsed, descs.paperRefillEvents,
		descs.papersRefilled, descs.maxQueueLength, descs.avgSystemTimeSec,
		descs.avgQueueWaitSec, descs.utilizationPrinter, descs.jobArrivalRate,
		descs.jobDropProbability,
	} {
		ch <- d
	}
}

// Collect takes a snapshot and emits one metric per descriptor. It is
// a no-op before the first run has started.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.provide()
	if s == nil {
		return
	}
	snap := s.Snapshot()

	ch <- prometheus.MustNewConstMetric(descs.jobsArrived, prometheus.CounterValue, float64(snap.TotalJobsArrived))
	ch <- prometheus.MustNewConstMetric(descs.jobsServed, prometheus.CounterValue, float64(snap.TotalJobsServed))
	ch <- prometheus.MustNewConstMetric(descs.jobsDropped, prometheus.CounterValue, float64(snap.TotalJobsDropped))
	ch <- prometheus.MustNewConstMetric(descs.jobsRemoved, prometheus.CounterValue, float64(snap.TotalJobsRemoved))

	for i := 0; i < 2; i++ {
		label := printerLabel(i)
		ch <- prometheus.MustNewConstMetric(descs.jobsServedByPrinter, prometheus.CounterValue, float64(snap.JobsServedByPrinter[i]), label)
		ch <- prometheus.MustNewConstMetric(descs.printerPaperUsed, prometheus.CounterValue, float64(snap.PrinterPaperUsed[i]), label)
		ch <- prometheus.MustNewConstMetric(descs.utilizationPrinter, prometheus.GaugeValue, snap.UtilizationPrinter[i], label)
	}

	ch <- prometheus.MustNewConstMetric(descs.paperRefillEvents, prometheus.CounterValue, float64(snap.PaperRefillEvents))
	ch <- prometheus.MustNewConstMetric(descs.papersRefilled, prometheus.CounterValue, float64(snap.PapersRefilled))
	ch <- prometheus.MustNewConstMetric(descs.maxQueueLength, prometheus.GaugeValue, float64(snap.MaxJobQueueLength))
	ch <- prometheus.MustNewConstMetric(descs.avgSystemTimeSec, prometheus.GaugeValue, snap.AvgSystemTimeSec)
	ch <- prometheus.MustNewConstMetric(descs.avgQueueWaitSec, prometheus.GaugeValue, snap.AvgQueueWaitSec)
	ch <- prometheus.MustNewConstMetric(descs.jobArrivalRate, prometheus.GaugeValue, snap.JobArrivalRate)
	ch <- prometheus.MustNewConstMetric(descs.jobDropProbability, prometheus.GaugeValue, snap.JobDropProbability)
}

func printerLabel(idx int) string {
	if idx == 0 {
		return "1"
	}
	return "2"
}
