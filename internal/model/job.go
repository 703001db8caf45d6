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

// Package model holds the plain data types shared across the
// simulation: jobs, printers, and the immutable run parameters.
package model

// Job is a unit of print work. Timestamps are stamped in order by the
// components that own each lifecycle stage; once set, they are
// non-decreasing in the order listed below.
type Job struct {
	ID                   int64
	InterArrivalTimeUs   int64
	PapersRequired       int64
	ServiceTimeRequestMs int64

	SystemArrivalUs  int64
	QueueArrivalUs   int64
	QueueDepartureUs int64
	ServiceArrivalUs int64
	ServiceDepartUs  int64
}

// Printer is a long-lived record of one printer's paper state and
// lifetime counters. CurrentPaperCount is mutated by the refiller
// (under the refill-queue lock) and by the owning printer worker
// during its own service step; every other field is touched only by
// the owning printer worker.
type Printer struct {
	ID                int
	CurrentPaperCount int64
	Capacity          int64
	TotalPapersUsed   int64
	JobsPrintedCount  int64
}
